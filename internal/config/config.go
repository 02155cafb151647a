package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// CurrentVersion is written into freshly saved config files.
const CurrentVersion = "1"

// Output formats understood by the decode command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Environment variables that override file settings.
const (
	EnvOutput    = "EVN_OUTPUT"
	EnvLogLevel  = "EVN_LOG_LEVEL"
	EnvLogFormat = "EVN_LOG_FORMAT"
	EnvDBPath    = "EVN_DB_PATH"
	EnvLanguage  = "EVN_LANG"
)

// Config represents the flat EVN tool configuration
type Config struct {
	Version   string `json:"version"`
	Output    string `json:"output,omitempty"`     // "text", "json" or "yaml"
	LogLevel  string `json:"log_level,omitempty"`  // "debug", "info", "warn", "error"
	LogFormat string `json:"log_format,omitempty"` // "text" or "json"
	DBPath    string `json:"db_path,omitempty"`    // preference database
	Language  string `json:"-"`                    // EVN_LANG override, never saved
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		Output:    OutputText,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Dir returns the per-user configuration directory (~/.evn).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".evn"), nil
}

// DefaultDBPath returns the default preference database path (~/.evn/evn.db).
func DefaultDBPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "evn.db"), nil
}

// LoadConfig reads config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Path returns the config.json path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Exists reports whether dir already holds a config.json.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Load resolves the effective configuration: defaults, then config.json in
// dir (if present), then a .env file in the working directory (if present),
// then EVN_* environment variables. The result is validated.
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	ApplyEnv(cfg, os.Getenv)

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "evn.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays non-empty EVN_* variables read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvOutput); v != "" {
		cfg.Output = strings.ToLower(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
}

// Validate rejects settings the tool cannot honour.
func (c *Config) Validate() error {
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", c.LogFormat)
	}
	return nil
}

// ValidateLogLevel reports whether level is a known log level.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", level)
	}
}

// ValidateOutput reports whether format is a known output format.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s, %s)", format, OutputText, OutputJSON, OutputYAML)
	}
}
