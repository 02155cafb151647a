package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".evn")
	cfg := &Config{
		Version:   CurrentVersion,
		Output:    OutputYAML,
		LogLevel:  "debug",
		LogFormat: "json",
		DBPath:    "/tmp/prefs.db",
		Language:  "de",
	}

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Output != OutputYAML {
		t.Errorf("Output = %q, want %q", loaded.Output, OutputYAML)
	}
	if loaded.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", loaded.LogFormat)
	}
	if loaded.DBPath != "/tmp/prefs.db" {
		t.Errorf("DBPath = %q, want /tmp/prefs.db", loaded.DBPath)
	}
	if loaded.Language != "" {
		t.Errorf("Language should never be persisted, got %q", loaded.Language)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"version":"1"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Output != OutputText || cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvOutput, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLanguage, "")

	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}
	if cfg.DBPath != filepath.Join(dir, "evn.db") {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, filepath.Join(dir, "evn.db"))
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv(EnvOutput, "JSON")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvDBPath, "/var/tmp/evn.db")
	t.Setenv(EnvLanguage, "en")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputJSON)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DBPath != "/var/tmp/evn.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv(EnvOutput, "xml")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected validation error for output=xml")
	}
}

func TestApplyEnvIgnoresEmptyValues(t *testing.T) {
	cfg := Default()
	ApplyEnv(cfg, func(string) string { return "" })
	if *cfg != *Default() {
		t.Errorf("ApplyEnv changed config with empty env: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "yaml output", mutate: func(c *Config) { c.Output = OutputYAML }, wantErr: false},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "csv" }, wantErr: true},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".evn", "evn.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "warning", "error"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) = %v, want nil", level, err)
		}
	}
	for _, level := range []string{"", "bogus", "trace"} {
		if err := ValidateLogLevel(level); err == nil {
			t.Errorf("ValidateLogLevel(%q) should fail", level)
		}
	}
}

func TestExistsAndPath(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Fatal("empty dir should not hold a config")
	}
	if err := SaveConfig(dir, Default()); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("Exists should see the saved config")
	}
	if Path(dir) != filepath.Join(dir, "config.json") {
		t.Errorf("Path = %q", Path(dir))
	}
}
