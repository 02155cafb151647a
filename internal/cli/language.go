package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/logging"
	"github.com/example/evn/internal/wire"
)

// resolveLanguage picks the display language. Explicit choices (--lang, then
// EVN_LANG) win without touching the preference database; otherwise the
// stored preference is consulted before the LC_ALL, LC_MESSAGES and LANG
// locale variables.
func resolveLanguage(cmd *cobra.Command) i18n.Lang {
	flagLang, _ := cmd.Flags().GetString(langFlag)
	for _, explicit := range []string{flagLang, wire.Config().Language} {
		if l, ok := i18n.Match(explicit); ok {
			return l
		}
	}

	return i18n.Resolve(
		storedLanguage(cmd.Context()),
		os.Getenv("LC_ALL"),
		os.Getenv("LC_MESSAGES"),
		os.Getenv("LANG"),
	)
}

// storedLanguage returns the persisted language, or "" if the preference
// store is unavailable. An unreadable store never blocks a command.
func storedLanguage(ctx context.Context) string {
	service, err := wire.PreferenceService()
	if err != nil {
		logging.FromContext(ctx).Warn("language preference unavailable", "error", err)
		return ""
	}

	lang, err := service.GetLanguage(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("failed to read language preference", "error", err)
		return ""
	}
	return lang
}

func messages(cmd *cobra.Command) *i18n.Messages {
	return i18n.For(resolveLanguage(cmd))
}

// outputFormat returns --output if given, else the configured default.
func outputFormat(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString(outputFlag)
	if !cmd.Flags().Changed(outputFlag) {
		output = wire.Config().Output
	}
	return strings.ToLower(output)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(outputFlag, "o", config.OutputText, "Output format (text, json, yaml)")
}
