package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/logging"
	"github.com/example/evn/internal/version"
	"github.com/example/evn/internal/wire"
)

const (
	langFlag     = "lang"
	logLevelFlag = "log-level"
	outputFlag   = "output"
)

// NewRootCmd builds the evn command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "evn",
		Short:   "EVN - European Vehicle Number toolkit",
		Version: version.String(),
		Long: `evn validates, decodes and generates European Vehicle Numbers, the
12-digit identifiers carried by railway rolling stock.

Codes may be written with any separators: "94 51 2150 054-6",
"94512150054-6" and "945121500546" are the same code.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: persistentPreRun,
	}

	rootCmd.PersistentFlags().String(langFlag, "", "Display language (pl, en, de)")
	rootCmd.PersistentFlags().String(logLevelFlag, "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(ValidateCmd())
	rootCmd.AddCommand(DecodeCmd())
	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(CountriesCmd())
	rootCmd.AddCommand(LangCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

func persistentPreRun(cmd *cobra.Command, args []string) error {
	if lang, _ := cmd.Flags().GetString(langFlag); lang != "" {
		if _, err := i18n.Parse(lang); err != nil {
			return err
		}
	}
	if level, _ := cmd.Flags().GetString(logLevelFlag); level != "" {
		if err := config.ValidateLogLevel(level); err != nil {
			return err
		}
		logging.Setup(level, wire.Config().LogFormat, cmd.ErrOrStderr())
	}
	return nil
}
