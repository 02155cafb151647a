package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/evn/internal/wire"
)

// LangCmd returns the lang command
func LangCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang [pl|en|de]",
		Short: "Show or set the display language",
		Long: `Without an argument, print the language in effect. With an argument,
store it as the default for future invocations. --lang and EVN_LANG still
override the stored preference for a single run.

Examples:
  evn lang
  evn lang en
  evn lang --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLang,
	}

	cmd.Flags().Bool("clear", false, "Remove the stored language preference")

	return cmd
}

func runLang(cmd *cobra.Command, args []string) error {
	clearPref, _ := cmd.Flags().GetBool("clear")
	if clearPref && len(args) > 0 {
		return fmt.Errorf("cannot combine --clear with a language")
	}

	adapter, err := wire.PreferenceAdapterWithOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	switch {
	case clearPref:
		return adapter.ClearLanguage(cmd.Context())
	case len(args) == 1:
		return adapter.SetLanguage(cmd.Context(), args[0])
	default:
		return adapter.ShowLanguage(cmd.Context(), resolveLanguage(cmd))
	}
}
