package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/evn/internal/wire"
)

// CountriesCmd returns the countries command
func CountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List registered UIC country codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EVNAdapterWithOutput(cmd.OutOrStdout(), messages(cmd)).Countries(cmd.Context())
		},
	}
}
