package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/evn/internal/wire"
)

// DecodeCmd returns the decode command
func DecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [code...]",
		Short: "Split an EVN into its fields",
		Long: `Validate an EVN and print its fields: country, vehicle category,
locomotive type (traction vehicles only), technical characteristics,
serial number and check digit.

Examples:
  evn decode 94 51 2150 054-6
  evn decode 618084877017 --output json`,
		RunE: runDecode,
	}

	addOutputFlag(cmd)

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	msgs := messages(cmd)
	if len(args) == 0 {
		return errors.New(msgs.EnterEVN)
	}

	code := strings.Join(args, " ")
	return wire.EVNAdapterWithOutput(cmd.OutOrStdout(), msgs).Decode(cmd.Context(), code, outputFormat(cmd))
}
