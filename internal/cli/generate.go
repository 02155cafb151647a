package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/evn/internal/ports/primary"
	"github.com/example/evn/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random valid EVN codes",
		Long: `Generate EVN codes with a correct check digit.

Country and category are random unless given. A locomotive type only
applies to traction vehicles and is ignored for other categories.

Categories: traction, passenger, freight, special
Locomotive types: 0-8 or steam, electric, diesel, emu, dmu, bmu, hmu,
                  power-car, shunting

Examples:
  evn generate
  evn generate --country PL --category traction --subtype electric
  evn generate --count 20 --seed 42 --output yaml`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().String("country", "", "Country as UIC number (51) or ISO code (PL)")
	cmd.Flags().String("category", "", "Vehicle category")
	cmd.Flags().String("subtype", "", "Locomotive type for traction vehicles")
	cmd.Flags().IntP("count", "n", 1, "Number of codes to generate")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible output")
	addOutputFlag(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	countryCode, _ := cmd.Flags().GetString("country")
	category, _ := cmd.Flags().GetString("category")
	subType, _ := cmd.Flags().GetString("subtype")
	count := 1
	if cmd.Flags().Changed("count") {
		count, _ = cmd.Flags().GetInt("count")
	}

	req := primary.GenerateRequest{
		Country:  countryCode,
		Category: category,
		SubType:  subType,
		Count:    count,
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		req.Seed = &seed
	}

	return wire.EVNAdapterWithOutput(cmd.OutOrStdout(), messages(cmd)).Generate(cmd.Context(), req, outputFormat(cmd))
}
