package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/wire"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the evn configuration file",
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.json with default settings",
		Long: `Write config.json with the default settings to the configuration
directory (~/.evn unless --dir is given). An existing file is kept unless
--force is set.

Examples:
  evn config init
  evn config init --dir ./ci --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().String("dir", "", "Configuration directory (default ~/.evn)")
	cmd.Flags().Bool("force", false, "Overwrite an existing config.json")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	force, _ := cmd.Flags().GetBool("force")

	if dir == "" {
		var err error
		if dir, err = config.Dir(); err != nil {
			return err
		}
	}

	if config.Exists(dir) && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", config.Path(dir))
	}

	if err := config.SaveConfig(dir, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s (version %s)\n",
		color.New(color.FgGreen).Sprint("✓"), config.Path(dir), config.CurrentVersion)
	return nil
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after config.json, .env and EVN_* variables
have been applied.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(wire.Config(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
