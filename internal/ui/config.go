package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automation-integrationsoffert/shopboard/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Show the effective configuration: defaults, overlaid with the config
file if it exists, then SHOPBOARD_* environment variables.

With --init, writes the effective configuration to the config file.`,
		Example: `  shopboard config
  shopboard config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultPath()
			fmt.Printf("Config file: %s", path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Print(formatMuted("  (not present)"))
			}
			fmt.Println()

			printConfig(a.config)

			if write {
				if err := a.config.Save(path); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Printf("\nWrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "init", false, "Write the effective configuration to the config file")

	return cmd
}

func printConfig(cfg *config.Config) {
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path   = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[board]")
	fmt.Printf("  read_only = %t\n", cfg.Board.ReadOnly)
	fmt.Println("\n[ui]")
	fmt.Printf("  color     = %t\n", cfg.UI.Color)
}
