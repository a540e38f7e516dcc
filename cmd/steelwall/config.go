package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/steelwall/internal/config"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the built-in configuration to ~/.steelwall/configs/steelwall.yaml
(or --out) so it can be edited. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path := flagConfigOut
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			return fmt.Errorf("cannot find the home directory; use --out")
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d brick kinds, %d balls, wall speed %.2f (max %.2f)\n",
			len(cfg.Bricks)+len(cfg.Bonus), cfg.Balls.Bank, cfg.Wall.Speed, cfg.Wall.MaxSpeed)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigOut, "out", "", "Where to write the file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}
