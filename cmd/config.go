package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/earthinspires/internal/core"
	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage earthinspires configuration",
	Long: `Commands for managing earthinspires configuration.

Available Commands:
  show    Print the effective configuration
  init    Write a config.ini with the current settings`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		core.ShowConfig(cmd.OutOrStdout(), cfg)

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.ini with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = filepath.Join(cfg.DataDir, core.ConfigFileName)
		}

		if encoding.FileExists(path) && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := core.SaveConfig(path, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
