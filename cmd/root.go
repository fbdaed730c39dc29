package cmd

import (
	"os"

	"github.com/inovacc/earthinspires/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Capture mock snapshots of a stylized Earth",
	Long: `Earth Inspires renders a stylized Earth in your terminal. Capture a
snapshot with a single key, browse and delete captures in the gallery, and
switch between a dark and a light theme. Snapshots and the theme persist in
a local database between runs.

Run without a subcommand to start the interactive view.`,
	SilenceUsage: true,
	RunE:         runUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: <data-dir>/config.ini)")
	pf.String("data-dir", "", "Directory for the database, config and logs")
	pf.String("backend", "", "Storage backend: bolt, sqlite or memory")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-format", "", "Log format: text or json")
}
