package cmd

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/earthinspires/internal/cli"
	"github.com/inovacc/earthinspires/internal/core"
	"github.com/spf13/cobra"
)

const tuiLogFile = "tui.log"

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Start the interactive Earth view",
	Long: `Start the interactive Earth view.

Keys:
  c, space   Capture a snapshot
  n          Capture a snapshot with a note
  g          Open the gallery (d deletes, esc closes)
  t          Toggle dark/light theme
  q          Quit

Logs are written to tui.log in the data directory.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("the interactive view needs a terminal; use 'capture' or 'list' instead")
	}

	s, err := openSession(cmd, sessionOptions{
		logFile: tuiLogFile,
		player:  core.BellPlayer{W: os.Stderr},
	})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	p := tea.NewProgram(cli.NewEarthModel(s.app), tea.WithAltScreen())
	_, err = p.Run()

	return err
}
