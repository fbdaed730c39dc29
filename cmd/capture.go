package cmd

import (
	"fmt"

	"github.com/inovacc/earthinspires/internal/core"
	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a snapshot of the Earth",
	Long: `Capture a mock snapshot and add it to the gallery.

Examples:
  earthinspires capture
  earthinspires capture --note "Sunrise over the Pacific"
  earthinspires capture --json`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().String("note", "", "Optional note stored with the snapshot")
	captureCmd.Flags().Bool("json", false, "Print the snapshot as JSON")
}

func runCapture(cmd *cobra.Command, _ []string) error {
	note, _ := cmd.Flags().GetString("note")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	snap, err := s.app.Capture(cmd.Context(), core.CaptureOptions{Note: note})
	if err != nil {
		return err
	}

	if jsonOutput {
		return encoding.WriteJSON(cmd.OutOrStdout(), snap, true)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Captured snapshot %d\n  %s\n  %s\n", snap.ID, snap.ThumbnailDataURL, snap.Timestamp)

	return nil
}
