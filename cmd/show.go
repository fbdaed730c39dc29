package cmd

import (
	"fmt"

	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("json", false, "Print the snapshot as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	snap, err := s.app.Snapshot(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if jsonOutput {
		return encoding.WriteJSON(out, snap, true)
	}

	_, _ = fmt.Fprintf(out, "ID:        %d\n", snap.ID)
	_, _ = fmt.Fprintf(out, "Captured:  %s\n", snap.Timestamp)
	_, _ = fmt.Fprintf(out, "Image:     %s\n", snap.ThumbnailDataURL)
	_, _ = fmt.Fprintf(out, "Viewport:  zoom %g at %.4f, %.4f\n", snap.Zoom, snap.Lat, snap.Lng)

	if snap.Note != "" {
		_, _ = fmt.Fprintf(out, "Note:      %s\n", snap.Note)
	}

	return nil
}
