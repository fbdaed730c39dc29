package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/inovacc/earthinspires/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "gallery"},
	Short:   "List captured snapshots, newest first",
	Long: `List captured snapshots, newest first.

Output is a table on a terminal and JSON otherwise; --json forces JSON.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Print the snapshots as a JSON array")
}

func runList(cmd *cobra.Command, _ []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	snaps := s.app.Snapshots()
	out := cmd.OutOrStdout()

	if jsonOutput || !writesToTerminal(cmd) {
		return encoding.WriteJSON(out, snaps, true)
	}

	if len(snaps) == 0 {
		_, _ = fmt.Fprintln(out, "No snapshots yet. Run 'earthinspires capture' to take one.")
		return nil
	}

	_, _ = fmt.Fprintln(out, snapshotTable(snaps))
	_, _ = fmt.Fprintf(out, "%d snapshot(s)\n", len(snaps))

	return nil
}

func writesToTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(f)
}

func snapshotTable(snaps []model.Snapshot) string {
	rows := make([][]string, 0, len(snaps))
	for _, sn := range snaps {
		rows = append(rows, []string{
			strconv.FormatInt(sn.ID, 10),
			sn.Timestamp,
			sn.ThumbnailDataURL,
			sn.Note,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "CAPTURED", "IMAGE", "NOTE").
		Rows(rows...).
		String()
}
