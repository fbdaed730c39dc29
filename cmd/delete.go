package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/earthinspires/internal/core"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a snapshot by id",
	Long: `Delete a snapshot by id.

Deleting an id that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	_, lookupErr := s.app.Snapshot(id)

	if err := s.app.Delete(id); err != nil {
		return err
	}

	if errors.Is(lookupErr, core.ErrSnapshotNotFound) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No snapshot with id %d; nothing to delete\n", id)
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %d (%d remaining)\n", id, s.app.Count())

	return nil
}
