package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all snapshots and reset the theme",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

func runClear(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "Delete all snapshots and reset the theme? [y/N]: ")

		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)

		if response != "y" && response != "Y" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	if err := s.db.Clear(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Storage cleared.")

	return nil
}
