package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or toggle the display theme",
	Long: `Show or toggle the display theme.

Examples:
  earthinspires theme           # Print the current theme
  earthinspires theme toggle    # Switch between dark and light`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.app.Theme())

	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, sessionOptions{})
	if err != nil {
		return err
	}

	defer func() { _ = s.Close() }()

	theme, err := s.app.ToggleTheme()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)

	return nil
}
