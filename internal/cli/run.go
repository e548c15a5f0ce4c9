package cli

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive booking session",
	Long: `Start the interactive booking menu.

You are first asked for the movie title and hall size in
[Title] [Row] [SeatsPerRow] format, e.g. "Inception 8 10". The menu then lets
you book tickets, inspect or cancel bookings, and exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), appLog).Run()
	},
}
