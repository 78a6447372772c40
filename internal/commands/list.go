package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studylog/internal/db"
	"github.com/balkashynov/studylog/internal/parser"
	"github.com/balkashynov/studylog/internal/tracker"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the lifetime total",
	Args:  cobra.NoArgs,
	RunE: withCore(func(cmd *cobra.Command, args []string, core *tracker.Core, _ *db.Store) error {
		seconds, _ := cmd.Flags().GetBool("seconds")
		if seconds {
			total, err := core.TotalSeconds(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		}

		hours, err := core.TotalHours(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tracker.FormatHours(hours))
		return nil
	}),
}

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"ls"},
	Short:   "List recorded sessions and adjustments",
	Args:    cobra.NoArgs,
	RunE: withCore(func(cmd *cobra.Command, args []string, _ *tracker.Core, store *db.Store) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printLog(cmd.Context(), store, limit, cmd.OutOrStdout())
	}),
}

func init() {
	totalCmd.Flags().Bool("seconds", false, "Print the total in seconds")
	logCmd.Flags().IntP("limit", "n", 20, "Number of rows to show (0 for all)")
}

// printLog prints the most recent rows as a table
func printLog(ctx context.Context, store *db.Store, limit int, out io.Writer) error {
	sessions, err := store.ListSessions(ctx, limit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet. Use 'studylog start' to track your first session.")
		return nil
	}

	// Print table header
	fmt.Fprintf(out, "%-5s %-10s %-19s %-8s %s\n", "ID", "KIND", "STARTED", "ENDED", "DURATION")
	fmt.Fprintln(out, strings.Repeat("-", 60))

	for _, s := range sessions {
		kind := "session"
		duration := tracker.FormatElapsed(s.DurationSeconds)
		ended := s.EndTime.Local().Format("15:04:05")
		if s.IsAdjustment() {
			kind = "adjust"
			duration = parser.FormatAdjustment(s.DurationSeconds)
			ended = "-"
		}

		fmt.Fprintf(out, "%-5d %-10s %-19s %-8s %s\n",
			s.ID,
			kind,
			s.StartTime.Local().Format("2006-01-02 15:04:05"),
			ended,
			duration)
	}
	return nil
}
