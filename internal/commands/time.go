package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studylog/internal/db"
	"github.com/balkashynov/studylog/internal/tracker"
	"github.com/balkashynov/studylog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a study session",
	Long: `Start a study session. Opens the interactive timer by default, use --no-ui for plain output.

The session is recorded when it is stopped. A session that is still running
when the process exits is lost.

Examples:
  studylog start          # Start the timer with interactive UI
  studylog start --no-ui  # Print elapsed time, Enter or Ctrl+C stops and saves`,
	Args: cobra.NoArgs,
	RunE: withCore(func(cmd *cobra.Command, args []string, core *tracker.Core, _ *db.Store) error {
		if err := core.StartSession(); err != nil {
			return err
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			return runPlainSession(cmd.Context(), core, os.Stdin, cmd.OutOrStdout())
		}
		return tui.RunTimerTUI(cmd.Context(), core, shimmerConfig())
	}),
}

var timerCmd = &cobra.Command{
	Use:     "timer",
	Aliases: []string{"ui"},
	Short:   "Open the timer window",
	Long:    "Open the timer window idle. Start and stop sessions, adjust the total and watch it update.",
	Args:    cobra.NoArgs,
	RunE: withCore(func(cmd *cobra.Command, args []string, core *tracker.Core, _ *db.Store) error {
		return tui.RunTimerTUI(cmd.Context(), core, shimmerConfig())
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Run the session without interactive UI")
}

// runPlainSession ticks the running session once a second until Enter, EOF or a signal
func runPlainSession(parent context.Context, core *tracker.Core, in io.Reader, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(out, "⏱️  Session started at %s (Enter or Ctrl+C to stop)\n", core.Tracker().StartedAt().Format("15:04:05"))

	// Enter stops the session
	go func() {
		reader := bufio.NewReader(in)
		_, _ = reader.ReadString('\n')
		cancel()
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	tracker.Drive(ctx, ticker.C, core.Tracker(), func(elapsed int64) {
		fmt.Fprintf(out, "\r%s", tracker.FormatElapsed(elapsed))
	})
	fmt.Fprintln(out)

	return stopAndReport(context.Background(), core, out)
}

// stopAndReport stops the session and prints the outcome and new total
func stopAndReport(ctx context.Context, core *tracker.Core, out io.Writer) error {
	session, err := core.StopSession(ctx)
	if err != nil {
		var storageErr *tracker.StorageError
		if errors.As(err, &storageErr) {
			fmt.Fprintf(out, "❌ Session of %s could not be saved\n", tracker.FormatElapsed(session.DurationSeconds))
		}
		return err
	}

	fmt.Fprintf(out, "⏹️  Saved session #%d\n", session.ID)
	fmt.Fprintf(out, "Session duration: %s\n", formatDuration(session.Duration()))

	hours, err := core.TotalHours(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, tracker.FormatHours(hours))
	return nil
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	if d.Hours() >= 1 {
		return fmt.Sprintf("%s%.1fh", sign, d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%s%.0fm", sign, d.Minutes())
	} else {
		return fmt.Sprintf("%s%.0fs", sign, d.Seconds())
	}
}
