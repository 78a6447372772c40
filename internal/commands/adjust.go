package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studylog/internal/db"
	"github.com/balkashynov/studylog/internal/parser"
	"github.com/balkashynov/studylog/internal/tracker"
	"github.com/balkashynov/studylog/internal/tui"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [duration]",
	Short: "Add or remove time from the total",
	Long: `Add or remove time from the lifetime total with a manual correction.

Modes:
  Interactive: studylog adjust (no arguments or flags)
  Quick: studylog adjust 2h30m, studylog adjust -- -45m
  Flags: studylog adjust --hours 1 --minutes 15 --remove

Duration syntax:
  2h30m, 2h, 45m, 1h 15m  - hours and/or minutes
  1:30                    - hours:minutes
  leading -               - remove time instead of adding it`,
	Args: cobra.MaximumNArgs(1),
	RunE: withCore(func(cmd *cobra.Command, args []string, core *tracker.Core, _ *db.Store) error {
		flags := cmd.Flags()
		noUI, _ := flags.GetBool("no-ui")

		// No input at all: go interactive
		if len(args) == 0 && !flags.Changed("hours") && !flags.Changed("minutes") && !noUI {
			return tui.RunAdjustTUI(cmd.Context(), core.Adjuster())
		}

		adj, err := adjustmentFromInput(cmd, args)
		if err != nil {
			return err
		}
		return submitAndReport(cmd.Context(), core, adj, cmd.OutOrStdout())
	}),
}

func init() {
	adjustCmd.Flags().Int("hours", 0, "Hours to add or remove")
	adjustCmd.Flags().Int("minutes", 0, "Minutes to add or remove")
	adjustCmd.Flags().BoolP("remove", "r", false, "Remove time instead of adding it")
	adjustCmd.Flags().Bool("no-ui", false, "Skip interactive TUI")
}

// adjustmentFromInput merges the positional duration with the flags
func adjustmentFromInput(cmd *cobra.Command, args []string) (parser.Adjustment, error) {
	var adj parser.Adjustment

	if len(args) == 1 {
		parsed, err := parser.ParseAdjustment(args[0])
		if err != nil {
			return adj, err
		}
		adj = parsed
	}

	flags := cmd.Flags()
	if flags.Changed("hours") {
		adj.Hours, _ = flags.GetInt("hours")
	}
	if flags.Changed("minutes") {
		adj.Minutes, _ = flags.GetInt("minutes")
	}
	if remove, _ := flags.GetBool("remove"); remove {
		adj.Removal = true
	}

	return adj, nil
}

// submitAndReport records the adjustment and prints the new total
func submitAndReport(ctx context.Context, core *tracker.Core, adj parser.Adjustment, out io.Writer) error {
	id, err := core.SubmitAdjustment(ctx, adj.Hours, adj.Minutes, adj.Removal)
	if err != nil {
		return err
	}

	seconds := tracker.Seconds(adj.Hours, adj.Minutes, adj.Removal)
	fmt.Fprintf(out, "✅ Adjustment %s recorded (#%d)\n", parser.FormatAdjustment(seconds), id)

	hours, err := core.TotalHours(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, tracker.FormatHours(hours))
	return nil
}
