package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for studylog",
	Long:  `Display detailed help for all studylog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), customHelp)
	},
}

const customHelp = `
studylog - Study Session Timer

COMMANDS:

  start                   Start a session in the timer window
    --no-ui               Print elapsed time instead; Enter or Ctrl+C stops and saves

  timer (ui)              Open the timer window idle
    Keys:
      space/s       Start/stop session (stopping saves it)
      a             Adjust total time
      r             Retry saving sessions that failed to save
      q/esc         Save running session and quit
      ctrl+c        Quit without saving the running session

  adjust [duration]       Add or remove time from the total
    --hours               Hours to add or remove
    --minutes             Minutes to add or remove
    -r, --remove          Remove time instead of adding it
    --no-ui               Skip interactive TUI

    Example:
      studylog adjust 2h30m
      studylog adjust --minutes 10 --remove

  total                   Show the lifetime total in hours
    --seconds             Print raw seconds

  log (ls)                List recorded sessions and adjustments
    -n, --limit           Number of rows (default 20, 0 for all)

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:
  --config                Config file (default $XDG_CONFIG_HOME/studylog/config.toml)
  --db                    Database file (default $XDG_DATA_HOME/studylog/studylog.db)

`
