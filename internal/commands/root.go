package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studylog/internal/config"
	"github.com/balkashynov/studylog/internal/db"
	"github.com/balkashynov/studylog/internal/logger"
	"github.com/balkashynov/studylog/internal/tracker"
	"github.com/balkashynov/studylog/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	dbPath     string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "A study session timer with a lifetime total",
	Long: `studylog tracks time spent on study/work sessions and keeps a running total
across every recorded session, including manual corrections.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// loadConfig resolves config file, flags and logging before any command runs
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("db") {
		loaded.DBPath = dbPath
	}
	cfg = loaded

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if err := logger.SetFileWriter(cfg.LogFile); err != nil {
		// Logging is best effort; the tracker works without it
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		return nil
	}
	logger.Log().Debug().Str("command", cmd.Name()).Str("db", cfg.DBPath).Msg("starting")
	return nil
}

// openCore opens the store and wires the tracker core to it
func openCore() (*tracker.Core, *db.Store, error) {
	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return tracker.NewCore(store, tracker.SystemClock{}, cfg.MaxHours, cfg.MaxMinutes), store, nil
}

// withCore wraps a command function to open the database first
func withCore(fn func(*cobra.Command, []string, *tracker.Core, *db.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		core, store, err := openCore()
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(cmd, args, core, store)
	}
}

// shimmerConfig maps UI settings onto the header animation
func shimmerConfig() tui.ShimmerConfig {
	sc := tui.DefaultShimmerConfig()
	sc.Enabled = cfg.Animations
	sc.ReduceMotion = cfg.ReduceMotion
	return sc
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "studylog %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer logger.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
