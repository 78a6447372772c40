// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger = zerolog.Nop()

	// closer for the current log file, if any
	out io.Closer
)

// Log returns the shared logger. Disabled until a writer is set.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter logs human readable lines to stderr.
func SetConsoleWriter() {
	closeOutput()
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetFileWriter appends JSON lines to path. The TUI owns the terminal,
// so this is what the CLI uses.
func SetFileWriter(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	closeOutput()
	out = f
	log = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// SetWriter logs JSON lines to w. Used by tests.
func SetWriter(w io.Writer) {
	closeOutput()
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel sets the global level from its name.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Close flushes and closes the log file if one is open.
func Close() error {
	log = zerolog.Nop()
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	return err
}

func closeOutput() {
	if out != nil {
		_ = out.Close()
		out = nil
	}
}
