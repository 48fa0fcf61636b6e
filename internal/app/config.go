// Package app provides application-level configuration and initialization.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the run-time options for a Shelf session. Values come from
// command-line flags only; nothing is read from disk or the environment.
type Config struct {
	// AltScreen runs the UI in the terminal's alternate screen buffer.
	AltScreen bool
	// CharLimit caps the length of each form field.
	CharLimit int
	// LogFile receives diagnostic logs. Empty disables logging.
	LogFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AltScreen: true,
		CharLimit: 256,
		LogLevel:  "info",
	}
}

// Validate checks that every option is usable.
func (c *Config) Validate() error {
	if c.CharLimit <= 0 {
		return fmt.Errorf("char limit must be positive, got %d", c.CharLimit)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// NewLogger builds the application logger. The TUI owns the terminal, so logs
// go to cfg.LogFile when set and are discarded otherwise. The returned close
// function releases the log file.
func NewLogger(cfg *Config) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
