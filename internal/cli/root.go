// Package cli implements the shelf command-line entry point.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lazyvibe/shelf/internal/app"
	"github.com/lazyvibe/shelf/internal/form"
	"github.com/lazyvibe/shelf/internal/store"
	"github.com/lazyvibe/shelf/internal/ui"
)

const (
	appName    = "shelf"
	appVersion = "0.1.0"
)

// runFunc starts the UI. Tests replace it to avoid taking over the terminal.
type runFunc func(model tea.Model, opts ...tea.ProgramOption) error

func runProgram(model tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

// NewRootCmd creates the top-level "shelf" command with its flags and
// subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(runProgram)
}

func newRootCmd(run runFunc) *cobra.Command {
	cfg := app.DefaultConfig()

	root := &cobra.Command{
		Use:   appName,
		Short: "Keep a list of books in a terminal form",
		Long: `Shelf is a single-window terminal form for keeping a list of books.
Records live in memory only and are gone when the program exits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cfg, run)
		},
	}

	root.Flags().BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "use the terminal's alternate screen")
	root.Flags().IntVar(&cfg.CharLimit, "char-limit", cfg.CharLimit, "maximum length of each field")
	root.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write diagnostic logs to this file")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	return root
}

func runUI(cfg *app.Config, run runFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	controller := form.NewController(store.NewMemoryStore(), logger)
	application := ui.New(controller, cfg, logger)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Debug("starting", "alt_screen", cfg.AltScreen, "char_limit", cfg.CharLimit)
	if err := run(application, opts...); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s v%s\n", appName, appVersion)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
