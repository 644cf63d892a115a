// Package ui provides the shopboard command line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/config"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
	"github.com/automation-integrationsoffert/shopboard/internal/store"
	"github.com/automation-integrationsoffert/shopboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	store  booking.Store
	engine *board.Engine
	logger *zap.Logger
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given store and config. A nil
// store is opened lazily from the configured database path.
func NewApp(st booking.Store, cfg *config.Config) *App {
	a := &App{store: st, config: cfg}

	a.root = &cobra.Command{
		Use:   "shopboard",
		Short: "A terminal scheduling board for workshop bookings",
		Long: `Shopboard is a weekly scheduling board for a repair workshop.

It shows bookings as blocks on a mechanic-by-day grid, lets you move
them between cells while preserving their duration, and highlights the
bookings that belong to a work order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureEngine(); err != nil {
				return err
			}
			return tui.Run(a.engine, a.config, a.logger)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.boardCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.ordersCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("shopboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureEngine opens the store and builds the board engine on first use.
func (a *App) ensureEngine() error {
	if a.engine != nil {
		return nil
	}

	if a.logger == nil {
		logger, err := buildLogger(a.debug)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	if a.store == nil {
		dbPath := a.config.Storage.DBPath
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		st, err := store.New(dbPath, !a.config.Board.ReadOnly)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		a.store = st
	}

	a.engine = board.NewEngine(a.store, grid.Default(), a.logger, nil)
	return nil
}

// buildLogger returns a file-backed logger in debug mode, a no-op otherwise.
// Terminal output stays clean either way.
func buildLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(os.TempDir(), "shopboard-debug.log")}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building debug logger: %w", err)
	}
	return logger, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
