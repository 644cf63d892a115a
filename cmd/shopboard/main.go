package main

import (
	"fmt"
	"os"

	"github.com/automation-integrationsoffert/shopboard/internal/config"
	"github.com/automation-integrationsoffert/shopboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.UI.Color {
		ui.DisableColor()
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
