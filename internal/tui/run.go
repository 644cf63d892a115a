package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/config"
)

// Run starts the interactive board.
func Run(engine *board.Engine, cfg *config.Config, logger *zap.Logger) error {
	p := tea.NewProgram(New(engine, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
