package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
)

// refreshedMsg carries the result of a snapshot reload.
type refreshedMsg struct {
	err error
}

// movedMsg carries the result of a submitted reassignment.
type movedMsg struct {
	re  *board.Reassignment
	err error
}

// tickMsg drives cooldown expiry and status message clearing.
type tickMsg time.Time

func refreshCmd(engine *board.Engine) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: engine.Refresh(context.Background())}
	}
}

func moveCmd(engine *board.Engine, intent board.DragIntent, weekDates []time.Time) tea.Cmd {
	return func() tea.Msg {
		re, err := engine.Move(context.Background(), intent, weekDates)
		return movedMsg{re: re, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
