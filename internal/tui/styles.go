package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
)

// Status colors, matching the board's web palette.
var statusColors = map[booking.Status]lipgloss.Color{
	booking.StatusRequested:  lipgloss.Color("#ef4444"), // red
	booking.StatusScheduled:  lipgloss.Color("#3b82f6"), // blue
	booking.StatusInProgress: lipgloss.Color("#f97316"), // orange
	booking.StatusReady:      lipgloss.Color("#14b8a6"), // teal
	booking.StatusCompleted:  lipgloss.Color("#22c55e"), // green
	booking.StatusNone:       lipgloss.Color("#6b7280"), // gray
}

// Status glyphs, the terminal stand-in for the web icons.
var statusGlyphs = map[booking.Status]string{
	booking.StatusRequested:  "◷",
	booking.StatusScheduled:  "⚙",
	booking.StatusInProgress: "🔧",
	booking.StatusReady:      "◎",
	booking.StatusCompleted:  "✓",
	booking.StatusNone:       "·",
}

// Styles holds the lipgloss styles for the board.
type Styles struct {
	Header    lipgloss.Style
	DayHeader lipgloss.Style
	HourLabel lipgloss.Style
	Cell      lipgloss.Style
	Cursor    lipgloss.Style
	Moving    lipgloss.Style
	Matched   lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Footer    lipgloss.Style
	Panel     lipgloss.Style
	PanelSel  lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() *Styles {
	return &Styles{
		Header:    lipgloss.NewStyle().Bold(true),
		DayHeader: lipgloss.NewStyle().Faint(true),
		HourLabel: lipgloss.NewStyle().Faint(true),
		Cell:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Moving:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eab308")),
		Matched:   lipgloss.NewStyle().Bold(true).Underline(true),
		Status:    lipgloss.NewStyle().Faint(true),
		StatusErr: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		Footer:    lipgloss.NewStyle().Faint(true),
		Panel:     lipgloss.NewStyle().PaddingLeft(1),
		PanelSel:  lipgloss.NewStyle().PaddingLeft(1).Reverse(true),
	}
}

// statusStyle returns the foreground style for a booking's status color.
func (s *Styles) statusStyle(st booking.Status) lipgloss.Style {
	c, ok := statusColors[st]
	if !ok {
		c = statusColors[booking.StatusNone]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// statusGlyph returns the glyph for a booking's status.
func statusGlyph(st booking.Status) string {
	if g, ok := statusGlyphs[st]; ok {
		return g
	}
	return statusGlyphs[booking.StatusNone]
}
