package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
)

// Color definitions for consistent styling across the CLI output.
var (
	colorRequested  = color.New(color.FgRed)
	colorScheduled  = color.New(color.FgBlue)
	colorInProgress = color.New(color.FgYellow, color.Bold)
	colorReady      = color.New(color.FgCyan)
	colorCompleted  = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatStatus colors text by booking status.
func formatStatus(st booking.Status, s string) string {
	switch st {
	case booking.StatusRequested:
		return colorRequested.Sprint(s)
	case booking.StatusScheduled:
		return colorScheduled.Sprint(s)
	case booking.StatusInProgress:
		return colorInProgress.Sprint(s)
	case booking.StatusReady:
		return colorReady.Sprint(s)
	case booking.StatusCompleted:
		return colorCompleted.Sprint(s)
	default:
		return colorMuted.Sprint(s)
	}
}

func statusSymbol(st booking.Status) string {
	switch st {
	case booking.StatusRequested:
		return "◷"
	case booking.StatusScheduled:
		return "⚙"
	case booking.StatusInProgress:
		return "🔧"
	case booking.StatusReady:
		return "◎"
	case booking.StatusCompleted:
		return "✓"
	default:
		return "·"
	}
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
