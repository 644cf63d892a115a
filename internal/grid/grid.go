// Package grid provides the time-by-resource geometry for the board:
// hour-of-day to pixel conversions, the visible hour range, and the
// Monday-to-Friday date sequence for a displayed week.
package grid

import (
	"fmt"
	"time"

	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
)

const (
	// DefaultStartHour is the first visible hour row (05:00).
	DefaultStartHour = 5
	// DefaultNumRows is the number of visible one-hour rows (05:00-19:00).
	DefaultNumRows = 15
	// DefaultRowHeight is the pixel height of one hour row.
	DefaultRowHeight = 50
	// WorkweekDays is the number of displayed days (Monday-Friday).
	WorkweekDays = 5
)

// Grid holds the visible hour range and row geometry.
type Grid struct {
	StartHour int // first visible hour
	NumRows   int // visible one-hour rows
	RowHeight int // pixels per hour row
}

// Default returns the standard board geometry.
func Default() Grid {
	return Grid{
		StartHour: DefaultStartHour,
		NumRows:   DefaultNumRows,
		RowHeight: DefaultRowHeight,
	}
}

// EndHour returns the first hour past the visible range.
func (g Grid) EndHour() int {
	return g.StartHour + g.NumRows
}

// Contains reports whether the instant's hour falls inside the visible range.
func (g Grid) Contains(t time.Time) bool {
	h := t.Hour()
	return h >= g.StartHour && h < g.EndHour()
}

// Offset converts an instant to a vertical pixel offset within the grid.
// The second return is false when the hour is outside the visible range;
// callers must drop such bookings entirely rather than clamping them.
func (g Grid) Offset(t time.Time) (float64, bool) {
	if !g.Contains(t) {
		return 0, false
	}
	adjusted := t.Hour() - g.StartHour
	return float64(adjusted)*float64(g.RowHeight) +
		float64(t.Minute())/60*float64(g.RowHeight), true
}

// Height returns the pixel height for a time range: duration in hours times
// the row height.
func (g Grid) Height(start, end time.Time) float64 {
	return end.Sub(start).Hours() * float64(g.RowHeight)
}

// SlotStart returns the instant at the given hour-slot index on the given day.
// Slot 0 is the first visible hour; minutes are always zeroed.
func (g Grid) SlotStart(day time.Time, slot int) time.Time {
	d := dateutil.TruncateToDay(day)
	return time.Date(d.Year(), d.Month(), d.Day(), g.StartHour+slot, 0, 0, 0, d.Location())
}

// ValidSlot reports whether the hour-slot index addresses a visible row.
func (g Grid) ValidSlot(slot int) bool {
	return slot >= 0 && slot < g.NumRows
}

// HourLabels returns the visible hour labels, "05:00" through "19:00".
func (g Grid) HourLabels() []string {
	labels := make([]string, g.NumRows)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", g.StartHour+i)
	}
	return labels
}

// WeekDates returns the Monday-to-Friday dates of the week containing anchor.
// Monday is always re-derived from the anchor's weekday rather than trusting
// a caller-supplied start date, so the visible window is never skewed mid-week.
func WeekDates(anchor time.Time) []time.Time {
	monday := dateutil.StartOfWorkweek(anchor)
	dates := make([]time.Time, WorkweekDays)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// FormatMonthDay renders a date as the "M-D" day token used in cell headers.
func FormatMonthDay(t time.Time) string {
	return fmt.Sprintf("%d-%d", int(t.Month()), t.Day())
}
