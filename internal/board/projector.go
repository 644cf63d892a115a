package board

import (
	"time"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

// Placement positions one booking inside a (mechanic, day) column.
type Placement struct {
	Booking *booking.Booking
	Top     float64 // pixels from the top of the visible range
	Height  float64 // duration in hours times the row height
}

// Projector maps bookings onto the time grid. Bookings with a pending
// mutation are excluded entirely; they reappear at the new position once the
// mutation settles, avoiding a visible jump from old slot to new.
type Projector struct {
	Grid    grid.Grid
	Pending *Coalescer // optional
}

// Project returns placements for the bookings assigned to mechanic that start
// on day. Day matching is calendar-day equality. Bookings whose start hour
// falls outside the visible range are excluded, not clipped.
func (p Projector) Project(bookings []*booking.Booking, mechanic string, day time.Time) []Placement {
	var out []Placement
	for _, b := range bookings {
		if b.MechanicName() != mechanic {
			continue
		}
		if !dateutil.SameDay(b.Start, day) {
			continue
		}
		if p.Pending != nil && p.Pending.Pending(b.ID) {
			continue
		}
		top, ok := p.Grid.Offset(b.Start)
		if !ok {
			continue
		}
		out = append(out, Placement{
			Booking: b,
			Top:     top,
			Height:  p.Grid.Height(b.Start, b.End),
		})
	}
	return out
}
