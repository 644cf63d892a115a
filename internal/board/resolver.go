package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

// Rejected-drop errors. A rejected drop leaves the booking where it is and
// never reaches the store.
var (
	ErrUnknownBooking  = errors.New("dragged identifier does not resolve to a known booking")
	ErrSamePosition    = errors.New("drop target equals the booking's current position")
	ErrDayNotDisplayed = errors.New("target day is not in the displayed week")
	ErrInvalidSlot     = errors.New("target hour slot is outside the visible range")
	ErrBadCellID       = errors.New("malformed cell identifier")
)

// MonthDay is the day token carried by a drop target: a month-day pair with
// no year. It is resolved against the displayed week, never against the
// calendar at large, so a drop from a stale render cannot land in the wrong
// week.
type MonthDay struct {
	Month int
	Day   int
}

// Matches reports whether the token denotes the given date.
func (md MonthDay) Matches(t time.Time) bool {
	return int(t.Month()) == md.Month && t.Day() == md.Day
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%d-%d", md.Month, md.Day)
}

// ParseMonthDay parses a "M-D" day token.
func ParseMonthDay(s string) (MonthDay, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return MonthDay{}, ErrBadCellID
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return MonthDay{}, ErrBadCellID
	}
	return MonthDay{Month: month, Day: day}, nil
}

// CellRef identifies one drop target cell on the board.
type CellRef struct {
	Mechanic string
	Day      MonthDay
	HourSlot int // 0-based index into the visible hour rows
}

// ParseCellID parses the textual drag payload "cell-<mechanic>-<M>-<D>-<hour>".
// The mechanic name is taken greedily from the left so names containing
// hyphens survive the round trip.
func ParseCellID(id string) (CellRef, error) {
	rest, ok := strings.CutPrefix(id, "cell-")
	if !ok {
		return CellRef{}, ErrBadCellID
	}
	parts := strings.Split(rest, "-")
	if len(parts) < 4 {
		return CellRef{}, ErrBadCellID
	}
	n := len(parts)
	mechanic := strings.Join(parts[:n-3], "-")
	if mechanic == "" {
		return CellRef{}, ErrBadCellID
	}
	month, err1 := strconv.Atoi(parts[n-3])
	day, err2 := strconv.Atoi(parts[n-2])
	slot, err3 := strconv.Atoi(parts[n-1])
	if err1 != nil || err2 != nil || err3 != nil {
		return CellRef{}, ErrBadCellID
	}
	return CellRef{
		Mechanic: mechanic,
		Day:      MonthDay{Month: month, Day: day},
		HourSlot: slot,
	}, nil
}

// ID renders the cell as its textual drag payload.
func (c CellRef) ID() string {
	return fmt.Sprintf("cell-%s-%s-%d", c.Mechanic, c.Day, c.HourSlot)
}

// DragIntent is the ephemeral description of one drag gesture: which booking
// was picked up and which cell it was dropped on.
type DragIntent struct {
	BookingID string
	Target    CellRef
}

// Reassignment is the pure description of the mutation a resolved drop asks
// for. Mechanic is nil when the assignment is unchanged; a Mechanic with an
// empty ID is a name-only reference, which may create a new mechanic record
// downstream.
type Reassignment struct {
	BookingID string
	NewStart  time.Time
	NewEnd    time.Time
	Mechanic  *booking.RecordRef
}

// Changes converts the reassignment to a store field-change set.
func (r *Reassignment) Changes() booking.FieldChanges {
	start, end := r.NewStart, r.NewEnd
	return booking.FieldChanges{
		Start:    &start,
		End:      &end,
		Mechanic: r.Mechanic,
	}
}

// Resolver interprets drag gestures against a booking snapshot. It performs
// no I/O; the caller owns permission checks, pending markers, and the write.
type Resolver struct {
	Grid grid.Grid
}

// Resolve turns a drag intent into a reassignment.
//
// The target day token must match one of the displayed week dates exactly.
// The new start is the target day at the slot's hour, on the hour; the
// booking's duration is preserved, never its original clock time. When the
// target mechanic differs from the current assignment, mechanicIDs supplies
// the previously-seen name-to-record-id mapping; a miss falls back to a
// name-only reference.
func (r Resolver) Resolve(intent DragIntent, snapshot []*booking.Booking, weekDates []time.Time, mechanicIDs map[string]string) (*Reassignment, error) {
	b := findBooking(snapshot, intent.BookingID)
	if b == nil {
		return nil, ErrUnknownBooking
	}

	if !r.Grid.ValidSlot(intent.Target.HourSlot) {
		return nil, ErrInvalidSlot
	}

	targetDay, ok := matchWeekDate(weekDates, intent.Target.Day)
	if !ok {
		return nil, ErrDayNotDisplayed
	}

	newStart := r.Grid.SlotStart(targetDay, intent.Target.HourSlot)
	if intent.Target.Mechanic == b.MechanicName() &&
		dateutil.SameDay(b.Start, targetDay) &&
		b.Start.Equal(newStart) {
		return nil, ErrSamePosition
	}

	re := &Reassignment{
		BookingID: b.ID,
		NewStart:  newStart,
		NewEnd:    newStart.Add(b.Duration()),
	}

	if intent.Target.Mechanic != b.MechanicName() {
		if id, ok := mechanicIDs[intent.Target.Mechanic]; ok {
			re.Mechanic = &booking.RecordRef{ID: id, Name: intent.Target.Mechanic}
		} else {
			re.Mechanic = &booking.RecordRef{Name: intent.Target.Mechanic}
		}
	}

	return re, nil
}

func findBooking(snapshot []*booking.Booking, id string) *booking.Booking {
	for _, b := range snapshot {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func matchWeekDate(weekDates []time.Time, md MonthDay) (time.Time, bool) {
	for _, d := range weekDates {
		if md.Matches(d) {
			return d, true
		}
	}
	return time.Time{}, false
}
