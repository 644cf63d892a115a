// Package booking defines the core domain types for shopboard.
package booking

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEndBeforeStart = errors.New("end time must not be before start time")
	ErrInvalidStatus  = errors.New("unknown booking status")
)

// Domain errors.
var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrMechanicNotFound = errors.New("mechanic not found")
)

// Status represents the workshop state of a booking.
type Status string

const (
	StatusRequested  Status = "requested"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
	StatusCompleted  Status = "completed"
	StatusNone       Status = "none"
)

// ParseStatus validates a status string. Empty input maps to StatusNone.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusRequested, StatusScheduled, StatusInProgress, StatusReady, StatusCompleted, StatusNone:
		return Status(s), nil
	case "":
		return StatusNone, nil
	default:
		return "", ErrInvalidStatus
	}
}

// RecordRef is a reference to a record in another table, carrying the
// referenced record's identifier and its display value.
type RecordRef struct {
	ID   string
	Name string
}

// Booking represents a time-boxed unit of work assigned to at most one mechanic.
// Bookings are owned by the record store; the board holds read snapshots.
type Booking struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Mechanic  *RecordRef  // nil when unassigned
	OrderRefs []RecordRef // linked order records
	OrderText string      // plain-text order column, kept for stores migrated from text fields
	Status    Status
	ImageURL  string
	CreatedAt time.Time
}

// New creates a Booking with validation.
func New(title string, start, end time.Time, status Status) (*Booking, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	return &Booking{
		Title:     title,
		Start:     start,
		End:       end,
		Status:    status,
		CreatedAt: time.Now(),
	}, nil
}

// Duration returns the booked time range length.
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// MechanicName returns the assigned mechanic's display name, or "" when unassigned.
func (b *Booking) MechanicName() string {
	if b.Mechanic == nil {
		return ""
	}
	return b.Mechanic.Name
}

// OrderNumber returns the first order reference's display value, falling back
// to the plain-text order column.
func (b *Booking) OrderNumber() string {
	if len(b.OrderRefs) > 0 {
		return b.OrderRefs[0].Name
	}
	return b.OrderText
}

// Mechanic represents a named resource bookings can be assigned to.
// Mechanics are derived from the booking set plus the mechanics table.
type Mechanic struct {
	ID        string
	Name      string
	AvatarURL string
}

// Order represents a work order that zero or more bookings may reference.
type Order struct {
	ID     string
	Number string
}
