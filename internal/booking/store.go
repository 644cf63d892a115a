package booking

import (
	"context"
	"time"
)

// FieldChanges describes a partial update to a booking record.
// Nil fields are left untouched.
type FieldChanges struct {
	Start    *time.Time
	End      *time.Time
	Mechanic *RecordRef // ID set: link existing record; ID empty: name-only reference,
	// which may create a new mechanic record downstream
}

// Store defines the record-store contract the board depends on.
type Store interface {
	// ListBookings returns all booking records in store order.
	ListBookings(ctx context.Context) ([]*Booking, error)

	// GetBooking retrieves a booking by ID. Returns ErrBookingNotFound if absent.
	GetBooking(ctx context.Context, id string) (*Booking, error)

	// CreateBooking adds a booking, assigning its ID.
	CreateBooking(ctx context.Context, b *Booking) error

	// UpdateBooking applies a field-change set to a booking record.
	UpdateBooking(ctx context.Context, id string, changes FieldChanges) error

	// CanUpdate reports whether the given booking records may be written.
	// Must be checked before every write attempt.
	CanUpdate(ctx context.Context, ids ...string) bool

	// ListMechanics returns all mechanic records.
	ListMechanics(ctx context.Context) ([]*Mechanic, error)

	// ListOrders returns all order records.
	ListOrders(ctx context.Context) ([]*Order, error)

	// GetOrderByNumber retrieves an order by its order number.
	// Returns ErrOrderNotFound if absent.
	GetOrderByNumber(ctx context.Context, number string) (*Order, error)

	// Close releases any resources held by the store.
	Close() error
}
