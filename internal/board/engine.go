package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

// Submission errors.
var (
	// ErrPermissionDenied means the capability check failed. Surfaced as a
	// blocking user-visible notice, never a silent drop.
	ErrPermissionDenied = errors.New("record editing is not enabled for this store")
	// ErrWriteFailed wraps a store rejection. The booking reverts to its
	// last-known position; no automatic retry, since resource and time may
	// have changed again.
	ErrWriteFailed = errors.New("store write failed")
)

// Engine composes the board over a record store: snapshot loading, frozen
// column order, projection, drag resolution with the pending-mutation
// lifecycle, and order matching. All methods run on the caller's event loop;
// the only asynchronous boundary is the store write inside Move.
type Engine struct {
	store  booking.Store
	logger *zap.Logger

	grid      grid.Grid
	order     *StableOrder
	pending   *Coalescer
	resolver  Resolver
	matcher   *Matcher
	selection Selection

	bookings    []*booking.Booking
	orders      []*booking.Order
	mechanicIDs map[string]string // name -> record id, accumulated across refreshes
	avatars     map[string]string // name -> avatar URL
}

// NewEngine creates an Engine. now is the clock used for pending-mutation
// grace expiry; nil defaults to time.Now.
func NewEngine(store booking.Store, g grid.Grid, logger *zap.Logger, now func() time.Time) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:       store,
		logger:      logger,
		grid:        g,
		order:       NewStableOrder(),
		pending:     NewCoalescer(now),
		resolver:    Resolver{Grid: g},
		matcher:     NewMatcher(nil),
		mechanicIDs: make(map[string]string),
		avatars:     make(map[string]string),
	}
}

// Grid returns the board geometry.
func (e *Engine) Grid() grid.Grid {
	return e.grid
}

// Refresh reloads the snapshot from the store and folds newly seen mechanics
// into the frozen column order. Missing supplementary data (orders table,
// avatars) degrades to empty results rather than failing the refresh.
func (e *Engine) Refresh(ctx context.Context) error {
	bookings, err := e.store.ListBookings(ctx)
	if err != nil {
		return fmt.Errorf("loading bookings: %w", err)
	}
	e.bookings = bookings

	var names []string
	for _, b := range bookings {
		if b.Mechanic == nil {
			continue
		}
		names = append(names, b.Mechanic.Name)
		if b.Mechanic.ID != "" {
			e.mechanicIDs[b.Mechanic.Name] = b.Mechanic.ID
		}
	}
	e.order.Update(names)

	if mechanics, err := e.store.ListMechanics(ctx); err != nil {
		e.logger.Warn("loading mechanics", zap.Error(err))
	} else {
		for _, m := range mechanics {
			e.mechanicIDs[m.Name] = m.ID
			e.avatars[m.Name] = m.AvatarURL
		}
	}

	if orders, err := e.store.ListOrders(ctx); err != nil {
		e.logger.Warn("loading orders", zap.Error(err))
		e.orders = nil
		e.matcher = NewMatcher(nil)
	} else {
		e.orders = orders
		e.matcher = NewMatcher(orders)
	}

	return nil
}

// Bookings returns the current snapshot.
func (e *Engine) Bookings() []*booking.Booking {
	return e.bookings
}

// Booking returns the snapshot record with the given id, or nil.
func (e *Engine) Booking(id string) *booking.Booking {
	return findBooking(e.bookings, id)
}

// Orders returns the current order records.
func (e *Engine) Orders() []*booking.Order {
	return e.orders
}

// Mechanics returns the mechanic columns in their frozen left-to-right order.
func (e *Engine) Mechanics() []booking.Mechanic {
	names := e.order.Names()
	out := make([]booking.Mechanic, 0, len(names))
	for _, name := range names {
		out = append(out, booking.Mechanic{
			ID:        e.mechanicIDs[name],
			Name:      name,
			AvatarURL: e.avatars[name],
		})
	}
	return out
}

// Placements projects the snapshot onto one (mechanic, day) column.
func (e *Engine) Placements(mechanic string, day time.Time) []Placement {
	p := Projector{Grid: e.grid, Pending: e.pending}
	return p.Project(e.bookings, mechanic, day)
}

// Pending reports whether the booking is hidden by a pending mutation.
func (e *Engine) Pending(id string) bool {
	return e.pending.Pending(id)
}

// Move interprets a drag gesture and, if it resolves, submits the write.
// weekDates is the displayed Monday-to-Friday sequence. A rejected drop
// returns one of the resolver errors and never contacts the store. A second
// drag on a booking with an outstanding write is rejected, not queued.
func (e *Engine) Move(ctx context.Context, intent DragIntent, weekDates []time.Time) (*Reassignment, error) {
	if e.pending.InFlight(intent.BookingID) {
		return nil, ErrMutationInFlight
	}

	re, err := e.resolver.Resolve(intent, e.bookings, weekDates, e.mechanicIDs)
	if err != nil {
		return nil, err
	}

	if re.Mechanic != nil && re.Mechanic.ID == "" {
		e.logger.Warn("no record id for mechanic, using name-only reference",
			zap.String("mechanic", re.Mechanic.Name))
	}

	if !e.store.CanUpdate(ctx, re.BookingID) {
		e.logger.Warn("permission denied", zap.String("booking", re.BookingID))
		return nil, ErrPermissionDenied
	}

	if err := e.pending.Begin(re.BookingID); err != nil {
		return nil, err
	}

	if err := e.store.UpdateBooking(ctx, re.BookingID, re.Changes()); err != nil {
		e.pending.Fail(re.BookingID)
		e.logger.Error("updating booking", zap.String("booking", re.BookingID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	e.pending.Commit(re.BookingID)
	e.logger.Info("booking rescheduled",
		zap.String("booking", re.BookingID),
		zap.Time("start", re.NewStart),
		zap.Time("end", re.NewEnd))
	return re, nil
}

// SelectOrder records the order selection. Re-selecting the current order is
// idempotent, not a toggle-off.
func (e *Engine) SelectOrder(number string) {
	e.selection.Select(number)
}

// ClearSelection drops the order selection.
func (e *Engine) ClearSelection() {
	e.selection.Clear()
}

// SelectedOrder returns the selected order number, if any.
func (e *Engine) SelectedOrder() (string, bool) {
	return e.selection.Current()
}

// MatchedBookings returns the bookings referencing the given order number.
// A missing order record is not an error; the linked-identifier rule simply
// cannot apply.
func (e *Engine) MatchedBookings(ctx context.Context, number string) []*booking.Booking {
	order, err := e.store.GetOrderByNumber(ctx, number)
	if err != nil && !errors.Is(err, booking.ErrOrderNotFound) {
		e.logger.Warn("resolving order", zap.String("number", number), zap.Error(err))
	}
	return e.matcher.FindBookingsForOrder(number, e.bookings, order)
}
