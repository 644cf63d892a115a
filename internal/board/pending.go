package board

import (
	"errors"
	"time"
)

// GracePeriod is how long a committed mutation keeps its booking hidden,
// giving the store's read-after-write snapshot time to catch up before the
// booking reappears at its new position.
const GracePeriod = time.Second

// ErrMutationInFlight is returned when a booking already has an outstanding write.
var ErrMutationInFlight = errors.New("a mutation for this booking is already in flight")

type pendingState int

const (
	stateInFlight pendingState = iota
	stateCooling
)

type pendingEntry struct {
	state    pendingState
	coolDown time.Time // removal deadline, set on commit
}

// Coalescer tracks in-flight and just-committed reassignments so the grid
// never flashes a booking back to its stale position mid-update.
//
// Expiry is evaluated against the injected clock on read rather than by a
// scheduled callback; the board runs single-threaded and a cooled-down entry
// only matters at the next render.
type Coalescer struct {
	entries map[string]pendingEntry
	now     func() time.Time
}

// NewCoalescer creates a Coalescer. now may be nil, defaulting to time.Now.
func NewCoalescer(now func() time.Time) *Coalescer {
	if now == nil {
		now = time.Now
	}
	return &Coalescer{
		entries: make(map[string]pendingEntry),
		now:     now,
	}
}

// Begin marks the booking in-flight. Returns ErrMutationInFlight if a
// mutation for the same booking has not settled yet.
func (c *Coalescer) Begin(id string) error {
	if c.Pending(id) {
		return ErrMutationInFlight
	}
	c.entries[id] = pendingEntry{state: stateInFlight}
	return nil
}

// Commit moves the booking to cooling-down; the marker clears itself once
// the grace period elapses.
func (c *Coalescer) Commit(id string) {
	if _, ok := c.entries[id]; !ok {
		return
	}
	c.entries[id] = pendingEntry{
		state:    stateCooling,
		coolDown: c.now().Add(GracePeriod),
	}
}

// Fail removes the marker immediately so the booking reappears at its
// pre-drag position.
func (c *Coalescer) Fail(id string) {
	delete(c.entries, id)
}

// Pending reports whether the booking is in-flight or cooling down.
// Bookings with a pending marker are excluded from projection.
func (c *Coalescer) Pending(id string) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	if e.state == stateCooling && !c.now().Before(e.coolDown) {
		delete(c.entries, id)
		return false
	}
	return true
}

// InFlight reports whether a write for the booking is still outstanding.
func (c *Coalescer) InFlight(id string) bool {
	e, ok := c.entries[id]
	return ok && e.state == stateInFlight
}
