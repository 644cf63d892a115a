// Package board implements the calendar layout and rescheduling engine:
// stable column ordering, booking projection, drag resolution, order
// matching, and pending-mutation tracking.
package board

// StableOrder derives and freezes a left-to-right order of mechanic columns.
// The booking set's natural iteration order shifts between refreshes, and
// columns reordering on every write would be disorienting mid-reschedule, so
// the order observed first is kept. Names seen later are appended, never
// reordered or removed.
type StableOrder struct {
	names []string
	seen  map[string]bool
}

// NewStableOrder returns an empty order.
func NewStableOrder() *StableOrder {
	return &StableOrder{seen: make(map[string]bool)}
}

// Update records the current names in first-seen order. Known names keep
// their positions; new names are appended at the end.
func (o *StableOrder) Update(current []string) {
	for _, name := range current {
		if name == "" || o.seen[name] {
			continue
		}
		o.seen[name] = true
		o.names = append(o.names, name)
	}
}

// Names returns a copy of the frozen order.
func (o *StableOrder) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Len returns the number of known names.
func (o *StableOrder) Len() int {
	return len(o.names)
}
