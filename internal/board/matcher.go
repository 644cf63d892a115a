package board

import (
	"strings"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
)

// Matcher finds the bookings that reference a selected order. Matching is
// attempted in strict priority order and the first satisfied rule wins per
// referenced entry:
//
//  1. a linked entry's identifier equals the order record's identifier
//  2. a linked entry's own order number, resolved through the order table,
//     equals the target number as trimmed strings
//  3. the booking's plain-text order column equals the target number
//
// Rule 3 is only reachable when the schema deviates from the linked-reference
// field; it is kept as a documented fallback for stores migrated from text
// columns.
type Matcher struct {
	ordersByID map[string]*booking.Order
}

// NewMatcher creates a Matcher over the current order records.
func NewMatcher(orders []*booking.Order) *Matcher {
	byID := make(map[string]*booking.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	return &Matcher{ordersByID: byID}
}

// FindBookingsForOrder returns the bookings referencing the given order, in
// snapshot order. order may be nil when no order record exists for the
// number; rules 2 and 3 still apply.
func (m *Matcher) FindBookingsForOrder(number string, bookings []*booking.Booking, order *booking.Order) []*booking.Booking {
	target := strings.TrimSpace(number)
	if target == "" {
		return nil
	}

	var matched []*booking.Booking
	for _, b := range bookings {
		if m.matches(b, target, order) {
			matched = append(matched, b)
		}
	}
	return matched
}

func (m *Matcher) matches(b *booking.Booking, target string, order *booking.Order) bool {
	for _, ref := range b.OrderRefs {
		if order != nil && ref.ID == order.ID {
			return true
		}
		if strings.TrimSpace(m.refNumber(ref)) == target {
			return true
		}
	}
	return strings.TrimSpace(b.OrderText) == target
}

// refNumber resolves a referenced entry's own order number, falling back to
// the reference's display value when the order table has no such record.
func (m *Matcher) refNumber(ref booking.RecordRef) string {
	if o, ok := m.ordersByID[ref.ID]; ok {
		return o.Number
	}
	return ref.Name
}

// Selection is the single-valued order selection: at most one order number.
type Selection struct {
	number string
	active bool
}

// Select sets the selection. Re-selecting the current order keeps the
// selection unchanged; it is not a toggle-off.
func (s *Selection) Select(number string) {
	s.number = number
	s.active = true
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.number = ""
	s.active = false
}

// Current returns the selected order number, if any.
func (s *Selection) Current() (string, bool) {
	return s.number, s.active
}
