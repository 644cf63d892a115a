package board

import (
	"testing"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
)

func TestFindBookingsForOrder(t *testing.T) {
	target := &booking.Order{ID: "ord-1", Number: "A-1042"}
	orders := []*booking.Order{
		target,
		{ID: "ord-2", Number: "B-7"},
	}
	m := NewMatcher(orders)

	byID := &booking.Booking{ID: "b1", OrderRefs: []booking.RecordRef{{ID: "ord-1", Name: "ignored"}}}
	byID2 := &booking.Booking{ID: "b2", OrderRefs: []booking.RecordRef{{ID: "ord-1", Name: "A-1042"}}}
	byNumber := &booking.Booking{ID: "b3", OrderRefs: []booking.RecordRef{{ID: "ord-unknown", Name: " A-1042 "}}}
	byText := &booking.Booking{ID: "b4", OrderText: "A-1042 "}
	other := &booking.Booking{ID: "b5", OrderRefs: []booking.RecordRef{{ID: "ord-2", Name: "B-7"}}}
	none := &booking.Booking{ID: "b6"}

	bookings := []*booking.Booking{byID, byID2, byNumber, byText, other, none}

	got := m.FindBookingsForOrder("A-1042", bookings, target)
	if len(got) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(got))
	}
	wantIDs := []string{"b1", "b2", "b3", "b4"}
	for i, b := range got {
		if b.ID != wantIDs[i] {
			t.Errorf("match %d = %s, want %s", i, b.ID, wantIDs[i])
		}
	}
}

func TestMatcherRulePriority(t *testing.T) {
	// The referenced record's resolved number disagrees with its display
	// value; the identifier match (rule 1) must still win.
	target := &booking.Order{ID: "ord-1", Number: "A-1042"}
	m := NewMatcher([]*booking.Order{{ID: "ord-x", Number: "C-9"}, target})

	b := &booking.Booking{ID: "b1", OrderRefs: []booking.RecordRef{{ID: "ord-1", Name: "stale label"}}}
	got := m.FindBookingsForOrder("A-1042", []*booking.Booking{b}, target)
	if len(got) != 1 {
		t.Fatalf("rule 1 match lost: %v", got)
	}
}

func TestMatcherRuleTwoResolvesThroughOrderTable(t *testing.T) {
	// The linked record is a different order record whose own number matches
	// the target string; its display value does not.
	m := NewMatcher([]*booking.Order{{ID: "ord-dup", Number: "A-1042"}})

	b := &booking.Booking{ID: "b1", OrderRefs: []booking.RecordRef{{ID: "ord-dup", Name: "wrong"}}}
	got := m.FindBookingsForOrder("A-1042", []*booking.Booking{b}, nil)
	if len(got) != 1 {
		t.Fatal("rule 2 resolution through the order table failed")
	}
}

func TestMatcherWithoutOrderRecord(t *testing.T) {
	// No order record exists for the number; rules 2 and 3 still apply.
	m := NewMatcher(nil)

	byName := &booking.Booking{ID: "b1", OrderRefs: []booking.RecordRef{{ID: "x", Name: "A-1"}}}
	byText := &booking.Booking{ID: "b2", OrderText: "A-1"}
	miss := &booking.Booking{ID: "b3", OrderText: "A-2"}

	got := m.FindBookingsForOrder("A-1", []*booking.Booking{byName, byText, miss}, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestMatcherEmptyNumber(t *testing.T) {
	m := NewMatcher(nil)
	b := &booking.Booking{ID: "b1", OrderText: ""}
	if got := m.FindBookingsForOrder("  ", []*booking.Booking{b}, nil); got != nil {
		t.Errorf("blank numbers must match nothing, got %v", got)
	}
}

func TestSelection(t *testing.T) {
	var s Selection

	if _, ok := s.Current(); ok {
		t.Fatal("fresh selection must be empty")
	}

	s.Select("A-1")
	if n, ok := s.Current(); !ok || n != "A-1" {
		t.Fatalf("expected A-1 selected, got %q %v", n, ok)
	}

	// Re-select is idempotent, not a toggle-off.
	s.Select("A-1")
	if n, ok := s.Current(); !ok || n != "A-1" {
		t.Fatalf("re-select changed state: %q %v", n, ok)
	}

	// Selecting another order replaces the previous selection.
	s.Select("B-2")
	if n, _ := s.Current(); n != "B-2" {
		t.Fatalf("expected B-2, got %q", n)
	}

	s.Clear()
	if _, ok := s.Current(); ok {
		t.Fatal("expected empty after Clear")
	}
}
