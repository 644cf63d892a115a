package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/config"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

type stubStore struct {
	bookings []*booking.Booking
	updated  map[string]booking.FieldChanges
}

func (s *stubStore) ListBookings(context.Context) ([]*booking.Booking, error) {
	return s.bookings, nil
}

func (s *stubStore) GetBooking(_ context.Context, id string) (*booking.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, booking.ErrBookingNotFound
}

func (s *stubStore) CreateBooking(_ context.Context, b *booking.Booking) error {
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *stubStore) UpdateBooking(_ context.Context, id string, changes booking.FieldChanges) error {
	if s.updated == nil {
		s.updated = make(map[string]booking.FieldChanges)
	}
	s.updated[id] = changes
	return nil
}

func (s *stubStore) CanUpdate(context.Context, ...string) bool { return true }

func (s *stubStore) ListMechanics(context.Context) ([]*booking.Mechanic, error) { return nil, nil }

func (s *stubStore) ListOrders(context.Context) ([]*booking.Order, error) { return nil, nil }

func (s *stubStore) GetOrderByNumber(context.Context, string) (*booking.Order, error) {
	return nil, booking.ErrOrderNotFound
}

func (s *stubStore) Close() error { return nil }

var testMonday = time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

func fixtureStore() *stubStore {
	return &stubStore{
		bookings: []*booking.Booking{
			{
				ID:       "b1",
				Title:    "Brake pads",
				Start:    testMonday.AddDate(0, 0, 1).Add(9 * time.Hour),
				End:      testMonday.AddDate(0, 0, 1).Add(10*time.Hour + 30*time.Minute),
				Mechanic: &booking.RecordRef{ID: "mech-1", Name: "Alice"},
				Status:   booking.StatusScheduled,
			},
			{
				ID:       "b2",
				Title:    "Oil change",
				Start:    testMonday.Add(6 * time.Hour),
				End:      testMonday.Add(7 * time.Hour),
				Mechanic: &booking.RecordRef{ID: "mech-2", Name: "Bob"},
				Status:   booking.StatusRequested,
			},
		},
	}
}

func newTestModel(t *testing.T, st *stubStore) Model {
	t.Helper()
	engine := board.NewEngine(st, grid.Default(), nil, nil)
	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	m := New(engine, config.Default(), nil)
	m.weekAnchor = testMonday
	m.loading = false
	m.width = 200
	m.height = 40
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, fixtureStore())

	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('l'))
	if m.cursor.Slot != 2 || m.cursor.Day != 1 {
		t.Errorf("cursor = %+v, want Slot 2 Day 1", m.cursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor.Col != 1 {
		t.Errorf("Col = %d after tab, want 1", m.cursor.Col)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor.Col != 0 {
		t.Errorf("Col = %d after second tab, want wrap to 0", m.cursor.Col)
	}

	// Clamped at the edges.
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, keyRune('k'))
	}
	if m.cursor.Slot != 0 {
		t.Errorf("Slot = %d after repeated up, want 0", m.cursor.Slot)
	}
}

func TestWeekNavigation(t *testing.T) {
	m := newTestModel(t, fixtureStore())

	m, _ = update(t, m, keyRune(']'))
	if got := m.weekDates()[0]; !got.Equal(testMonday.AddDate(0, 0, 7)) {
		t.Errorf("next week monday = %v, want %v", got, testMonday.AddDate(0, 0, 7))
	}
	m, _ = update(t, m, keyRune('['))
	if got := m.weekDates()[0]; !got.Equal(testMonday) {
		t.Errorf("monday after back = %v, want %v", got, testMonday)
	}
}

func TestGrabAndDrop(t *testing.T) {
	st := fixtureStore()
	m := newTestModel(t, st)

	// Columns freeze in first-seen order: Alice then Bob.
	m.cursor = Position{Col: 0, Day: 1, Slot: 4} // Tuesday 09:00
	m, _ = update(t, m, keyRune('m'))
	if m.mode != ModeMove || m.movingID != "b1" {
		t.Fatalf("after grab: mode = %v movingID = %q", m.mode, m.movingID)
	}

	m.cursor = Position{Col: 0, Day: 2, Slot: 3} // Wednesday 08:00
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("drop produced no command")
	}

	msg, ok := cmd().(movedMsg)
	if !ok {
		t.Fatalf("drop command returned %T, want movedMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("move error = %v", msg.err)
	}

	changes, ok := st.updated["b1"]
	if !ok {
		t.Fatal("store write missing for b1")
	}
	wantStart := testMonday.AddDate(0, 0, 2).Add(8 * time.Hour)
	if !changes.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", changes.Start, wantStart)
	}
	if got := changes.End.Sub(*changes.Start); got != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", got)
	}
	if changes.Mechanic != nil {
		t.Errorf("Mechanic = %+v, want nil for same column", changes.Mechanic)
	}

	m, _ = update(t, m, msg)
	if m.mode != ModeNormal || m.movingID != "" {
		t.Errorf("after movedMsg: mode = %v movingID = %q", m.mode, m.movingID)
	}
}

func TestGrabCancelled(t *testing.T) {
	m := newTestModel(t, fixtureStore())

	m.cursor = Position{Col: 0, Day: 1, Slot: 4}
	m, _ = update(t, m, keyRune('m'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal || m.movingID != "" {
		t.Errorf("after esc: mode = %v movingID = %q", m.mode, m.movingID)
	}
}

func TestGrabOnEmptyCellDoesNothing(t *testing.T) {
	m := newTestModel(t, fixtureStore())

	m.cursor = Position{Col: 0, Day: 4, Slot: 0}
	m, cmd := update(t, m, keyRune('m'))
	if m.mode != ModeNormal || cmd != nil {
		t.Errorf("grab on empty cell: mode = %v cmd = %v", m.mode, cmd)
	}
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestModel(t, fixtureStore())
	out := m.View()

	for _, want := range []string{"Alice", "Bob", "Brake pads", "Oil change", "2-4", "05:00", "19:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewLoading(t *testing.T) {
	m := newTestModel(t, fixtureStore())
	m.loading = true
	if out := m.View(); !strings.Contains(out, "Loading") {
		t.Errorf("View() = %q, want loading placeholder", out)
	}
}

func TestBookingUnderCursor(t *testing.T) {
	m := newTestModel(t, fixtureStore())

	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"first row of block", Position{Col: 0, Day: 1, Slot: 4}, "b1"},
		{"continuation row", Position{Col: 0, Day: 1, Slot: 5}, "b1"},
		{"row past block end", Position{Col: 0, Day: 1, Slot: 6}, ""},
		{"other column", Position{Col: 1, Day: 0, Slot: 1}, "b2"},
		{"empty cell", Position{Col: 1, Day: 3, Slot: 0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.cursor = tt.pos
			got := ""
			if b := m.bookingUnderCursor(); b != nil {
				got = b.ID
			}
			if got != tt.want {
				t.Errorf("bookingUnderCursor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanRows(t *testing.T) {
	tests := []struct {
		height float64
		want   int
	}{
		{25, 1},
		{50, 1},
		{51, 2},
		{75, 2},
		{150, 3},
		{0, 1},
	}
	for _, tt := range tests {
		if got := spanRows(tt.height, 50); got != tt.want {
			t.Errorf("spanRows(%v, 50) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestTextHelpers(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate = %q", got)
	}
	if got := pad("ab", 4); got != "ab  " {
		t.Errorf("pad = %q", got)
	}
	if got := center("ab", 6); got != "  ab  " {
		t.Errorf("center = %q", got)
	}
	if got := initials("Jean-Luc Picard"); got != "(JP)" {
		t.Errorf("initials = %q", got)
	}
}
