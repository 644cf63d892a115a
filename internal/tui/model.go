// Package tui provides the terminal board for shopboard.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/config"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A booking is picked up; the cursor chooses the drop cell
	ModeOrders      // The order side list has focus
)

// Position is the cursor position on the board.
type Position struct {
	Col  int // mechanic column index
	Day  int // 0=Monday .. 4=Friday
	Slot int // visible hour row index
}

// Model is the main TUI model.
type Model struct {
	engine *board.Engine
	cfg    *config.Config
	logger *zap.Logger
	styles *Styles
	now    func() time.Time

	weekAnchor time.Time // Monday of the displayed week
	cursor     Position
	mode       Mode

	movingID string // booking picked up in move mode

	// Orders panel
	ordersOpen  bool
	orderCursor int
	matched     map[string]bool // booking ids matched to the selected order

	width  int
	height int

	statusMsg   string
	statusIsErr bool
	statusUntil time.Time

	loading bool
}

// New creates the board model.
func New(engine *board.Engine, cfg *config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now
	return Model{
		engine:     engine,
		cfg:        cfg,
		logger:     logger,
		styles:     NewStyles(),
		now:        now,
		weekAnchor: dateutil.StartOfWorkweek(now()),
		matched:    make(map[string]bool),
		loading:    true,
	}
}

// Init starts the initial snapshot load and the cooldown tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshCmd(m.engine), tickCmd())
}

// weekDates returns the displayed Monday-to-Friday sequence.
func (m Model) weekDates() []time.Time {
	return grid.WeekDates(m.weekAnchor)
}

// mechanics returns the frozen column order.
func (m Model) mechanics() []booking.Mechanic {
	return m.engine.Mechanics()
}

// cellRefUnderCursor describes the cursor cell as a drop target.
func (m Model) cellRefUnderCursor() (board.CellRef, bool) {
	mechs := m.mechanics()
	if m.cursor.Col >= len(mechs) {
		return board.CellRef{}, false
	}
	day := m.weekDates()[m.cursor.Day]
	return board.CellRef{
		Mechanic: mechs[m.cursor.Col].Name,
		Day:      board.MonthDay{Month: int(day.Month()), Day: day.Day()},
		HourSlot: m.cursor.Slot,
	}, true
}

// bookingUnderCursor returns the booking whose block covers the cursor cell.
func (m Model) bookingUnderCursor() *booking.Booking {
	mechs := m.mechanics()
	if m.cursor.Col >= len(mechs) {
		return nil
	}
	day := m.weekDates()[m.cursor.Day]
	g := m.engine.Grid()
	for _, pl := range m.engine.Placements(mechs[m.cursor.Col].Name, day) {
		startRow := int(pl.Top) / g.RowHeight
		endRow := startRow + spanRows(pl.Height, g.RowHeight)
		if m.cursor.Slot >= startRow && m.cursor.Slot < endRow {
			return pl.Booking
		}
	}
	return nil
}

// spanRows converts a pixel height to a number of hour rows, minimum one.
func spanRows(heightPx float64, rowHeight int) int {
	rows := int((heightPx + float64(rowHeight) - 1) / float64(rowHeight))
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusUntil = m.now().Add(4 * time.Second)
}

// refreshMatches recomputes the matched-booking highlight set for the
// current order selection.
func (m *Model) refreshMatches() {
	m.matched = make(map[string]bool)
	number, ok := m.engine.SelectedOrder()
	if !ok {
		return
	}
	for _, b := range m.engine.MatchedBookings(context.Background(), number) {
		m.matched[b.ID] = true
	}
}
