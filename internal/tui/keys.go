package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
	"github.com/automation-integrationsoffert/shopboard/internal/store"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("load failed: %v", msg.err), true)
			return m, nil
		}
		m.refreshMatches()
		return m, nil

	case movedMsg:
		m.mode = ModeNormal
		m.movingID = ""
		if msg.err != nil {
			m.setStatus(moveErrorText(msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("rescheduled to %s %s",
			msg.re.NewStart.Format("Mon 2 Jan"), msg.re.NewStart.Format("15:04")), false)
		return m, refreshCmd(m.engine)

	case tickMsg:
		if m.statusMsg != "" && m.now().After(m.statusUntil) {
			m.statusMsg = ""
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeOrders {
		return m.handleOrdersKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
	case "down", "j":
		if m.cursor.Slot < m.engine.Grid().NumRows-1 {
			m.cursor.Slot++
		}
	case "left", "h":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "right", "l":
		if m.cursor.Day < grid.WorkweekDays-1 {
			m.cursor.Day++
		}
	case "tab":
		if n := len(m.mechanics()); n > 0 {
			m.cursor.Col = (m.cursor.Col + 1) % n
		}
	case "shift+tab":
		if n := len(m.mechanics()); n > 0 {
			m.cursor.Col = (m.cursor.Col + n - 1) % n
		}

	case "[":
		m.weekAnchor = m.weekAnchor.AddDate(0, 0, -7)
	case "]":
		m.weekAnchor = m.weekAnchor.AddDate(0, 0, 7)
	case "t":
		m.weekAnchor = dateutil.StartOfWorkweek(m.now())

	case "r":
		m.loading = true
		return m, refreshCmd(m.engine)

	case "o":
		if len(m.engine.Orders()) == 0 {
			m.setStatus("no orders in store", false)
			return m, nil
		}
		m.mode = ModeOrders
		m.ordersOpen = true

	case "y":
		if b := m.bookingUnderCursor(); b != nil && b.OrderNumber() != "" {
			if err := clipboard.WriteAll(b.OrderNumber()); err != nil {
				m.setStatus("clipboard unavailable", true)
			} else {
				m.setStatus("copied "+b.OrderNumber(), false)
			}
		}

	case "m", "enter", " ":
		return m.handleGrab()

	case "esc":
		if m.mode == ModeMove {
			m.mode = ModeNormal
			m.movingID = ""
			m.setStatus("move cancelled", false)
		} else if _, ok := m.engine.SelectedOrder(); ok {
			m.engine.ClearSelection()
			m.refreshMatches()
		}
	}

	return m, nil
}

// handleGrab picks up the booking under the cursor, or drops the one being
// moved onto the cursor cell.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	if m.mode == ModeMove {
		target, ok := m.cellRefUnderCursor()
		if !ok {
			return m, nil
		}
		intent := board.DragIntent{BookingID: m.movingID, Target: target}
		return m, moveCmd(m.engine, intent, m.weekDates())
	}

	b := m.bookingUnderCursor()
	if b == nil {
		return m, nil
	}
	if m.engine.Pending(b.ID) {
		m.setStatus("booking has an update in flight", true)
		return m, nil
	}
	m.mode = ModeMove
	m.movingID = b.ID
	m.setStatus("moving "+b.Title+" - pick a cell and press enter", false)
	return m, nil
}

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	orders := m.engine.Orders()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.orderCursor > 0 {
			m.orderCursor--
		}
	case "down", "j":
		if m.orderCursor < len(orders)-1 {
			m.orderCursor++
		}
	case "enter", " ":
		if m.orderCursor < len(orders) {
			m.engine.SelectOrder(orders[m.orderCursor].Number)
			m.refreshMatches()
			m.mode = ModeNormal
		}
	case "esc", "o":
		m.mode = ModeNormal
		m.ordersOpen = false
	}

	return m, nil
}

// moveErrorText maps submission errors to user-facing messages. Permission
// denials are blocking notices, not silent drops.
func moveErrorText(err error) string {
	switch {
	case errors.Is(err, board.ErrPermissionDenied), errors.Is(err, store.ErrReadOnly):
		return "cannot update records: record editing is not enabled for this store"
	case errors.Is(err, board.ErrSamePosition):
		return "booking is already there"
	case errors.Is(err, board.ErrDayNotDisplayed):
		return "drop target is not in the displayed week"
	case errors.Is(err, board.ErrMutationInFlight):
		return "an update for this booking is still in flight"
	case errors.Is(err, board.ErrUnknownBooking):
		return "booking no longer exists"
	case errors.Is(err, board.ErrWriteFailed):
		return fmt.Sprintf("update failed: %v", err)
	default:
		return fmt.Sprintf("move rejected: %v", err)
	}
}
