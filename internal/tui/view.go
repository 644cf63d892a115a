package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

const (
	minCellWidth   = 9
	hourLabelWidth = 6
)

// cellContent is what one (column, day, slot) cell shows: the booking whose
// block covers it, and whether this is the block's first row.
type cellContent struct {
	booking *booking.Booking
	start   bool
}

// View renders the board.
func (m Model) View() string {
	if m.loading {
		return "Loading bookings..."
	}

	mechs := m.mechanics()
	if len(mechs) == 0 {
		return m.renderHeader() + "\n\nNo bookings with assigned mechanics this week.\nUse 'shopboard add' to create one, or ] to change week.\n" + m.renderFooter()
	}

	boardView := m.renderGrid(mechs)
	if m.ordersOpen {
		boardView = lipgloss.JoinHorizontal(lipgloss.Top, boardView, m.renderOrdersPanel())
	}

	return strings.Join([]string{
		m.renderHeader(),
		boardView,
		m.renderFooter(),
	}, "\n")
}

func (m Model) renderHeader() string {
	dates := m.weekDates()
	title := fmt.Sprintf("Shop board  %s - %s",
		dates[0].Format("Mon 2 Jan"), dates[len(dates)-1].Format("Mon 2 Jan 2006"))

	extra := ""
	if number, ok := m.engine.SelectedOrder(); ok {
		extra = m.styles.Matched.Render(fmt.Sprintf("  order %s (%d bookings)", number, len(m.matched)))
	}
	if m.mode == ModeMove {
		extra += m.styles.Moving.Render("  MOVE")
	}

	return m.styles.Header.Render(title) + extra
}

func (m Model) cellWidth(numCols int) int {
	if m.width <= 0 || numCols == 0 {
		return minCellWidth
	}
	w := (m.width - hourLabelWidth) / numCols
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

func (m Model) renderGrid(mechs []booking.Mechanic) string {
	g := m.engine.Grid()
	dates := m.weekDates()
	numCols := len(mechs) * grid.WorkweekDays
	cw := m.cellWidth(numCols)

	cells := m.layoutCells(mechs, dates)

	var b strings.Builder

	// Mechanic band headers, each spanning the workweek.
	b.WriteString(strings.Repeat(" ", hourLabelWidth))
	for _, mech := range mechs {
		b.WriteString(m.styles.Header.Render(center(initials(mech.Name)+" "+mech.Name, cw*grid.WorkweekDays)))
	}
	b.WriteString("\n")

	// Day token row, repeated per mechanic.
	b.WriteString(strings.Repeat(" ", hourLabelWidth))
	for range mechs {
		for _, d := range dates {
			b.WriteString(m.styles.DayHeader.Render(center(grid.FormatMonthDay(d), cw)))
		}
	}
	b.WriteString("\n")

	labels := g.HourLabels()
	for slot, label := range labels {
		b.WriteString(m.styles.HourLabel.Render(pad(label, hourLabelWidth)))
		for col := range mechs {
			for dayIdx := range dates {
				b.WriteString(m.renderCell(cells[col*grid.WorkweekDays+dayIdx][slot], col, dayIdx, slot, cw))
			}
		}
		if slot < len(labels)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// layoutCells projects every displayed column once and spreads each block over
// the hour rows it covers.
func (m Model) layoutCells(mechs []booking.Mechanic, dates []time.Time) [][]cellContent {
	g := m.engine.Grid()
	cells := make([][]cellContent, len(mechs)*grid.WorkweekDays)
	for i := range cells {
		cells[i] = make([]cellContent, g.NumRows)
	}

	for col, mech := range mechs {
		for dayIdx, d := range dates {
			column := cells[col*grid.WorkweekDays+dayIdx]
			for _, pl := range m.engine.Placements(mech.Name, d) {
				startRow := int(pl.Top) / g.RowHeight
				endRow := startRow + spanRows(pl.Height, g.RowHeight)
				for row := startRow; row < endRow && row < g.NumRows; row++ {
					column[row] = cellContent{booking: pl.Booking, start: row == startRow}
				}
			}
		}
	}
	return cells
}

func (m Model) renderCell(c cellContent, col, dayIdx, slot, width int) string {
	underCursor := m.mode != ModeOrders &&
		col == m.cursor.Col && dayIdx == m.cursor.Day && slot == m.cursor.Slot

	if c.booking == nil {
		if underCursor {
			return m.styles.Cursor.Render(pad("", width))
		}
		return m.styles.Cell.Render(pad("", width))
	}

	var text string
	if c.start {
		text = statusGlyph(c.booking.Status) + " " + c.booking.Title
	} else if n := c.booking.OrderNumber(); n != "" {
		text = "  " + n
	} else {
		text = "  ·"
	}

	st := m.styles.statusStyle(c.booking.Status)
	if m.matched[c.booking.ID] {
		st = st.Bold(true).Underline(true)
	}
	if m.mode == ModeMove && c.booking.ID == m.movingID {
		st = st.Bold(true)
	}
	if underCursor {
		st = st.Reverse(true)
	}
	return st.Render(pad(" "+truncate(text, width-2), width))
}

func (m Model) renderOrdersPanel() string {
	orders := m.engine.Orders()
	selected, _ := m.engine.SelectedOrder()

	lines := []string{m.styles.Header.Render(" Orders")}
	for i, o := range orders {
		label := o.Number
		if o.Number == selected {
			label = "* " + label
		}
		style := m.styles.Panel
		if m.mode == ModeOrders && i == m.orderCursor {
			style = m.styles.PanelSel
		}
		lines = append(lines, style.Render(truncate(label, 20)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	detail := ""
	if b := m.bookingUnderCursor(); b != nil {
		detail = fmt.Sprintf("%s  %s-%s  %s",
			b.Title, b.Start.Format("15:04"), b.End.Format("15:04"), b.MechanicName())
		if n := b.OrderNumber(); n != "" {
			detail += "  order " + n
		}
		if b.Status != booking.StatusNone {
			detail += "  [" + string(b.Status) + "]"
		}
	}

	status := ""
	if m.statusMsg != "" {
		if m.statusIsErr {
			status = m.styles.StatusErr.Render(m.statusMsg)
		} else {
			status = m.styles.Status.Render(m.statusMsg)
		}
	}

	help := "hjkl move  tab column  [/] week  m grab  o orders  y yank  r reload  q quit"
	if m.mode == ModeMove {
		help = "hjkl pick a cell  enter drop  esc cancel"
	} else if m.mode == ModeOrders {
		help = "jk select  enter highlight  esc close"
	}

	return strings.Join([]string{
		m.styles.Footer.Render(detail),
		status,
		m.styles.Footer.Render(help),
	}, "\n")
}

// initials builds a short avatar stand-in from the mechanic's name.
func initials(name string) string {
	parts := strings.Fields(name)
	var b strings.Builder
	for i, p := range parts {
		if i == 2 {
			break
		}
		r := []rune(p)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return "(" + b.String() + ")"
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return string(r[:1])
	}
	return string(r[:w-1]) + "…"
}

func pad(s string, w int) string {
	if n := w - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return truncate(s, w)
}

func center(s string, w int) string {
	s = truncate(s, w)
	gap := w - len([]rune(s))
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
