package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// Vertical layout of the grid area, in lines.
const (
	gridTopMargin = 1
	periodHeader  = 2 // title + weekday labels
)

// dragState tracks the left button between press and release. A press
// becomes a drag on the first horizontal motion; otherwise the release is
// a tap.
type dragState struct {
	pressed bool
	active  bool
	startX  int
	startY  int
}

// handleMouseMsg turns mouse events into widget gestures.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.pagePeriod(calendar.Backward)
	case msg.Button == tea.MouseButtonWheelDown:
		m.pagePeriod(calendar.Forward)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.drag = dragState{pressed: true, startX: msg.X, startY: msg.Y}

	case msg.Action == tea.MouseActionMotion && m.drag.pressed:
		m.dragTo(msg.X)

	case msg.Action == tea.MouseActionRelease && m.drag.pressed:
		drag := m.drag
		m.drag = dragState{}
		if drag.active {
			if err := m.ctrl.GestureEnded(float64(msg.X)); err != nil {
				m.log.Debug("gesture end ignored", zap.Error(err))
			}
			break
		}
		cmd = m.tap(msg.X, msg.Y)
	}

	synced := m.sync()
	return m, tea.Batch(cmd, synced)
}

func (m *Model) dragTo(x int) {
	if !m.drag.active {
		if x == m.drag.startX {
			return
		}
		if err := m.ctrl.GestureBegan(float64(m.drag.startX)); err != nil {
			m.log.Debug("gesture ignored", zap.Error(err))
			m.drag = dragState{}
			return
		}
		m.drag.active = true
	}
	if err := m.ctrl.GestureMoved(float64(x)); err != nil {
		m.log.Debug("gesture move ignored", zap.Error(err))
	}
}

// tap selects the day under (x, y) in the centred period.
func (m *Model) tap(x, y int) tea.Cmd {
	if m.ctrl.State() != widget.Idle {
		return nil
	}
	idx, ok := m.slotAt(x, y)
	if !ok {
		return nil
	}
	cur := m.ctrl.Window().Current()
	slot := cur.Slot(idx)
	if slot.Empty() {
		return nil
	}
	m.cursor = slot.Date
	return m.selectSlot(idx)
}

// slotAt maps screen coordinates to a slot index of the current period.
func (m Model) slotAt(x, y int) (int, bool) {
	left, top := m.paneOrigin()
	cols := m.cal().WeekdayCount()
	col := x - left
	row := y - top - periodHeader
	if col < 0 || row < 0 || m.cellWidth <= 0 {
		return 0, false
	}
	col /= m.cellWidth
	if col >= cols {
		return 0, false
	}
	idx := row*cols + col
	if idx >= m.ctrl.Window().Current().Len() {
		return 0, false
	}
	return idx, true
}

// paneOrigin returns the screen column and line where the centred period
// starts.
func (m Model) paneOrigin() (left, top int) {
	left = (m.width - m.paneWidth()) / 2
	if left < 0 {
		left = 0
	}
	return left, gridTopMargin
}
