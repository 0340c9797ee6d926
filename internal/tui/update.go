package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/dateutil"
	"github.com/javiermolinar/swipecal/internal/tui/commands"
	"github.com/javiermolinar/swipecal/internal/tui/view"
	"github.com/javiermolinar/swipecal/internal/widget"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cellWidth = m.calculateCellWidth()
		m.help.Width = msg.Width
		m.ctrl.SetViewportWidth(float64(m.paneWidth()))
		return m, nil

	case commands.AnimationFrameMsg:
		return m.handleFrame(msg)

	case commands.ErrMsg:
		m.log.Error("command failed", zap.Error(msg.Err))
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, false)
		return m, cmd

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleFrame advances the running animation and, once it lands, reports
// completion to the controller.
func (m Model) handleFrame(msg commands.AnimationFrameMsg) (tea.Model, tea.Cmd) {
	done, ok := m.shell.step(msg.Token, msg.Time)
	if !ok {
		return m, nil // stale frame
	}
	if !done {
		return m, commands.Frame(msg.Token)
	}

	if err := m.ctrl.AnimationCompleted(msg.Token); err != nil {
		m.log.Error("animation completion rejected", zap.Error(err))
	}
	cmd := m.sync()
	return m, cmd
}

// sync reacts to what the controller did during the last call: it reports
// new selections, starts the frame loop of a new animation and keeps the
// cursor inside the centred period.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	if m.host.takeChange() {
		cmds = append(cmds, m.setStatus("Selected "+view.FormatDate(m.host.SelectedDate()), false))
	}
	if token, ok := m.shell.pendingFrame(); ok {
		cmds = append(cmds, commands.Frame(token))
	}
	if m.ctrl.State() == widget.Idle {
		m.clampCursor()
	}
	return tea.Batch(cmds...)
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	ttl := statusTTL
	if isErr {
		ttl = errorTTL
	}
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(ttl)
	return commands.ClearStatusAfter(ttl)
}

func (m Model) calculateCellWidth() int {
	w := (m.width - 2) / m.cal().WeekdayCount()
	return max(minCellWidth, min(maxCellWidth, w))
}

// clampCursor moves the cursor into the current period when it fell out,
// preferring the selected date, then today, then the first day.
func (m *Model) clampCursor() {
	cal := m.cal()
	cur := m.ctrl.Window().Current()
	if cur.IndexOf(cal, m.cursor) >= 0 {
		return
	}

	candidates := []time.Time{m.host.SelectedDate(), cal.Today(m.now())}
	for _, c := range candidates {
		if cur.IndexOf(cal, c) >= 0 {
			m.cursor = cal.Day(c)
			return
		}
	}
	for _, s := range cur.Slots() {
		if !s.Empty() {
			m.cursor = s.Date
			return
		}
	}
}

// page starts a slide in dir. It reports whether the controller accepted
// it; paging is refused while busy and toward blocked periods.
func (m *Model) page(dir calendar.Direction) bool {
	var err error
	if dir == calendar.Forward {
		err = m.ctrl.Advance()
	} else {
		err = m.ctrl.Retreat()
	}
	if err != nil {
		m.log.Debug("page ignored", zap.Error(err))
		return false
	}
	return m.ctrl.State() == widget.Animating
}

// pagePeriod pages one period and carries the cursor along.
func (m *Model) pagePeriod(dir calendar.Direction) {
	if !m.page(dir) {
		return
	}
	if m.ctrl.Mode() == calendar.Month {
		m.cursor = dateutil.AddMonthsClamped(m.cursor, int(dir))
		return
	}
	m.cursor = m.cal().AddDays(m.cursor, int(dir)*m.cal().WeekdayCount())
}

// moveCursor moves the cursor by days, paging when it crosses into an
// adjacent period.
func (m *Model) moveCursor(days int) {
	if m.ctrl.State() != widget.Idle || days == 0 {
		return
	}
	cal := m.cal()
	target := cal.AddDays(m.cursor, days)
	w := m.ctrl.Window()
	if w.Current().IndexOf(cal, target) >= 0 {
		m.cursor = target
		return
	}

	dir, pos := calendar.Forward, widget.Next
	if days < 0 {
		dir, pos = calendar.Backward, widget.Previous
	}
	if w.At(pos).IndexOf(cal, target) < 0 {
		return
	}
	if m.page(dir) {
		m.cursor = target
	}
}

// selectCursor selects the day under the cursor.
func (m *Model) selectCursor() tea.Cmd {
	cal := m.cal()
	cur := m.ctrl.Window().Current()
	idx := cur.IndexOf(cal, m.cursor)
	if idx < 0 {
		return nil
	}
	return m.selectSlot(idx)
}

// selectSlot selects slot idx of the current period, explaining refusals.
func (m *Model) selectSlot(idx int) tea.Cmd {
	cur := m.ctrl.Window().Current()
	if m.ctrl.Select(widget.Current, idx) {
		return nil
	}
	slot := cur.Slot(idx)
	if !m.host.PastDaysEnabled() && m.cal().DayType(slot.Date, m.now()) == calendar.Past {
		return m.setStatus("Past days are disabled", true)
	}
	return nil
}

func (m *Model) jumpToToday() {
	if err := m.ctrl.JumpToToday(); err != nil {
		m.log.Debug("jump ignored", zap.Error(err))
		return
	}
	m.cursor = m.cal().Today(m.now())
}

func (m *Model) toggleMode() {
	next := calendar.Week
	if m.ctrl.Mode() == calendar.Week {
		next = calendar.Month
	}
	if err := m.ctrl.SetMode(next); err != nil {
		m.log.Debug("mode change ignored", zap.Error(err))
	}
}

// goTo selects the date described by s and rebuilds the window around it.
func (m *Model) goTo(s string) tea.Cmd {
	if m.ctrl.State() != widget.Idle {
		return nil
	}
	cal := m.cal()
	today := cal.Today(m.now())

	date, err := dateutil.ParseRelativeDate(s, today)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Invalid date %q: %v", s, err), true)
	}
	date = cal.Day(date)
	if err := m.checkSelectable(date, today); err != nil {
		return m.setStatus(err.Error(), true)
	}

	m.host.SetSelectedDate(date)
	if err := m.ctrl.Reload(); err != nil {
		return m.setStatus(fmt.Sprintf("Error: %v", err), true)
	}
	m.host.SelectionChanged(date)
	m.cursor = date
	return nil
}

var (
	errOutOfRange = errors.New("date is outside the calendar range")
	errPastDay    = errors.New("past days are disabled")
)

func (m Model) checkSelectable(date, today time.Time) error {
	cal := m.cal()
	if !cal.InBounds(date) {
		return fmt.Errorf("%s: %w", view.ISODate(date), errOutOfRange)
	}
	if date.Before(today) && !m.host.PastDaysEnabled() {
		return fmt.Errorf("%s: %w", view.ISODate(date), errPastDay)
	}
	return nil
}
