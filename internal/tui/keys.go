package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/tui/commands"
	"github.com/javiermolinar/swipecal/internal/tui/input"
	"github.com/javiermolinar/swipecal/internal/tui/view"
)

// keyMap holds the normal-mode bindings. It implements help.KeyMap.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Select   key.Binding
	Today    key.Binding
	Mode     key.Binding
	GoTo     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("H", "pgup", "shift+left"),
			key.WithHelp("H", "prev period"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("L", "pgdown", "shift+right"),
			key.WithHelp("L", "next period"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month/week"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to date"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy date"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Select, k.Today, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevPage, k.NextPage, k.Select, k.Today},
		{k.Mode, k.GoTo, k.Copy},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debug("key", zap.String("key", msg.String()), zap.Stringer("state", m.ctrl.State()))

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Navigation
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.cal().WeekdayCount())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cal().WeekdayCount())
	case key.Matches(msg, m.keys.PrevPage):
		m.pagePeriod(calendar.Backward)
	case key.Matches(msg, m.keys.NextPage):
		m.pagePeriod(calendar.Forward)

	// Actions
	case key.Matches(msg, m.keys.Select):
		cmd = m.selectCursor()
	case key.Matches(msg, m.keys.Today):
		m.jumpToToday()
	case key.Matches(msg, m.keys.Mode):
		m.toggleMode()
	case key.Matches(msg, m.keys.GoTo):
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Copy):
		selected := m.host.SelectedDate()
		if selected.IsZero() {
			cmd = m.setStatus("No date selected", true)
			return m, cmd
		}
		return m, commands.CopyToClipboard(view.ISODate(selected))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	synced := m.sync()
	return m, tea.Batch(cmd, synced)
}

// handlePromptKeys handles keys in the go-to-date prompt.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "tab":
		if value, ok := input.Autocomplete(m.prompt.Value(), dateKeywords); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		cmd := m.goTo(value)
		synced := m.sync()
		return m, tea.Batch(cmd, synced)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}
