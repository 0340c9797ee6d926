package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/swipecal/internal/config"
	"github.com/javiermolinar/swipecal/internal/tui/commands"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// Saturday, June 15 2024.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Calendar.Timezone = "UTC"
	cfg.UI.Theme = "mocha"
	return cfg
}

// newTestModel builds a model on an 80x24 terminal with the clock fixed at
// testNow.
func newTestModel(t *testing.T, cfg *config.Config, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{WithClock(func() time.Time { return testNow })}, opts...)
	m, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return update(t, *m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// settle plays every pending animation to its end, including chained hops.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10 && m.shell.anim != nil; i++ {
		m = update(t, m, commands.AnimationFrameMsg{
			Token: m.shell.anim.token,
			Time:  time.Now().Add(time.Second),
		})
	}
	if state := m.ctrl.State(); state != widget.Idle {
		t.Fatalf("state after settle = %v, want idle", state)
	}
	return m
}

func assertCurrentStart(t *testing.T, m Model, want time.Time) {
	t.Helper()
	if got := m.ctrl.Window().Current().Start(); !got.Equal(want) {
		t.Fatalf("current period start = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func assertCursor(t *testing.T, m Model, want time.Time) {
	t.Helper()
	if !m.cursor.Equal(want) {
		t.Fatalf("cursor = %s, want %s", m.cursor.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}
