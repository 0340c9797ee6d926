package tui

import (
	"testing"
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/widget"
)

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t, testConfig())

	if m.ctrl.Mode() != calendar.Month {
		t.Fatalf("mode = %v, want month", m.ctrl.Mode())
	}
	assertCurrentStart(t, m, day(2024, 6, 1))
	assertCursor(t, m, day(2024, 6, 15))
	if !m.host.SelectedDate().IsZero() {
		t.Fatalf("selected = %v, want none", m.host.SelectedDate())
	}
	if m.shell.pos != (widget.Positions{-42, 0, 42}) {
		t.Fatalf("positions = %v", m.shell.pos)
	}
}

func TestNew_Options(t *testing.T) {
	m := newTestModel(t, testConfig(),
		WithMode(calendar.Week),
		WithSelectedDate(time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC)),
	)

	if m.ctrl.Mode() != calendar.Week {
		t.Fatalf("mode = %v, want week", m.ctrl.Mode())
	}
	assertCurrentStart(t, m, day(2024, 12, 30))
	assertCursor(t, m, day(2024, 12, 31))
	if got := m.host.SelectedDate(); !got.Equal(day(2024, 12, 31)) {
		t.Fatalf("selected = %v, want 2024-12-31", got)
	}
	cur := m.ctrl.Window().Current()
	if idx := cur.Selected(); idx != 1 {
		t.Fatalf("selected slot = %d, want 1", idx)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Calendar.Timezone = "Mars/Olympus"

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestNew_FollowSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Behavior.FollowSelection = true
	m := newTestModel(t, cfg, WithSelectedDate(day(2024, 6, 20)))

	m = settle(t, press(t, m, "L"))
	if got := m.host.SelectedDate(); !got.Equal(day(2024, 7, 20)) {
		t.Fatalf("selected = %v, want 2024-07-20", got)
	}
	assertCursor(t, m, day(2024, 7, 20))
}
