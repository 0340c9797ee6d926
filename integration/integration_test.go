package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/config"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// host is a minimal widget host backed by a loaded config.
type host struct {
	cal         *calendar.Calendar
	pastEnabled bool
	selected    time.Time
	changes     []time.Time
}

func (h *host) Calendar() *calendar.Calendar    { return h.cal }
func (h *host) PastDaysEnabled() bool           { return h.pastEnabled }
func (h *host) SelectedDate() time.Time         { return h.selected }
func (h *host) SetSelectedDate(date time.Time)  { h.selected = date }
func (h *host) SelectionChanged(date time.Time) { h.changes = append(h.changes, date) }

// shell completes every animation as soon as the test asks.
type shell struct {
	pending  widget.Token
	refreshs int
}

func (s *shell) TranslateBuffers(widget.Positions) {}

func (s *shell) Animate(_ time.Duration, _ widget.Positions, token widget.Token) {
	s.pending = token
}

func (s *shell) RefreshBuffer(int, []widget.Slot) { s.refreshs++ }

func (s *shell) settle(t *testing.T, c *widget.Controller) {
	t.Helper()
	for i := 0; c.State() == widget.Animating; i++ {
		if i > 10 {
			t.Fatal("animation chain did not settle")
		}
		if err := c.AnimationCompleted(s.pending); err != nil {
			t.Fatalf("AnimationCompleted: %v", err)
		}
	}
}

// loadConfig writes content to a temporary config file and loads it.
func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func newController(t *testing.T, cfg *config.Config, now time.Time, selected time.Time) (*widget.Controller, *host, *shell) {
	t.Helper()
	cal, err := cfg.NewCalendar()
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	h := &host{cal: cal, pastEnabled: cfg.Behavior.PastDaysEnabled, selected: selected}
	s := &shell{}
	c := widget.New(h, s, cfg.Mode(),
		widget.WithClock(func() time.Time { return now }),
		widget.WithThreshold(cfg.Behavior.SwipeThreshold),
		widget.WithFollowSelection(cfg.Behavior.FollowSelection),
		widget.WithViewportWidth(70),
	)
	return c, h, s
}

func mustParseDate(t *testing.T, s string, loc *time.Location) time.Time {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

func TestWeekPagingAcrossYear(t *testing.T) {
	cfg := loadConfig(t, `
[calendar]
timezone = "UTC"
first_weekday = "sunday"
min_days_in_first_week = 1

[behavior]
mode = "week"
follow_selection = true
`)
	now := mustParseDate(t, "2024-12-18", time.UTC)
	c, h, s := newController(t, cfg, now, now)

	want := []string{"2024-12-22", "2024-12-29", "2025-01-05", "2025-01-12"}
	for _, start := range want {
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		s.settle(t, c)

		got := c.Window().Current().Start().Format("2006-01-02")
		if got != start {
			t.Fatalf("current starts %s, want %s", got, start)
		}
		if err := c.Window().Validate(h.cal, calendar.Week); err != nil {
			t.Fatalf("window invalid after paging to %s: %v", start, err)
		}
	}

	// The selection followed each page on the same weekday.
	if got := h.selected.Format("2006-01-02"); got != "2025-01-15" {
		t.Errorf("selected %s, want 2025-01-15", got)
	}
	if s.refreshs == 0 {
		t.Error("expected buffer refreshes")
	}
}

func TestMonthGridAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	cfg := loadConfig(t, `
[calendar]
timezone = "America/New_York"

[behavior]
mode = "month"
`)
	now := mustParseDate(t, "2024-02-20", loc).Add(12 * time.Hour)
	c, h, s := newController(t, cfg, now, time.Time{})

	for _, month := range []time.Month{time.March, time.April, time.May} {
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		s.settle(t, c)

		cur := c.Window().Current()
		if cur.Start().Month() != month {
			t.Fatalf("current is %s, want %s", cur.Start().Month(), month)
		}

		var prev time.Time
		for _, slot := range cur.Slots() {
			if slot.Empty() {
				continue
			}
			if hour, minute, _ := slot.Date.Clock(); hour != 0 || minute != 0 {
				t.Errorf("%s is not local midnight", slot.Date)
			}
			if !prev.IsZero() && slot.Date.Day() != prev.Day()+1 {
				t.Errorf("%s does not follow %s", slot.Date.Format("2006-01-02"), prev.Format("2006-01-02"))
			}
			prev = slot.Date
		}
		if prev.Day() != calendar.DaysInMonth(2024, month) {
			t.Errorf("%s ends on day %d", month, prev.Day())
		}
	}
	if err := c.Window().Validate(h.cal, calendar.Month); err != nil {
		t.Fatal(err)
	}
}

func TestPagingAcrossSkippedMidnight(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		selected string
		dir      calendar.Direction
		want     []string // current period starts after each page
	}{
		{
			name: "santiago weeks",
			config: `
[calendar]
timezone = "America/Santiago"
first_weekday = "sunday"

[behavior]
mode = "week"
`,
			selected: "2024-09-15",
			dir:      calendar.Backward,
			want:     []string{"2024-09-08", "2024-09-01", "2024-08-25"},
		},
		{
			name: "asuncion months",
			config: `
[calendar]
timezone = "America/Asuncion"
`,
			selected: "2023-08-20",
			dir:      calendar.Forward,
			want:     []string{"2023-09-01", "2023-10-01", "2023-11-01"},
		},
		{
			name: "havana months",
			config: `
[calendar]
timezone = "America/Havana"
`,
			selected: "2024-04-02",
			dir:      calendar.Backward,
			want:     []string{"2024-03-01", "2024-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfig(t, tt.config)
			loc, err := cfg.Location()
			if err != nil {
				t.Fatalf("Location: %v", err)
			}
			selected := noonIn(loc, mustParseDate(t, tt.selected, time.UTC))
			c, h, s := newController(t, cfg, selected, selected)

			for _, start := range tt.want {
				page := c.Advance
				if tt.dir == calendar.Backward {
					page = c.Retreat
				}
				if err := page(); err != nil {
					t.Fatalf("page: %v", err)
				}
				s.settle(t, c)

				if got := c.Window().Current().Start().Format("2006-01-02"); got != start {
					t.Fatalf("current starts %s, want %s", got, start)
				}
				if err := c.Window().Validate(h.cal, cfg.Mode()); err != nil {
					t.Fatal(err)
				}
				var prev time.Time
				for _, slot := range c.Window().Current().Slots() {
					if slot.Empty() {
						continue
					}
					if !prev.IsZero() && slot.Date.YearDay() != prev.YearDay()+1 && slot.Date.YearDay() != 1 {
						t.Errorf("%s does not follow %s", slot.Date.Format("2006-01-02"), prev.Format("2006-01-02"))
					}
					prev = slot.Date
				}
			}
		})
	}
}

// noonIn returns noon of d's civil date in loc.
func noonIn(loc *time.Location, d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
}

func TestBoundsStopPaging(t *testing.T) {
	cfg := loadConfig(t, `
[calendar]
timezone = "UTC"
earliest = "2024-05-10"
latest = "2024-07-20"
`)
	now := mustParseDate(t, "2024-06-15", time.UTC)
	c, h, s := newController(t, cfg, now, time.Time{})

	for i := 0; i < 4; i++ {
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		s.settle(t, c)
	}
	if got := c.Window().Current().Start().Month(); got != time.July {
		t.Errorf("stopped at %s, want July", got)
	}
	if c.Window().Next().HasDates() {
		t.Error("next buffer should be empty past the latest date")
	}

	for i := 0; i < 4; i++ {
		if err := c.Retreat(); err != nil {
			t.Fatalf("Retreat: %v", err)
		}
		s.settle(t, c)
	}
	if got := c.Window().Current().Start().Month(); got != time.May {
		t.Errorf("stopped at %s, want May", got)
	}
	cur := c.Window().Current()
	if cur.IndexOf(h.cal, mustParseDate(t, "2024-05-09", time.UTC)) >= 0 {
		t.Error("days before the earliest date should be empty")
	}
	if cur.IndexOf(h.cal, mustParseDate(t, "2024-05-10", time.UTC)) < 0 {
		t.Error("the earliest date should be present")
	}
}

func TestPastDaysDisabled(t *testing.T) {
	cfg := loadConfig(t, `
[calendar]
timezone = "UTC"

[behavior]
past_days_enabled = false
`)
	now := mustParseDate(t, "2024-06-15", time.UTC)
	c, h, s := newController(t, cfg, now, time.Time{})

	if err := c.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	s.settle(t, c)
	if got := c.Window().Current().Start().Month(); got != time.June {
		t.Errorf("retreated to %s from today's month", got)
	}

	cur := c.Window().Current()
	past := cur.IndexOf(h.cal, mustParseDate(t, "2024-06-14", time.UTC))
	if c.Select(widget.Current, past) {
		t.Error("selected a past day")
	}
	future := cur.IndexOf(h.cal, mustParseDate(t, "2024-06-16", time.UTC))
	if !c.Select(widget.Current, future) {
		t.Fatal("could not select a future day")
	}
	if len(h.changes) != 1 {
		t.Errorf("got %d selection changes, want 1", len(h.changes))
	}
}

func TestJumpToTodayFromAnotherYear(t *testing.T) {
	cfg := loadConfig(t, `
[calendar]
timezone = "UTC"
`)
	now := mustParseDate(t, "2024-06-15", time.UTC)
	c, h, s := newController(t, cfg, now, mustParseDate(t, "2021-02-03", time.UTC))

	if got := c.Window().Current().Start().Format("2006-01"); got != "2021-02" {
		t.Fatalf("initial period %s, want 2021-02", got)
	}

	if err := c.JumpToToday(); err != nil {
		t.Fatalf("JumpToToday: %v", err)
	}
	s.settle(t, c)

	if got := c.Window().Current().Start().Format("2006-01"); got != "2024-06" {
		t.Errorf("jumped to %s, want 2024-06", got)
	}
	if !h.cal.SameDay(h.selected, now) {
		t.Errorf("selected %s, want today", h.selected.Format("2006-01-02"))
	}
	if err := c.Window().Validate(h.cal, calendar.Month); err != nil {
		t.Error(err)
	}
}
