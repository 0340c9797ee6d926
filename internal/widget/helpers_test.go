package widget

import (
	"testing"
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// fixedNow is Saturday, June 15, 2024.
var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeHost struct {
	cal         *calendar.Calendar
	pastEnabled bool
	selected    time.Time
	changes     []time.Time
}

func newFakeHost(selected time.Time, pastEnabled bool) *fakeHost {
	return &fakeHost{
		cal:         calendar.New(time.UTC, time.Monday),
		pastEnabled: pastEnabled,
		selected:    selected,
	}
}

func (h *fakeHost) Calendar() *calendar.Calendar    { return h.cal }
func (h *fakeHost) PastDaysEnabled() bool           { return h.pastEnabled }
func (h *fakeHost) SelectedDate() time.Time         { return h.selected }
func (h *fakeHost) SetSelectedDate(date time.Time)  { h.selected = date }
func (h *fakeHost) SelectionChanged(date time.Time) { h.changes = append(h.changes, date) }

type animationCall struct {
	duration time.Duration
	target   Positions
	token    Token
}

type fakeShell struct {
	translations []Positions
	animations   []animationCall
	refreshed    []int
}

func (s *fakeShell) TranslateBuffers(pos Positions) {
	s.translations = append(s.translations, pos)
}

func (s *fakeShell) Animate(d time.Duration, target Positions, token Token) {
	s.animations = append(s.animations, animationCall{duration: d, target: target, token: token})
}

func (s *fakeShell) RefreshBuffer(id int, _ []Slot) {
	s.refreshed = append(s.refreshed, id)
}

func (s *fakeShell) lastTranslation() Positions {
	return s.translations[len(s.translations)-1]
}

// completeAll plays every chained animation to completion.
func (s *fakeShell) completeAll(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; c.State() == Animating; i++ {
		if i > 10 {
			t.Fatal("animation chain did not settle")
		}
		last := s.animations[len(s.animations)-1]
		if err := c.AnimationCompleted(last.token); err != nil {
			t.Fatalf("AnimationCompleted(%d): %v", last.token, err)
		}
	}
}

func newTestController(t *testing.T, host *fakeHost, mode calendar.Mode, opts ...Option) (*Controller, *fakeShell) {
	t.Helper()
	shell := &fakeShell{}
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(host, shell, mode, opts...), shell
}

func countSelected(w *Window) int {
	n := 0
	for _, b := range w.Buffers() {
		for _, s := range b.Slots() {
			if s.Selected {
				n++
			}
		}
	}
	return n
}

func countToday(w *Window) int {
	n := 0
	for _, b := range w.Buffers() {
		if b.ContainsToday() {
			n++
		}
	}
	return n
}

func assertStarts(t *testing.T, w *Window, want [3]time.Time) {
	t.Helper()
	got := w.Starts()
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("%s starts %s, want %s", Position(i), got[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}
