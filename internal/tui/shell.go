package tui

import (
	"math"
	"time"

	"github.com/javiermolinar/swipecal/internal/widget"
)

// animation is an in-flight slide between two sets of positions.
type animation struct {
	from     widget.Positions
	to       widget.Positions
	start    time.Time
	duration time.Duration
	token    widget.Token
}

// shell is the terminal presentation of the widget. It keeps the latest
// positions and the active animation; the view reads both on render.
type shell struct {
	now func() time.Time

	pos  widget.Positions
	anim *animation

	// scheduled is false until the model has started the frame loop for anim.
	scheduled bool

	refreshes map[int]int // buffer id -> refresh count
}

func newShell(now func() time.Time) *shell {
	return &shell{
		now:       now,
		refreshes: make(map[int]int),
	}
}

func (s *shell) TranslateBuffers(pos widget.Positions) {
	s.pos = pos
}

func (s *shell) Animate(d time.Duration, target widget.Positions, token widget.Token) {
	s.anim = &animation{
		from:     s.pos,
		to:       target,
		start:    s.now(),
		duration: d,
		token:    token,
	}
	s.scheduled = false
}

func (s *shell) RefreshBuffer(id int, _ []widget.Slot) {
	s.refreshes[id]++
}

// pendingFrame returns the token of an animation whose frame loop has not
// been started yet, and marks it started.
func (s *shell) pendingFrame() (widget.Token, bool) {
	if s.anim == nil || s.scheduled {
		return 0, false
	}
	s.scheduled = true
	return s.anim.token, true
}

// step advances the animation to t. It reports whether the animation with
// token has reached its target.
func (s *shell) step(token widget.Token, t time.Time) (done, ok bool) {
	a := s.anim
	if a == nil || a.token != token {
		return false, false
	}

	progress := 1.0
	if a.duration > 0 {
		progress = float64(t.Sub(a.start)) / float64(a.duration)
	}
	if progress >= 1 {
		s.pos = a.to
		s.anim = nil
		return true, true
	}
	if progress < 0 {
		progress = 0
	}

	eased := easeOutCubic(progress)
	for i := range s.pos {
		s.pos[i] = a.from[i] + (a.to[i]-a.from[i])*eased
	}
	return false, true
}

// offset returns the current buffer's displacement in whole columns.
func (s *shell) offset() int {
	return int(math.Round(s.pos[widget.Current]))
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
