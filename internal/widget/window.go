package widget

import (
	"fmt"
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// Position names a slot of the window.
type Position int

const (
	Previous Position = iota
	Current
	Next
)

func (p Position) String() string {
	switch p {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Window is the sliding triple of period buffers: [0]=prev, [1]=current,
// [2]=next. Paging rotates buffer pointers; buffers are never reallocated.
type Window struct {
	buffers [3]*Buffer
}

// NewWindow creates a window from three buffers in chronological order.
func NewWindow(prev, current, next *Buffer) *Window {
	return &Window{
		buffers: [3]*Buffer{prev, current, next},
	}
}

// At returns the buffer at pos.
func (w *Window) At(pos Position) *Buffer {
	return w.buffers[pos]
}

// Previous returns the buffer before current.
func (w *Window) Previous() *Buffer {
	return w.buffers[Previous]
}

// Current returns the focused (center) buffer.
func (w *Window) Current() *Buffer {
	return w.buffers[Current]
}

// Next returns the buffer after current.
func (w *Window) Next() *Buffer {
	return w.buffers[Next]
}

// Buffers returns the three buffers in window order.
func (w *Window) Buffers() [3]*Buffer {
	return w.buffers
}

// Starts returns the period starts in window order.
func (w *Window) Starts() [3]time.Time {
	return [3]time.Time{
		w.buffers[Previous].Start(),
		w.buffers[Current].Start(),
		w.buffers[Next].Start(),
	}
}

// ShiftForward moves the window forward by one period.
// The current buffer becomes previous, next becomes current, and the old
// previous buffer moves to the next slot. It is returned for re-seeding.
func (w *Window) ShiftForward() *Buffer {
	recycled := w.buffers[Previous]
	w.buffers[Previous] = w.buffers[Current] // old current becomes prev
	w.buffers[Current] = w.buffers[Next]     // old next becomes current
	w.buffers[Next] = recycled               // recycled buffer becomes next
	return recycled
}

// ShiftBackward moves the window backward by one period.
// The current buffer becomes next, previous becomes current, and the old
// next buffer moves to the previous slot. It is returned for re-seeding.
func (w *Window) ShiftBackward() *Buffer {
	recycled := w.buffers[Next]
	w.buffers[Next] = w.buffers[Current]     // old current becomes next
	w.buffers[Current] = w.buffers[Previous] // old prev becomes current
	w.buffers[Previous] = recycled           // recycled buffer becomes prev
	return recycled
}

// TodayAt returns the position of the buffer containing today.
func (w *Window) TodayAt() (Position, bool) {
	for pos, b := range w.buffers {
		if b.ContainsToday() {
			return Position(pos), true
		}
	}
	return Current, false
}

// Validate checks that previous and next are the periods adjacent to current.
func (w *Window) Validate(cal *calendar.Calendar, mode calendar.Mode) error {
	cur := w.buffers[Current].Start()
	if want := cal.AdjacentPeriodStart(cur, mode, calendar.Backward); !w.buffers[Previous].Start().Equal(want) {
		return fmt.Errorf("previous starts %s, want %s", w.buffers[Previous].Start().Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if want := cal.AdjacentPeriodStart(cur, mode, calendar.Forward); !w.buffers[Next].Start().Equal(want) {
		return fmt.Errorf("next starts %s, want %s", w.buffers[Next].Start().Format("2006-01-02"), want.Format("2006-01-02"))
	}
	return nil
}
