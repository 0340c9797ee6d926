package widget

import (
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// Selection keeps at most one slot marked across the window's buffers.
// The selected date itself lives with the host.
type Selection struct {
	host Host
	now  func() time.Time

	marked *Buffer
	index  int
	gen    uint64 // marked.gen at the time of marking
}

// NewSelection returns a coordinator bound to host. Day types used for the
// past-day rule are derived from now at the moment of selection.
func NewSelection(host Host, now func() time.Time) *Selection {
	return &Selection{host: host, now: now, index: -1}
}

// Select marks the slot at index as selected and notifies the host. It
// returns false without changing anything when the slot is empty, already
// selected, or a past day while past days are disabled.
func (s *Selection) Select(b *Buffer, index int) bool {
	slot := b.Slot(index)
	if slot.Empty() || slot.Selected {
		return false
	}
	if !s.host.PastDaysEnabled() && s.host.Calendar().DayType(slot.Date, s.now()) == calendar.Past {
		return false
	}

	s.mark(b, index)
	s.host.SetSelectedDate(slot.Date)
	s.host.SelectionChanged(slot.Date)
	return true
}

// SelectDate selects the slot of b holding date.
func (s *Selection) SelectDate(b *Buffer, date time.Time) bool {
	i := b.IndexOf(s.host.Calendar(), date)
	if i < 0 {
		return false
	}
	return s.Select(b, i)
}

// ResolveAfterRecycle restores the selection mark after b was re-seeded.
// No host callback fires: this is restoration, not a new selection.
func (s *Selection) ResolveAfterRecycle(b *Buffer) {
	i := b.IndexOf(s.host.Calendar(), s.host.SelectedDate())
	if i < 0 {
		if s.marked == b {
			s.marked = nil
		}
		return
	}
	if s.isMarked(b, i) {
		return
	}
	s.mark(b, i)
}

// Marked returns the buffer and slot index currently marked, if still resident.
func (s *Selection) Marked() (*Buffer, int, bool) {
	if s.marked == nil || s.marked.gen != s.gen {
		return nil, -1, false
	}
	return s.marked, s.index, true
}

func (s *Selection) isMarked(b *Buffer, index int) bool {
	return s.marked == b && s.index == index && s.gen == b.gen && b.slots[index].Selected
}

func (s *Selection) mark(b *Buffer, index int) {
	s.clear()
	b.setSelected(index, true)
	s.marked = b
	s.index = index
	s.gen = b.gen
}

// clear unmarks the previous slot. If its buffer was re-seeded since, the
// mark is already gone.
func (s *Selection) clear() {
	if s.marked != nil && s.marked.gen == s.gen {
		s.marked.setSelected(s.index, false)
	}
	s.marked = nil
	s.index = -1
}
