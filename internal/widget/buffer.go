package widget

import (
	"fmt"
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// Slot is one day cell of a buffer. A zero Date marks an empty cell.
type Slot struct {
	Date     time.Time
	Type     calendar.DayType
	Selected bool
}

// Empty reports whether the slot holds no date.
func (s Slot) Empty() bool {
	return s.Date.IsZero()
}

// Buffer is one on-screen period. Buffers are allocated once per window slot
// and re-seeded in place as the window pages.
type Buffer struct {
	id    int
	start time.Time
	slots []Slot
	gen   uint64 // bumped on every re-seed
}

func newBuffer(id int) *Buffer {
	return &Buffer{id: id}
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() int {
	return b.id
}

// Start returns the first day of the buffer's period.
func (b *Buffer) Start() time.Time {
	return b.start
}

// Len returns the number of slots.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Slot returns the slot at index. An out-of-range index is a caller error.
func (b *Buffer) Slot(index int) Slot {
	if index < 0 || index >= len(b.slots) {
		panic(fmt.Sprintf("widget: slot index %d out of range [0,%d)", index, len(b.slots)))
	}
	return b.slots[index]
}

// Slots returns a copy of the buffer's slots.
func (b *Buffer) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Selected returns the index of the selected slot, or -1.
func (b *Buffer) Selected() int {
	for i, s := range b.slots {
		if s.Selected {
			return i
		}
	}
	return -1
}

// ContainsToday reports whether a slot was classified as today on the last
// re-seed or reclassification.
func (b *Buffer) ContainsToday() bool {
	for _, s := range b.slots {
		if s.Type == calendar.Current {
			return true
		}
	}
	return false
}

// HasDates reports whether at least one slot holds a date.
func (b *Buffer) HasDates() bool {
	for _, s := range b.slots {
		if !s.Empty() {
			return true
		}
	}
	return false
}

// IndexOf returns the slot holding date, or -1.
func (b *Buffer) IndexOf(cal *calendar.Calendar, date time.Time) int {
	if date.IsZero() {
		return -1
	}
	for i, s := range b.slots {
		if cal.SameDay(s.Date, date) {
			return i
		}
	}
	return -1
}

// update re-seeds the buffer with a new period and clears any selection mark.
func (b *Buffer) update(cal *calendar.Calendar, p calendar.Period, now time.Time) {
	b.start = p.Start
	if cap(b.slots) >= len(p.Days) {
		b.slots = b.slots[:len(p.Days)]
	} else {
		b.slots = make([]Slot, len(p.Days))
	}
	for i, d := range p.Days {
		b.slots[i] = Slot{Date: d, Type: cal.DayType(d, now)}
	}
	b.gen++
}

// reclassify recomputes day types, e.g. after midnight.
func (b *Buffer) reclassify(cal *calendar.Calendar, now time.Time) {
	for i := range b.slots {
		b.slots[i].Type = cal.DayType(b.slots[i].Date, now)
	}
}

func (b *Buffer) setSelected(index int, selected bool) {
	b.slots[index].Selected = selected
}
