// Package widget implements the paging calendar core: three recycled period
// buffers, single-date selection and the gesture/animation state machine that
// moves between adjacent months or weeks.
package widget

import (
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// Host supplies calendar rules and owns the selected date. It is queried on
// demand; the controller never caches its answers beyond one operation.
type Host interface {
	// Calendar returns the active calendar rules.
	Calendar() *calendar.Calendar

	// PastDaysEnabled reports whether days before today can be selected.
	PastDaysEnabled() bool

	// SelectedDate returns the host's selected date (zero if none).
	SelectedDate() time.Time

	// SetSelectedDate stores a new selected date.
	SetSelectedDate(date time.Time)

	// SelectionChanged is called once per user-initiated selection.
	SelectionChanged(date time.Time)
}

// Positions holds the horizontal offsets of the previous, current and next
// buffers, in the same units as the viewport width.
type Positions [3]float64

// Token identifies one animation request.
type Token uint64

// Shell renders buffers and plays animations. Animate must eventually lead to
// exactly one Controller.AnimationCompleted call with the same token.
type Shell interface {
	// TranslateBuffers moves the three buffers immediately.
	TranslateBuffers(pos Positions)

	// Animate slides the buffers to target over roughly d.
	Animate(d time.Duration, target Positions, token Token)

	// RefreshBuffer redraws the buffer with the given id.
	RefreshBuffer(id int, slots []Slot)
}

// DayStyle is the rendering attributes of one day type.
type DayStyle struct {
	Bold               bool
	Foreground         string
	SelectedForeground string
	SelectedBackground string
}

// Styler maps day types to rendering attributes. Shells consult it when
// drawing slots; the controller never does.
type Styler interface {
	DayStyle(t calendar.DayType) DayStyle
}
