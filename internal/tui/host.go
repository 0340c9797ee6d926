package tui

import (
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// host owns the selected date on behalf of the widget.
type host struct {
	cal         *calendar.Calendar
	pastEnabled bool
	selected    time.Time
	log         *zap.Logger

	// changed is set by SelectionChanged and consumed by the model to
	// update the status line.
	changed bool
}

func newHost(cal *calendar.Calendar, pastEnabled bool, selected time.Time, log *zap.Logger) *host {
	return &host{
		cal:         cal,
		pastEnabled: pastEnabled,
		selected:    selected,
		log:         log,
	}
}

func (h *host) Calendar() *calendar.Calendar   { return h.cal }
func (h *host) PastDaysEnabled() bool          { return h.pastEnabled }
func (h *host) SelectedDate() time.Time        { return h.selected }
func (h *host) SetSelectedDate(date time.Time) { h.selected = date }

func (h *host) SelectionChanged(date time.Time) {
	h.changed = true
	h.log.Info("selection changed", zap.Time("date", date))
}

// takeChange reports and clears a pending selection notification.
func (h *host) takeChange() bool {
	changed := h.changed
	h.changed = false
	return changed
}
