package calendar

import "time"

// Period is one month or one week. Days holds one entry per slot; a zero
// time marks an empty slot at the leading or trailing edge.
type Period struct {
	Start time.Time
	Days  []time.Time
}

// Period computes the period of the given mode that starts at start.
func (c *Calendar) Period(start time.Time, mode Mode) Period {
	return Period{
		Start: start,
		Days:  c.DaysInPeriod(start, mode),
	}
}

// CurrentPeriodStart returns the first day of the month or week containing ref.
// A zero ref is a caller error.
func (c *Calendar) CurrentPeriodStart(ref time.Time, mode Mode) time.Time {
	if ref.IsZero() {
		panic("calendar: zero reference date")
	}
	day := c.Day(ref)

	if mode == Week {
		return c.AddDays(day, -(c.WeekdayIndex(day) - 1))
	}
	return c.Date(day.Year(), day.Month(), 1)
}

// AdjacentPeriodStart returns the start of the period before or after the one
// starting at start.
func (c *Calendar) AdjacentPeriodStart(start time.Time, mode Mode, dir Direction) time.Time {
	start = c.CurrentPeriodStart(start, mode)

	if mode == Week {
		return c.AddDays(start, daysPerWeek*int(dir))
	}
	// Month overflow is normalized, so December+1 rolls into January.
	return c.Date(start.Year(), start.Month()+time.Month(dir), 1)
}

// DaysInPeriod returns the ordered slot sequence of the period starting at
// start. Weeks have WeekdayCount slots indexed by WeekdayIndex-1; months are
// a six-row grid with empty slots before day 1 and after the last day.
func (c *Calendar) DaysInPeriod(start time.Time, mode Mode) []time.Time {
	start = c.CurrentPeriodStart(start, mode)
	if mode == Week {
		return c.weekDays(start)
	}
	return c.monthDays(start)
}

func (c *Calendar) weekDays(start time.Time) []time.Time {
	days := make([]time.Time, c.WeekdayCount())

	day := start
	year, week := c.WeekOfYear(day)
	for {
		if c.InBounds(day) {
			days[c.WeekdayIndex(day)-1] = day
		}

		next := c.AddDays(day, 1)
		nextYear, nextWeek := c.WeekOfYear(next)
		if nextYear != year || nextWeek != week {
			break
		}
		day = next
	}

	return days
}

func (c *Calendar) monthDays(start time.Time) []time.Time {
	days := make([]time.Time, monthGridRows*c.WeekdayCount())

	lead := c.WeekdayIndex(start) - 1
	count := DaysInMonth(start.Year(), start.Month())
	for i := 0; i < count; i++ {
		day := c.AddDays(start, i)
		if c.InBounds(day) {
			days[lead+i] = day
		}
	}

	return days
}

// PeriodInBounds reports whether any day of the period lies inside the
// calendar's range.
func (c *Calendar) PeriodInBounds(start time.Time, mode Mode) bool {
	for _, d := range c.DaysInPeriod(start, mode) {
		if !d.IsZero() {
			return true
		}
	}
	return false
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
