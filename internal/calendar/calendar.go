// Package calendar holds the calendar rules and the period arithmetic used to
// page through months and weeks.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/swipecal/internal/dateutil"
)

// Mode selects the unit of paging.
type Mode int

const (
	Month Mode = iota
	Week
)

// String returns the lower-case mode name used in config and flags.
func (m Mode) String() string {
	switch m {
	case Month:
		return "month"
	case Week:
		return "week"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "month" or "week" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return Month, nil
	case "week":
		return Week, nil
	default:
		return Month, fmt.Errorf("invalid mode %q (want month or week)", s)
	}
}

// Direction is the sign of a paging step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// DayType classifies a day slot relative to today.
type DayType int

const (
	None DayType = iota
	Past
	Current
	Future
)

func (t DayType) String() string {
	switch t {
	case Past:
		return "past"
	case Current:
		return "current"
	case Future:
		return "future"
	default:
		return "none"
	}
}

// daysPerWeek is fixed for the Gregorian calendar.
const daysPerWeek = 7

// monthGridRows keeps month grids a constant height.
const monthGridRows = 6

// Calendar holds the rules a host supplies: time zone, first weekday and
// the week-of-year convention. Earliest and Latest optionally bound the
// range of dates the calendar can represent; zero means unbounded.
type Calendar struct {
	Location           *time.Location
	FirstWeekday       time.Weekday
	MinDaysInFirstWeek int
	Earliest           time.Time
	Latest             time.Time
}

// New returns a Gregorian calendar in loc whose weeks start on first.
// Week 1 of a year is the first week holding at least one January day.
func New(loc *time.Location, first time.Weekday) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{
		Location:           loc,
		FirstWeekday:       first,
		MinDaysInFirstWeek: 1,
	}
}

// WeekdayCount returns the number of weekday slots in a week.
func (c *Calendar) WeekdayCount() int {
	return daysPerWeek
}

// Day returns the first instant of t's day in the calendar's location. That
// is midnight except where a DST change skips it.
func (c *Calendar) Day(t time.Time) time.Time {
	return dateutil.TruncateToDay(t.In(c.Location))
}

// Date returns the day year-month-day in the calendar's location. Out-of-range
// days and months are normalized.
func (c *Calendar) Date(year int, month time.Month, day int) time.Time {
	return dateutil.StartOfDay(year, month, day, c.Location)
}

// AddDays returns the day n civil days after t's day.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	return dateutil.AddDays(c.Day(t), n)
}

// Today returns the current day according to now.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.Day(now)
}

// IsToday reports whether date falls on the day containing now.
func (c *Calendar) IsToday(date, now time.Time) bool {
	return c.SameDay(date, now)
}

// SameDay reports whether a and b fall on the same calendar day.
func (c *Calendar) SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ya, ma, da := a.In(c.Location).Date()
	yb, mb, db := b.In(c.Location).Date()
	return ya == yb && ma == mb && da == db
}

// WeekdayIndex returns the 1-based position of t within its week,
// counted from the calendar's first weekday.
func (c *Calendar) WeekdayIndex(t time.Time) int {
	wd := int(t.In(c.Location).Weekday())
	return (wd-int(c.FirstWeekday)+daysPerWeek)%daysPerWeek + 1
}

// WeekdaySymbols returns short weekday names ordered from the first weekday.
func (c *Calendar) WeekdaySymbols() []string {
	symbols := make([]string, daysPerWeek)
	for i := range symbols {
		wd := time.Weekday((int(c.FirstWeekday) + i) % daysPerWeek)
		symbols[i] = wd.String()[:3]
	}
	return symbols
}

// InBounds reports whether day lies inside the calendar's representable range.
func (c *Calendar) InBounds(day time.Time) bool {
	if !c.Earliest.IsZero() && day.Before(c.Day(c.Earliest)) {
		return false
	}
	if !c.Latest.IsZero() && day.After(c.Day(c.Latest)) {
		return false
	}
	return true
}

// DayType classifies date against the day containing now.
func (c *Calendar) DayType(date, now time.Time) DayType {
	if date.IsZero() {
		return None
	}
	today := c.Today(now)
	day := c.Day(date)
	switch {
	case day.Equal(today):
		return Current
	case day.Before(today):
		return Past
	default:
		return Future
	}
}

// WeekOfYear returns the week-based year and week number of t. Week 1 is the
// first week that has at least MinDaysInFirstWeek days in January.
func (c *Calendar) WeekOfYear(t time.Time) (year, week int) {
	day := c.Day(t)
	year = day.Year()

	base := c.firstWeekStart(year)
	if day.Before(base) {
		year--
		base = c.firstWeekStart(year)
	} else if next := c.firstWeekStart(year + 1); !day.Before(next) {
		year++
		base = next
	}

	return year, daysBetween(base, day)/daysPerWeek + 1
}

// firstWeekStart returns the first day of week 1 of year.
func (c *Calendar) firstWeekStart(year int) time.Time {
	jan1 := c.Date(year, time.January, 1)
	offset := c.WeekdayIndex(jan1) - 1
	start := c.AddDays(jan1, -offset)

	minDays := c.MinDaysInFirstWeek
	if minDays < 1 {
		minDays = 1
	}
	if daysPerWeek-offset < minDays {
		start = c.AddDays(start, daysPerWeek)
	}
	return start
}

// daysBetween counts civil days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
