// Package dateutil provides date parsing and validation utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday    = errors.New("invalid weekday name")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name ("monday", "Sun", ...) case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := weekdayMap[input]; ok {
		return wd, nil
	}
	if len(input) >= 3 {
		for name, wd := range weekdayMap {
			if strings.HasPrefix(name, input) {
				return wd, nil
			}
		}
	}
	return time.Sunday, ErrInvalidWeekday
}

// IsValidWeekday reports whether s names a weekday.
func IsValidWeekday(s string) bool {
	_, err := ParseWeekday(s)
	return err == nil
}

// ParseDate parses a date string in YYYY-MM-DD format in loc.
// If the string is empty, returns today's date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if s == "" {
		return TruncateToDay(time.Now().In(loc)), nil
	}
	return parseCivil(s, loc)
}

// parseCivil parses YYYY-MM-DD as a civil date and returns its first instant
// in loc.
func parseCivil(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return StartOfDay(t.Year(), t.Month(), t.Day(), loc), nil
}

// StartOfDay returns the first instant of the civil date year-month-day in
// loc. Out-of-range days are normalized the way time.Date does. Where a DST
// change skips midnight, the day starts when the gap ends.
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	civil := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	t := time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, loc)
	if t.Day() != civil.Day() {
		// time.Date resolved the missing midnight to the previous evening.
		_, end := t.ZoneBounds()
		return end
	}
	return t
}

// TruncateToDay returns the first instant of t's day in t's location.
func TruncateToDay(t time.Time) time.Time {
	return StartOfDay(t.Year(), t.Month(), t.Day(), t.Location())
}

// AddDays moves t by n civil days and returns the first instant of that day.
// Unlike t.AddDate, the result never lands on the wrong date when the target
// midnight does not exist.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t.Year(), t.Month(), t.Day()+n, t.Location())
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Prefixed: "next-monday", "next-week", "last-week", "next-month", "last-month"
//
// All inputs are case-insensitive. Absolute dates are interpreted in
// relativeTo's location.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return AddDays(today, 1), nil
	case "yesterday":
		return AddDays(today, -1), nil
	case "next-week":
		return AddDays(today, 7), nil
	case "last-week":
		return AddDays(today, -7), nil
	case "next-month":
		return AddMonthsClamped(today, 1), nil
	case "last-month":
		return AddMonthsClamped(today, -1), nil
	}

	// "next-monday", "next-tuesday", etc.
	if strings.HasPrefix(input, "next-") {
		weekdayName := strings.TrimPrefix(input, "next-")
		if targetDay, ok := weekdayMap[weekdayName]; ok {
			return nextWeekday(today, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	// Weekday names: "monday", "tuesday", etc.
	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	return parseCivil(input, today.Location())
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	current := today.Weekday()
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return AddDays(today, daysUntil)
}

// AddMonthsClamped moves t by n months, clamping the day to the target
// month's length (Jan 31 + 1 month = Feb 28/29).
func AddMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return StartOfDay(first.Year(), first.Month(), day, t.Location())
}
