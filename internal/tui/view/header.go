package view

import (
	"fmt"
	"time"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// PeriodTitle labels a period: "June 2024" for months, "W24 Jun 10 - Jun 16 2024"
// for weeks.
func PeriodTitle(cal *calendar.Calendar, start time.Time, mode calendar.Mode) string {
	if mode == calendar.Month {
		return start.Format("January 2006")
	}

	_, week := cal.WeekOfYear(start)
	end := cal.AddDays(start, cal.WeekdayCount()-1)
	if start.Year() != end.Year() {
		return fmt.Sprintf("W%02d %s - %s", week, start.Format("Jan 2 2006"), end.Format("Jan 2 2006"))
	}
	return fmt.Sprintf("W%02d %s - %s", week, start.Format("Jan 2"), end.Format("Jan 2 2006"))
}

// WeekdayLabels returns the two-letter column labels in display order.
func WeekdayLabels(cal *calendar.Calendar) []string {
	symbols := cal.WeekdaySymbols()
	labels := make([]string, len(symbols))
	for i, s := range symbols {
		labels[i] = s[:2]
	}
	return labels
}
