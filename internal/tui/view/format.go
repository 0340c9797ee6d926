package view

import "time"

// FormatDate formats a selected date for the status line and clipboard.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "no date selected"
	}
	return t.Format("Mon Jan 2 2006")
}

// ISODate formats t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
