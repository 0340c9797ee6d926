package tui

import "github.com/javiermolinar/swipecal/internal/tui/input"

var dateKeywords = []input.Keyword{
	{Name: "today", Description: "Today"},
	{Name: "tomorrow", Description: "The day after today"},
	{Name: "yesterday", Description: "The day before today"},
	{Name: "next-week", Description: "Seven days from today"},
	{Name: "last-week", Description: "Seven days ago"},
	{Name: "next-month", Description: "Same day next month"},
	{Name: "last-month", Description: "Same day last month"},
	{Name: "monday", Description: "Next Monday"},
	{Name: "tuesday", Description: "Next Tuesday"},
	{Name: "wednesday", Description: "Next Wednesday"},
	{Name: "thursday", Description: "Next Thursday"},
	{Name: "friday", Description: "Next Friday"},
	{Name: "saturday", Description: "Next Saturday"},
	{Name: "sunday", Description: "Next Sunday"},
}

func matchingKeywords(value string) []input.Keyword {
	return input.MatchingKeywords(value, dateKeywords)
}
