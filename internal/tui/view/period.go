package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Cell is one rendered day slot.
type Cell struct {
	Label string
	Style lipgloss.Style
}

// PeriodViewState holds everything needed to draw one month or week.
type PeriodViewState struct {
	Title        string
	TitleStyle   lipgloss.Style
	Weekdays     []string
	WeekdayStyle lipgloss.Style
	Cells        []Cell
	Columns      int
	CellWidth    int
}

// Width returns the rendered width in columns.
func (s PeriodViewState) Width() int {
	return s.Columns * s.CellWidth
}

// RenderPeriod draws the title, the weekday header and one line per row of
// cells.
func RenderPeriod(state PeriodViewState) string {
	if state.Columns <= 0 || state.CellWidth <= 0 {
		return ""
	}
	width := state.Width()

	lines := make([]string, 0, 2+len(state.Cells)/state.Columns)
	lines = append(lines, state.TitleStyle.Width(width).Align(lipgloss.Center).Render(ansi.Truncate(state.Title, width, "…")))

	var header strings.Builder
	for _, wd := range state.Weekdays {
		header.WriteString(state.WeekdayStyle.Width(state.CellWidth).Align(lipgloss.Center).Render(wd))
	}
	lines = append(lines, header.String())

	for row := 0; row*state.Columns < len(state.Cells); row++ {
		var b strings.Builder
		for col := 0; col < state.Columns; col++ {
			i := row*state.Columns + col
			if i >= len(state.Cells) {
				break
			}
			c := state.Cells[i]
			b.WriteString(c.Style.Width(state.CellWidth).Align(lipgloss.Center).Render(c.Label))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// DayLabel returns the label of a day slot, or "" for an empty slot.
func DayLabel(day int) string {
	if day <= 0 {
		return ""
	}
	return strconv.Itoa(day)
}
