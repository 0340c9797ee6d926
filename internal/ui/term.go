package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 80

var (
	colorTitle    = color.New(color.Bold)
	colorWeekdays = color.New(color.FgWhite, color.Faint)

	// Day numbers by type; selection wins over type.
	dayColors = map[calendar.DayType]*color.Color{
		calendar.Past:    color.New(color.FgWhite, color.Faint),
		calendar.Current: color.New(color.FgCyan, color.Bold),
	}
	colorSelected = color.New(color.ReverseVideo)
)

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// colorDay colours a day number by its type, or as selected.
func colorDay(label string, t calendar.DayType, selected bool) string {
	if selected {
		return colorSelected.Sprint(label)
	}
	if c, ok := dayColors[t]; ok {
		return c.Sprint(label)
	}
	return label
}
