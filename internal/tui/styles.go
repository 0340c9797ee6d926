// Package tui provides the terminal user interface for swipecal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/tui/theme"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// Cell width bounds in columns; the actual width follows the terminal.
const (
	minCellWidth = 3
	maxCellWidth = 6
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Selection colors per day type
	colorSelectedBg         lipgloss.Color
	colorSelectedPastBg     lipgloss.Color
	colorTextOnSelected     lipgloss.Color
	colorTextOnSelectedPast lipgloss.Color

	// Period header
	TitleStyle   lipgloss.Style
	WeekdayStyle lipgloss.Style

	// Day cells
	EmptyCellStyle lipgloss.Style

	// Prompt box
	PromptStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	s.colorSelectedBg = palette.SelectedBg
	s.colorSelectedPastBg = palette.SelectedPastBg
	s.colorTextOnSelected = palette.TextOnSelected
	s.colorTextOnSelectedPast = palette.TextOnSelectedPast

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.WeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// DayStyle implements widget.Styler.
func (s *Styles) DayStyle(t calendar.DayType) widget.DayStyle {
	switch t {
	case calendar.Past:
		return widget.DayStyle{
			Foreground:         string(s.colorFgMuted),
			SelectedForeground: string(s.colorTextOnSelectedPast),
			SelectedBackground: string(s.colorSelectedPastBg),
		}
	case calendar.Current:
		return widget.DayStyle{
			Bold:               true,
			Foreground:         string(s.colorToday),
			SelectedForeground: string(s.colorTextOnSelected),
			SelectedBackground: string(s.colorSelectedBg),
		}
	case calendar.Future:
		return widget.DayStyle{
			Foreground:         string(s.colorFg),
			SelectedForeground: string(s.colorTextOnSelected),
			SelectedBackground: string(s.colorSelectedBg),
		}
	default:
		return widget.DayStyle{}
	}
}

// CellStyle returns the style of a day slot. The keyboard cursor shows as a
// highlight on unselected days and as an underline on the selected one.
func (s *Styles) CellStyle(styler widget.Styler, slot widget.Slot, cursor bool) lipgloss.Style {
	if slot.Empty() {
		return s.EmptyCellStyle
	}

	ds := styler.DayStyle(slot.Type)
	style := lipgloss.NewStyle().
		Bold(ds.Bold).
		Foreground(lipgloss.Color(ds.Foreground)).
		Background(s.colorBg)

	switch {
	case slot.Selected:
		style = style.
			Foreground(lipgloss.Color(ds.SelectedForeground)).
			Background(lipgloss.Color(ds.SelectedBackground)).
			Underline(cursor)
	case cursor:
		style = style.Background(s.colorBgSelection)
	}
	return style
}
