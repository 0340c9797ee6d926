package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/swipecal/internal/tui/view"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	helpText := m.help.View(m.keys)
	footerH := view.FooterHeight(helpText)
	gridH := m.height - footerH
	paneW := m.paneWidth()
	if m.width < paneW || gridH < gridTopMargin+periodHeader+1 {
		return "Terminal too small"
	}

	gridBox := m.placeBox(m.width, gridH, lipgloss.Top, m.renderGrid())
	footerBox := view.RenderFooter(m.footerViewState(helpText))

	content := lipgloss.JoinVertical(lipgloss.Left, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// renderGrid draws the three periods and cuts the visible window at the
// shell's current offset.
func (m Model) renderGrid() string {
	var panes [3]string
	for i, b := range m.ctrl.Window().Buffers() {
		panes[i] = view.RenderPeriod(m.periodViewState(b))
	}
	slide := view.Slide(panes, m.paneWidth(), m.shell.offset())

	left, top := m.paneOrigin()
	return lipgloss.NewStyle().
		Background(m.styles.colorBg).
		Padding(top, 0, 0, left).
		Render(slide)
}

func (m Model) periodViewState(b *widget.Buffer) view.PeriodViewState {
	cal := m.cal()
	slots := b.Slots()
	cells := make([]view.Cell, len(slots))
	for i, s := range slots {
		label := ""
		if !s.Empty() {
			label = view.DayLabel(s.Date.Day())
		}
		cells[i] = view.Cell{
			Label: label,
			Style: m.styles.CellStyle(m.styles, s, cal.SameDay(s.Date, m.cursor)),
		}
	}

	return view.PeriodViewState{
		Title:        view.PeriodTitle(cal, b.Start(), m.ctrl.Mode()),
		TitleStyle:   m.styles.TitleStyle,
		Weekdays:     view.WeekdayLabels(cal),
		WeekdayStyle: m.styles.WeekdayStyle,
		Cells:        cells,
		Columns:      cal.WeekdayCount(),
		CellWidth:    m.cellWidth,
	}
}

func (m Model) footerViewState(helpText string) view.FooterViewState {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	return view.FooterViewState{
		InnerW:      m.width,
		StatusText:  m.statusLine(),
		HelpText:    helpText,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

// statusLine shows the prompt while typing, then any transient message,
// then the selected date.
func (m Model) statusLine() string {
	if m.mode == ModePrompt {
		line := m.prompt.View()
		if hints := m.promptHints(); hints != "" {
			line += "  " + hints
		}
		return line
	}
	if m.statusMsg != "" {
		return m.statusMsg
	}
	return view.FormatDate(m.host.SelectedDate())
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) promptHints() string {
	matches := matchingKeywords(m.prompt.Value())
	names := make([]string, 0, len(matches))
	for _, k := range matches {
		names = append(names, k.Name)
	}
	return m.styles.HelpStyle.Render(strings.Join(names, " "))
}
