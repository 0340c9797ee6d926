package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// FooterHeight returns the number of lines RenderFooter produces for
// helpText: one status line plus one line per help line.
func FooterHeight(helpText string) int {
	return 1 + strings.Count(helpText, "\n") + 1
}

// RenderFooter renders the status line followed by the help lines.
func RenderFooter(state FooterViewState) string {
	lines := []string{footerLine(state.InnerW, state.StatusStyle, state.StatusText)}
	for _, line := range strings.Split(state.HelpText, "\n") {
		lines = append(lines, footerLine(state.InnerW, state.HelpStyle, line))
	}
	return PlaceBox(state.InnerW, len(lines), lipgloss.Bottom, strings.Join(lines, "\n"), state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
