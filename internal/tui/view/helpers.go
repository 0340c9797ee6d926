package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = line
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Slide lays the three rendered periods side by side, each padded to width
// columns, and cuts the width-column window that starts where the current
// period sits at offset. An offset of 0 shows the current period; -width
// shows the next one and +width the previous one.
func Slide(panes [3]string, width, offset int) string {
	if width <= 0 {
		return ""
	}
	start := width - offset
	if start < 0 {
		start = 0
	}
	if start > 2*width {
		start = 2 * width
	}

	split := [3][]string{}
	height := 0
	for i, p := range panes {
		split[i] = strings.Split(p, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}

	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var strip strings.Builder
		for i := range split {
			line := ""
			if row < len(split[i]) {
				line = split[i][row]
			}
			strip.WriteString(fitWidth(line, width))
		}
		lines[row] = ansi.Cut(strip.String(), start, start+width)
	}
	return strings.Join(lines, "\n")
}

// fitWidth truncates or space-pads line to exactly width columns.
func fitWidth(line string, width int) string {
	w := lipgloss.Width(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}
