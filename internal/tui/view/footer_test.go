package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderFooter_GrowsWithHelp(t *testing.T) {
	tests := []struct {
		name  string
		help  string
		lines int
	}{
		{name: "short", help: "? help • q quit", lines: 2},
		{name: "full", help: "h left\nl right\nq quit", lines: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FooterHeight(tt.help); got != tt.lines {
				t.Fatalf("FooterHeight = %d, want %d", got, tt.lines)
			}
			out := RenderFooter(FooterViewState{
				InnerW:     30,
				StatusText: "Selected Sat Jun 15 2024",
				HelpText:   tt.help,
				Bg:         lipgloss.Color("#000000"),
			})
			lines := strings.Split(out, "\n")
			if len(lines) != tt.lines {
				t.Fatalf("lines = %d, want %d", len(lines), tt.lines)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != 30 {
					t.Errorf("line %d width = %d, want 30", i, w)
				}
			}
			if !strings.Contains(lines[0], "Selected") {
				t.Errorf("status line = %q", lines[0])
			}
		})
	}
}

func TestRenderFooter_TruncatesStatus(t *testing.T) {
	out := RenderFooter(FooterViewState{
		InnerW:     10,
		StatusText: "a status message that does not fit",
		HelpText:   "q quit",
	})
	first := strings.Split(out, "\n")[0]
	if w := lipgloss.Width(first); w != 10 {
		t.Fatalf("status width = %d, want 10", w)
	}
}
