// Package view provides view composition helpers for the TUI.
package view

import "strings"

// ViewState contains pre-rendered content and terminal size.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	EmptyPlaceholder string
}

// Render composes the final view output. Content taller than the terminal
// is cut at the bottom so the alt screen never scrolls.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	lines := strings.Split(state.BaseContent, "\n")
	if len(lines) > state.Height {
		lines = lines[:state.Height]
	}
	return strings.Join(lines, "\n")
}
