// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Auto picks a dark or light theme from the terminal background.
const Auto = "auto"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header band, subtle highlight
	BgSelection string `toml:"bg_selection"` // Keyboard cursor
	Fg          string `toml:"fg"`           // Future days, primary text
	FgMuted     string `toml:"fg_muted"`     // Past days, muted elements
	Accent      string `toml:"accent"`       // Title, borders
	Today       string `toml:"today"`        // Today's day number
	Selected    string `toml:"selected"`     // Selected day background
	Warning     string `toml:"warning"`      // Error status
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		name = "mocha"
	case Auto:
		name = detect()
	}

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// detect chooses latte on light terminals and mocha otherwise.
func detect() string {
	if termenv.HasDarkBackground() {
		return "mocha"
	}
	return "latte"
}

func (t *Theme) applyDefaults() {
	if t.BgHighlight == "" {
		t.BgHighlight = t.Bg
	}
	if t.BgSelection == "" {
		t.BgSelection = t.BgHighlight
	}
	if t.Today == "" {
		t.Today = t.Accent
	}
	if t.Selected == "" {
		t.Selected = coalesce(t.Accent, t.BgSelection)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{Auto, "mocha", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
