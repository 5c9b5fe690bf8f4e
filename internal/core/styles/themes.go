package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#7dcfff"),
		Muted:     lipgloss.Color("#565f89"),
		Success:   lipgloss.Color("#9ece6a"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:   lipgloss.Color("#83a598"),
		Secondary: lipgloss.Color("#8ec07c"),
		Muted:     lipgloss.Color("#665c54"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fabd2f"),
		Error:     lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:   lipgloss.Color("#89b4fa"), // Blue
		Secondary: lipgloss.Color("#94e2d5"), // Teal
		Muted:     lipgloss.Color("#6c7086"), // Overlay0
		Success:   lipgloss.Color("#a6e3a1"), // Green
		Warning:   lipgloss.Color("#f9e2af"), // Yellow
		Error:     lipgloss.Color("#f38ba8"), // Red
	},
	"onedark": {
		Primary:   lipgloss.Color("#61afef"), // blue
		Secondary: lipgloss.Color("#56b6c2"), // cyan
		Muted:     lipgloss.Color("#5c6370"), // comment grey
		Success:   lipgloss.Color("#98c379"), // green
		Warning:   lipgloss.Color("#e5c07b"), // yellow
		Error:     lipgloss.Color("#e06c75"), // red
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
