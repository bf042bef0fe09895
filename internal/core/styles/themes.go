package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Counter display colors keyed by the sign of the value.
	CounterPositive lipgloss.Color
	CounterNegative lipgloss.Color
	CounterNeutral  lipgloss.Color
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultTheme is the name of the default theme.
const DefaultTheme = ThemeLight

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	ThemeLight: {
		Primary:         lipgloss.Color("#6e8efb"),
		Secondary:       lipgloss.Color("#a777e3"),
		Foreground:      lipgloss.Color("#333333"),
		Muted:           lipgloss.Color("#8a8f98"),
		Background:      lipgloss.Color("#f5f7fa"),
		Surface:         lipgloss.Color("#e4e8f0"),
		Success:         lipgloss.Color("#06d6a0"),
		Warning:         lipgloss.Color("#ffbe0b"),
		Error:           lipgloss.Color("#ff6b6b"),
		CounterPositive: lipgloss.Color("#06d6a0"),
		CounterNegative: lipgloss.Color("#ff6b6b"),
		CounterNeutral:  lipgloss.Color("#6e8efb"),
	},
	ThemeDark: {
		Primary:         lipgloss.Color("#8fa6ff"),
		Secondary:       lipgloss.Color("#c3a1f0"),
		Foreground:      lipgloss.Color("#f5f5f5"),
		Muted:           lipgloss.Color("#9aa0aa"),
		Background:      lipgloss.Color("#1a1a2e"),
		Surface:         lipgloss.Color("#2a2a40"),
		Success:         lipgloss.Color("#06d6a0"),
		Warning:         lipgloss.Color("#ffbe0b"),
		Error:           lipgloss.Color("#ff6b6b"),
		CounterPositive: lipgloss.Color("#06d6a0"),
		CounterNegative: lipgloss.Color("#ff6b6b"),
		CounterNeutral:  lipgloss.Color("#6e8efb"),
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
