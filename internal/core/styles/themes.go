package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette assigns a color to each role on the chart.
type Palette struct {
	Title    color.Color // song title, prompts, info toasts
	Label    color.Color // section labels and headings
	Chord    color.Color // plain chords and typed text
	Special  color.Color // "!" chords
	Question color.Color // "?" chords, repeat marks, warnings
	Rule     color.Color // bar lines, status and help text
	Slot     color.Color // empty slot marks, cursor background
	Ink      color.Color // text drawn on a Title background
	Error    color.Color
	// Light selects glamour's light base style for the show command.
	Light bool
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Title:    lipgloss.Color("#7aa2f7"),
		Label:    lipgloss.Color("#ff9e64"),
		Chord:    lipgloss.Color("#c0caf5"),
		Special:  lipgloss.Color("#f7768e"),
		Question: lipgloss.Color("#e0af68"),
		Rule:     lipgloss.Color("#565f89"),
		Slot:     lipgloss.Color("#3b4261"),
		Ink:      lipgloss.Color("#1a1b26"),
		Error:    lipgloss.Color("#db4b4b"),
	},
	"gruvbox": {
		Title:    lipgloss.Color("#fabd2f"),
		Label:    lipgloss.Color("#8ec07c"),
		Chord:    lipgloss.Color("#ebdbb2"),
		Special:  lipgloss.Color("#fe8019"),
		Question: lipgloss.Color("#d3869b"),
		Rule:     lipgloss.Color("#7c6f64"),
		Slot:     lipgloss.Color("#504945"),
		Ink:      lipgloss.Color("#282828"),
		Error:    lipgloss.Color("#fb4934"),
	},
	// paper is for light terminals and matches the printed page.
	"paper": {
		Title:    lipgloss.Color("#1d4ed8"),
		Label:    lipgloss.Color("#b45309"),
		Chord:    lipgloss.Color("#1f2937"),
		Special:  lipgloss.Color("#be123c"),
		Question: lipgloss.Color("#7c3aed"),
		Rule:     lipgloss.Color("#9ca3af"),
		Slot:     lipgloss.Color("#e5e7eb"),
		Ink:      lipgloss.Color("#ffffff"),
		Error:    lipgloss.Color("#dc2626"),
		Light:    true,
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
