// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Notification icons.
const (
	IconNotifyInfo    = "●"
	IconNotifyWarning = "▲"
	IconNotifyError   = "✖"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Chart styles.
	TitleStyle         lipgloss.Style
	LabelStyle         lipgloss.Style
	RepeatStyle        lipgloss.Style
	BarLineStyle       lipgloss.Style
	EmptySlotStyle     lipgloss.Style
	ChordStyle         lipgloss.Style
	SpecialChordStyle  lipgloss.Style
	QuestionChordStyle lipgloss.Style
	CursorStyle        lipgloss.Style
	EntryStyle         lipgloss.Style

	// Status line styles.
	StatusStyle      lipgloss.Style
	CommandLineStyle lipgloss.Style
	PromptStyle      lipgloss.Style
	HelpStyle        lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Title).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(p.Chord)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Title).
		Bold(true)
	LabelStyle = lipgloss.NewStyle().
		Foreground(p.Label).
		Bold(true)
	RepeatStyle = lipgloss.NewStyle().
		Foreground(p.Question)
	BarLineStyle = lipgloss.NewStyle().
		Foreground(p.Rule)
	EmptySlotStyle = lipgloss.NewStyle().
		Foreground(p.Rule)
	ChordStyle = lipgloss.NewStyle().
		Foreground(p.Chord)
	SpecialChordStyle = lipgloss.NewStyle().
		Foreground(p.Special).
		Bold(true)
	QuestionChordStyle = lipgloss.NewStyle().
		Foreground(p.Question).
		Italic(true)
	CursorStyle = lipgloss.NewStyle().
		Background(p.Slot).
		Foreground(p.Title).
		Bold(true)
	EntryStyle = lipgloss.NewStyle().
		Background(p.Title).
		Foreground(p.Ink)

	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Rule)
	CommandLineStyle = lipgloss.NewStyle().
		Foreground(p.Chord)
	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Title).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Rule)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(p.Chord)
	ToastInfoStyle = toast.BorderForeground(p.Title)
	ToastWarningStyle = toast.BorderForeground(p.Question)
	ToastErrorStyle = toast.BorderForeground(p.Error)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// Section headings take the label color; bold and italic chords take the
// special and question colors.
func GlamourStyle() glamouransi.StyleConfig {
	p := CurrentPalette

	cfg := glamourstyles.DarkStyleConfig
	if p.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	chordColor := colorHexPtr(p.Chord)
	label := colorHexPtr(p.Label)
	rule := colorHexPtr(p.Rule)

	cfg.Document.Color = chordColor
	cfg.Paragraph.Color = chordColor

	cfg.Heading.Color = label
	cfg.H1.Color = colorHexPtr(p.Title)
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = label
	cfg.H3.Color = label

	cfg.BlockQuote.Color = rule
	cfg.HorizontalRule.Color = rule
	cfg.Strong.Color = colorHexPtr(p.Special)
	cfg.Emph.Color = colorHexPtr(p.Question)

	cfg.Code.Color = label
	cfg.Table.Color = chordColor

	return cfg
}
