package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
	"github.com/hay-kot/leadsheet/pkg/tmpl"
)

var markdownTemplate = mustTemplate("chart.md.tmpl")

// Markdown renders s as a Markdown document with one table per section.
// Emphasized chords are bold and questioned chords italic.
func Markdown(s *song.Song) (string, error) {
	out, err := tmpl.Render(markdownTemplate, NewChart(s))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Terminal renders s for a terminal of the given width using the active
// theme.
func Terminal(s *song.Song, width int) (string, error) {
	md, err := Markdown(s)
	if err != nil {
		return "", err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
