package export

import (
	"fmt"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/pkg/tmpl"
)

var htmlTemplate = mustTemplate("chart.html.tmpl")

// HTML renders s as a standalone printable page. Each bar takes 1/wrap of
// the row and each slot 1/subdivision of its bar.
func HTML(s *song.Song) (string, error) {
	out, err := tmpl.RenderHTML(htmlTemplate, NewChart(s))
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out, nil
}
