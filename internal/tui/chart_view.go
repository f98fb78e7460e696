package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/editor"
	"github.com/hay-kot/leadsheet/internal/core/grid"
	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

const emptySlotMark = "."

// renderChart draws s on the grid described by package grid, one string per
// screen line. The slot at cur is highlighted, and empty slots of the bar
// under the cursor are marked so its subdivision is visible.
func renderChart(s *song.Song, cur editor.Position) []string {
	lines := make([]string, 0, grid.Height(s))

	lines = append(lines, styles.TitleStyle.Render("SONG: "+s.Title), "")

	for si := range s.Sections {
		sec := &s.Sections[si]

		label := styles.LabelStyle.Render("[" + sec.Label + "]")
		if sec.Repeats {
			label += " " + styles.RepeatStyle.Render("(repeat)")
		}
		lines = append(lines, label)

		widths := grid.ColumnWidths(sec)
		span := 0
		for r := range sec.Rows() {
			line, w := renderRow(sec, si, r, widths, cur)
			lines = append(lines, line)
			span = max(span, w)
		}

		lines = append(lines, styles.BarLineStyle.Render(border(span)), "")
	}

	return lines
}

// renderRow draws row r of section si and returns it with its width in cells.
func renderRow(sec *song.Section, si, r int, widths []int, cur editor.Position) (string, int) {
	var b strings.Builder
	bar := styles.BarLineStyle.Render("|")

	b.WriteString(bar)
	width := grid.LeftMargin

	first := r * sec.Wrap
	last := min(first+sec.Wrap, len(sec.Bars))
	for bi := first; bi < last; bi++ {
		w := widths[bi%sec.Wrap]
		inCursorBar := si == cur.Section && bi == cur.Bar

		for slot := range sec.Bars[bi].Subdivision {
			c, ok := sec.Bars[bi].Chord(slot)
			onCursor := inCursorBar && slot == cur.Subdivision
			b.WriteString(renderCell(c, ok, w, inCursorBar, onCursor))
		}
		b.WriteString(bar)
		width += w*sec.Bars[bi].Subdivision + 1
	}

	return b.String(), width
}

func renderCell(c chord.Chord, ok bool, width int, markEmpty, onCursor bool) string {
	text := ""
	switch {
	case ok:
		text = c.String()
	case markEmpty:
		text = emptySlotMark
	}
	pad := strings.Repeat(" ", max(width-ansi.StringWidth(text), 0))

	if onCursor {
		return styles.CursorStyle.Render(text + pad)
	}

	switch {
	case !ok && markEmpty:
		return styles.EmptySlotStyle.Render(text) + pad
	case !ok:
		return pad
	case c.Special:
		return styles.SpecialChordStyle.Render(text) + pad
	case c.Question:
		return styles.QuestionChordStyle.Render(text) + pad
	default:
		return styles.ChordStyle.Render(text) + pad
	}
}

// border closes a section whose widest row is span cells.
func border(span int) string {
	if span < 2 {
		return "++"
	}
	return "+" + strings.Repeat("-", span-2) + "+"
}
