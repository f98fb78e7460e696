// Package grid maps document positions onto the screen grid the chart is
// drawn on. It holds no state; every answer is recomputed from the song.
//
// Layout, top to bottom:
//
//	SONG: title            <- preamble (Preamble lines)
//
//	[A]                    <- section label
//	|C   G   |F   .   |    <- one line per row of Wrap bars
//	+-----------------+    <- section border
//	                       <- spacing
//	[B]
//	...
//
// Each bar row starts with '|' at column 0; slot cells follow, each as wide
// as the bar's column, and every bar is closed by a '|' separator.
package grid

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/leadsheet/internal/core/song"
)

const (
	// Preamble is the number of lines above the first section.
	Preamble = 2
	// SectionOverhead is the number of non-bar lines each section uses:
	// label, border and spacing.
	SectionOverhead = 3
	// LeftMargin is the column of the first slot of a row.
	LeftMargin = 1
	// MinCellWidth is the width of a slot column with no chord in it.
	MinCellWidth = 2
)

// Point is a screen coordinate.
type Point struct {
	Row int
	Col int
}

// CellWidth returns the width a slot needs: the formatted chord plus one
// space, or MinCellWidth when the slot is empty.
func CellWidth(b song.Bar, i int) int {
	c, ok := b.Chord(i)
	if !ok {
		return MinCellWidth
	}
	return ansi.StringWidth(c.String()) + 1
}

// ColumnWidths returns the slot width of every wrap column of sec. Column c
// covers the bars whose index modulo Wrap is c, and is as wide as the
// widest slot in any of them.
func ColumnWidths(sec *song.Section) []int {
	if sec.Wrap < 1 {
		return nil
	}
	widths := make([]int, sec.Wrap)
	for i, bar := range sec.Bars {
		col := i % sec.Wrap
		for s := range bar.Subdivision {
			widths[col] = max(widths[col], CellWidth(bar, s))
		}
	}
	return widths
}

// SectionTop returns the row of the label line of section i.
func SectionTop(s *song.Song, i int) int {
	row := Preamble
	for _, sec := range s.Sections[:i] {
		row += sec.Rows() + SectionOverhead
	}
	return row
}

// Height returns the number of lines the whole song occupies.
func Height(s *song.Song) int {
	return SectionTop(s, len(s.Sections))
}

// Locate returns the screen coordinate of slot p.
func Locate(s *song.Song, p song.Position) Point {
	sec := &s.Sections[p.Section]
	widths := ColumnWidths(sec)

	pt := Point{
		Row: SectionTop(s, p.Section) + 1,
		Col: LeftMargin,
	}

	for i := 0; i <= p.Bar && i < len(sec.Bars); i++ {
		width := widths[i%sec.Wrap]
		if i%sec.Wrap == 0 && i > 0 {
			pt.Row++
			pt.Col = LeftMargin
		}
		if i < p.Bar {
			pt.Col += width*sec.Bars[i].Subdivision + 1
		} else {
			pt.Col += width * p.Subdivision
		}
	}

	return pt
}
