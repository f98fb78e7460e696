package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/song"
)

func put(t *testing.T, s *song.Song, sec, bar, slot int, sym string) {
	t.Helper()
	require.NoError(t, s.Bar(sec, bar).InsertChord(slot, chord.MustParse(sym)))
}

// sectionOf returns a song whose first section has n bars and the given wrap.
func sectionOf(n, wrap int) *song.Song {
	s := song.New()
	s.Sections[0].Wrap = wrap
	for range n - 1 {
		s.Sections[0].AppendBar()
	}
	return s
}

func TestCellWidth(t *testing.T) {
	b := song.DefaultBar()
	require.NoError(t, b.InsertChord(1, chord.MustParse("F#-7")))
	require.NoError(t, b.InsertChord(2, chord.MustParse("C")))

	assert.Equal(t, MinCellWidth, CellWidth(b, 0))
	assert.Equal(t, 5, CellWidth(b, 1))
	assert.Equal(t, 2, CellWidth(b, 2))
}

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name   string
		bars   int
		wrap   int
		chords map[[2]int]string
		want   []int
	}{
		{
			name: "empty section uses minimum width",
			bars: 1,
			wrap: 4,
			want: []int{2, 0, 0, 0},
		},
		{
			name: "every column with a bar has minimum width",
			bars: 4,
			wrap: 4,
			want: []int{2, 2, 2, 2},
		},
		{
			name:   "widest chord drives the column across rows",
			bars:   6,
			wrap:   2,
			chords: map[[2]int]string{{0, 0}: "C", {2, 1}: "Bb^/D", {5, 3}: "G7"},
			want:   []int{6, 3},
		},
		{
			name:   "chord in another column does not leak",
			bars:   3,
			wrap:   3,
			chords: map[[2]int]string{{1, 0}: "Ahd!?"},
			want:   []int{2, 8, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sectionOf(tt.bars, tt.wrap)
			for at, sym := range tt.chords {
				put(t, s, 0, at[0], at[1], sym)
			}

			assert.Equal(t, tt.want, ColumnWidths(s.Section(0)))
		})
	}
}

func TestColumnWidths_MaxOverColumn(t *testing.T) {
	s := sectionOf(8, 4)
	put(t, s, 0, 1, 0, "D-7")
	put(t, s, 0, 5, 2, "Eb^/G!")

	widths := ColumnWidths(s.Section(0))

	for col, w := range widths {
		want := MinCellWidth
		for i, bar := range s.Sections[0].Bars {
			if i%4 != col {
				continue
			}
			for slot := range bar.Subdivision {
				if c, ok := bar.Chord(slot); ok {
					want = max(want, len(c.String())+1)
				}
			}
		}
		assert.Equal(t, want, w, "column %d", col)
	}
}

func TestSectionTop(t *testing.T) {
	s := sectionOf(5, 4) // 2 rows
	s.AppendSection()    // 1 row
	s.AppendSection()

	assert.Equal(t, Preamble, SectionTop(s, 0))
	assert.Equal(t, Preamble+2+SectionOverhead, SectionTop(s, 1))
	assert.Equal(t, Preamble+2+1+2*SectionOverhead, SectionTop(s, 2))
	assert.Equal(t, Preamble+2+1+1+3*SectionOverhead, Height(s))
}

func TestLocate(t *testing.T) {
	s := sectionOf(6, 4)
	put(t, s, 0, 0, 0, "F#-7") // column 0 width 5
	s.AppendSection()

	tests := []struct {
		name string
		at   song.Position
		want Point
	}{
		{
			name: "origin",
			at:   song.Position{},
			want: Point{Row: 3, Col: 1},
		},
		{
			name: "slot advances by column width",
			at:   song.Position{Subdivision: 2},
			want: Point{Row: 3, Col: 1 + 5*2},
		},
		{
			name: "second bar skips first bar and separator",
			at:   song.Position{Bar: 1, Subdivision: 1},
			want: Point{Row: 3, Col: 1 + 5*4 + 1 + 2*1},
		},
		{
			name: "fourth bar",
			at:   song.Position{Bar: 3},
			want: Point{Row: 3, Col: 1 + (5*4 + 1) + (2*4 + 1) + (2*4 + 1)},
		},
		{
			name: "wrapped row resets to margin",
			at:   song.Position{Bar: 4, Subdivision: 3},
			want: Point{Row: 4, Col: 1 + 5*3},
		},
		{
			name: "wrapped row second bar",
			at:   song.Position{Bar: 5},
			want: Point{Row: 4, Col: 1 + 5*4 + 1},
		},
		{
			name: "next section below two rows plus overhead",
			at:   song.Position{Section: 1, Subdivision: 1},
			want: Point{Row: Preamble + 2 + SectionOverhead + 1, Col: 1 + 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locate(s, tt.at))
		})
	}
}

func TestLocate_MixedSubdivisions(t *testing.T) {
	s := sectionOf(2, 4)
	require.True(t, s.Bar(0, 0).DoubleSubdivision())

	got := Locate(s, song.Position{Bar: 1, Subdivision: 2})

	assert.Equal(t, Point{Row: 3, Col: 1 + 2*8 + 1 + 2*2}, got)
}

func TestLocate_PastSectionEnd(t *testing.T) {
	s := sectionOf(2, 4)

	got := Locate(s, song.Position{Bar: 2})

	assert.Equal(t, Point{Row: 3, Col: 1 + 2*(2*4+1)}, got)
}
