// Package export renders songs for people and instruments: a printable HTML
// page, a Markdown chart for the terminal, and a Standard MIDI File.
package export

import (
	"embed"
	"strings"

	"github.com/hay-kot/leadsheet/internal/core/song"
)

//go:embed templates/*
var templateFS embed.FS

func mustTemplate(name string) string {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// EmptySlot is printed for a slot with no chord.
const EmptySlot = "·"

// Chart is the render model shared by the text exporters.
type Chart struct {
	Title    string
	Sections []ChartSection
}

// ChartSection is one section laid out in rows of Wrap bars. The last row is
// padded with blank bars so every row has Wrap cells.
type ChartSection struct {
	Label   string
	Repeats bool
	Wrap    int
	Bars    []ChartBar
	Rows    [][]ChartBar
}

// ChartBar is one bar. Blank marks padding cells.
type ChartBar struct {
	Beats       int
	Subdivision int
	Slots       []ChartSlot
	Blank       bool
}

// ChartSlot is one slot; Symbol is empty when no chord occupies it.
type ChartSlot struct {
	Symbol   string
	Special  bool
	Question bool
}

// Cell renders the bar as a Markdown table cell.
func (b ChartBar) Cell() string {
	if b.Blank {
		return ""
	}
	parts := make([]string, 0, len(b.Slots))
	for _, s := range b.Slots {
		switch {
		case s.Symbol == "":
			parts = append(parts, EmptySlot)
		case s.Special:
			parts = append(parts, "**"+s.Symbol+"**")
		case s.Question:
			parts = append(parts, "_"+s.Symbol+"_")
		default:
			parts = append(parts, s.Symbol)
		}
	}
	return strings.Join(parts, " ")
}

// NewChart builds the render model for s.
func NewChart(s *song.Song) Chart {
	c := Chart{Title: s.Title}

	for _, sec := range s.Sections {
		wrap := max(sec.Wrap, 1)
		cs := ChartSection{
			Label:   sec.Label,
			Repeats: sec.Repeats,
			Wrap:    wrap,
			Bars:    make([]ChartBar, 0, len(sec.Bars)),
		}

		for _, bar := range sec.Bars {
			cb := ChartBar{
				Beats:       bar.Beats,
				Subdivision: bar.Subdivision,
				Slots:       make([]ChartSlot, bar.Subdivision),
			}
			for i := range bar.Subdivision {
				if ch, ok := bar.Chord(i); ok {
					cb.Slots[i] = ChartSlot{Symbol: ch.String(), Special: ch.Special, Question: ch.Question}
				}
			}
			cs.Bars = append(cs.Bars, cb)
		}

		for start := 0; start < len(cs.Bars); start += wrap {
			row := make([]ChartBar, wrap)
			for i := range row {
				if start+i < len(cs.Bars) {
					row[i] = cs.Bars[start+i]
				} else {
					row[i] = ChartBar{Blank: true}
				}
			}
			cs.Rows = append(cs.Rows, row)
		}

		c.Sections = append(c.Sections, cs)
	}

	return c
}
