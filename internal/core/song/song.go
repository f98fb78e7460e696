// Package song defines the chart document: a song of labeled sections, each
// a sequence of bars holding chords at subdivision slots.
package song

import (
	"slices"
)

// DefaultTitle is the title of a fresh document.
const DefaultTitle = "untitled"

// LabelOverflow is assigned once the label alphabet is exhausted.
const LabelOverflow = "?"

// labels is the section label alphabet, in assignment order.
var labels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"}

// NextLabel returns the label following prev in the alphabet. Past the end
// of the alphabet, or for a label not in it, LabelOverflow is returned.
func NextLabel(prev string) string {
	i := slices.Index(labels, prev)
	if i < 0 || i+1 >= len(labels) {
		return LabelOverflow
	}
	return labels[i+1]
}

// Defaults controls the shape of a fresh document.
type Defaults struct {
	Title       string
	Wrap        int
	Beats       int
	Subdivision int
}

// DefaultDefaults is a 4-bars-per-row chart of 4/4 bars split in quarters.
func DefaultDefaults() Defaults {
	return Defaults{
		Title:       DefaultTitle,
		Wrap:        4,
		Beats:       4,
		Subdivision: 4,
	}
}

// Position addresses a slot: section index, bar index within the section,
// and subdivision index within the bar.
type Position struct {
	Section     int
	Bar         int
	Subdivision int
}

// Section is a labeled run of bars.
type Section struct {
	Label   string `json:"label" yaml:"label"`
	Bars    []Bar  `json:"bars" yaml:"bars"`
	Repeats bool   `json:"repeats" yaml:"repeats"`
	Wrap    int    `json:"wrap" yaml:"wrap"` // bars per row
}

// LastBar returns a pointer to the final bar, or nil when the section is
// empty.
func (s *Section) LastBar() *Bar {
	if len(s.Bars) == 0 {
		return nil
	}
	return &s.Bars[len(s.Bars)-1]
}

// AppendBar adds a bar cloned from the last one, or a default bar when the
// section has none, and returns its index.
func (s *Section) AppendBar() int {
	next := DefaultBar()
	if last := s.LastBar(); last != nil {
		next = last.Clone()
	}
	s.Bars = append(s.Bars, next)
	return len(s.Bars) - 1
}

// RemoveBar deletes bar i.
func (s *Section) RemoveBar(i int) {
	s.Bars = slices.Delete(s.Bars, i, i+1)
}

// Rows returns how many grid rows the section's bars wrap onto.
func (s *Section) Rows() int {
	if len(s.Bars) == 0 || s.Wrap < 1 {
		return 0
	}
	return (len(s.Bars) + s.Wrap - 1) / s.Wrap
}

// Song is the whole chart.
type Song struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// New returns the default document: one section "A" holding one empty bar.
func New() *Song {
	return NewWithDefaults(DefaultDefaults())
}

// NewWithDefaults returns a one-section, one-bar document shaped by d.
func NewWithDefaults(d Defaults) *Song {
	return &Song{
		Title: d.Title,
		Sections: []Section{
			{
				Label: labels[0],
				Bars:  []Bar{NewBar(d.Beats, d.Subdivision)},
				Wrap:  d.Wrap,
			},
		},
	}
}

// Section returns a pointer to section i.
func (s *Song) Section(i int) *Section {
	return &s.Sections[i]
}

// Bar returns a pointer to bar b of section sec.
func (s *Song) Bar(sec, b int) *Bar {
	return &s.Sections[sec].Bars[b]
}

// AppendSection adds a section after the last one and returns its index.
// The new section takes its wrap from the previous section, holds one bar
// cloned from the previous section's last bar, and is labeled one past the
// previous label.
func (s *Song) AppendSection() int {
	if len(s.Sections) == 0 {
		d := DefaultDefaults()
		s.Sections = append(s.Sections, Section{
			Label: labels[0],
			Bars:  []Bar{DefaultBar()},
			Wrap:  d.Wrap,
		})
		return 0
	}

	prev := &s.Sections[len(s.Sections)-1]
	bar := DefaultBar()
	if last := prev.LastBar(); last != nil {
		bar = last.Clone()
	}
	s.Sections = append(s.Sections, Section{
		Label: NextLabel(prev.Label),
		Bars:  []Bar{bar},
		Wrap:  prev.Wrap,
	})
	return len(s.Sections) - 1
}

// RemoveSection deletes section i. Labels of the remaining sections are
// left as they are.
func (s *Song) RemoveSection(i int) {
	s.Sections = slices.Delete(s.Sections, i, i+1)
}

// ChordCount returns the number of chords in the whole song.
func (s *Song) ChordCount() int {
	n := 0
	for _, sec := range s.Sections {
		for _, b := range sec.Bars {
			n += b.Occupied()
		}
	}
	return n
}
