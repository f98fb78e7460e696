// Package editor implements the cursor over a song document: forward
// navigation that grows the document on demand, backward navigation, and
// the delete-when-empty rule that shrinks it again.
package editor

import (
	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/song"
)

// Position is the cursor's address in the song.
type Position = song.Position

// Deletion reports what DeleteAtCursor removed.
type Deletion int

const (
	DeletedNothing Deletion = iota
	DeletedChord
	DeletedBar
	DeletedSection
)

func (d Deletion) String() string {
	switch d {
	case DeletedChord:
		return "chord"
	case DeletedBar:
		return "bar"
	case DeletedSection:
		return "section"
	default:
		return "nothing"
	}
}

// Editor owns a song and a cursor into it. It is not safe for concurrent
// use; the editing session is its only owner.
type Editor struct {
	song *song.Song
	pos  Position
}

// New returns an editor over s with the cursor on the first slot.
func New(s *song.Song) *Editor {
	return &Editor{song: s}
}

// Song returns the document being edited.
func (e *Editor) Song() *song.Song {
	return e.song
}

// Cursor returns the current position.
func (e *Editor) Cursor() Position {
	return e.pos
}

// Load replaces the document and moves the cursor to the first slot.
func (e *Editor) Load(s *song.Song) {
	e.song = s
	e.pos = Position{}
}

// SetCursor moves the cursor to p, clamped onto an existing slot.
func (e *Editor) SetCursor(p Position) {
	p.Section = clamp(p.Section, 0, len(e.song.Sections)-1)
	e.pos = p
	e.pos.Bar = clamp(p.Bar, 0, len(e.section().Bars)-1)
	e.clampSubdivision()
}

// AtSectionEnd reports whether the bar index sits one past the current
// section's last bar. PrevSection leaves the cursor there.
func (e *Editor) AtSectionEnd() bool {
	return e.pos.Bar >= len(e.section().Bars)
}

func (e *Editor) section() *song.Section {
	return e.song.Section(e.pos.Section)
}

func (e *Editor) bar() *song.Bar {
	return e.song.Bar(e.pos.Section, e.pos.Bar)
}

// settle pulls a cursor left past the end of a section by PrevSection back
// onto the section's last bar so every transition starts from a real slot.
func (e *Editor) settle() {
	if n := len(e.section().Bars); e.pos.Bar >= n && n > 0 {
		e.pos.Bar = n - 1
		e.clampSubdivision()
	}
}

func (e *Editor) clampSubdivision() {
	e.pos.Subdivision = clamp(e.pos.Subdivision, 0, e.bar().Subdivision-1)
}

// Bar returns the bar under the cursor.
func (e *Editor) Bar() *song.Bar {
	e.settle()
	return e.bar()
}

// Section returns the section under the cursor.
func (e *Editor) Section() *song.Section {
	return e.section()
}

// NextSubdivision moves one slot right, continuing into the next bar (and
// growing the document) from the last slot of a bar.
func (e *Editor) NextSubdivision() {
	e.settle()
	if e.pos.Subdivision+1 >= e.bar().Subdivision {
		e.NextOrCreateBar()
		return
	}
	e.pos.Subdivision++
}

// NextOrCreateBar moves to the first slot of the next bar. From the last
// bar of the last section a new bar is appended; from the last bar of any
// other section the cursor continues into the next section.
func (e *Editor) NextOrCreateBar() {
	sec := e.section()
	if len(sec.Bars) == 0 {
		sec.AppendBar()
		e.pos.Bar = 0
		e.pos.Subdivision = 0
		return
	}
	e.settle()

	lastBar := e.pos.Bar+1 == len(sec.Bars)
	lastSection := e.pos.Section+1 == len(e.song.Sections)

	switch {
	case lastBar && lastSection:
		e.pos.Bar = sec.AppendBar()
		e.pos.Subdivision = 0
	case lastBar:
		e.NextOrCreateSection()
	default:
		e.pos.Bar++
		e.pos.Subdivision = 0
	}
}

// NextOrCreateSection moves to the start of the next section, appending
// one when the cursor is in the last section.
func (e *Editor) NextOrCreateSection() {
	if e.pos.Section+1 < len(e.song.Sections) {
		e.pos = Position{Section: e.pos.Section + 1}
		return
	}
	e.pos = Position{Section: e.song.AppendSection()}
}

// PrevSubdivision moves one slot left, continuing onto the last slot of
// the previous bar from slot 0. A cursor left past the section end by
// PrevSection steps onto the last slot of the section's last bar.
func (e *Editor) PrevSubdivision() {
	if !e.AtSectionEnd() && e.pos.Subdivision > 0 {
		e.pos.Subdivision--
		return
	}
	e.PrevBar()
	e.pos.Subdivision = e.bar().Subdivision - 1
}

// PrevBar moves back one bar. Inside bar 0 it first returns to slot 0; from
// slot 0 of bar 0 it crosses into the previous section's last bar. The bar
// index is decremented as stored, so from one past the end it lands on the
// last bar.
func (e *Editor) PrevBar() {
	if e.pos.Bar == 0 && e.pos.Subdivision > 0 {
		e.pos.Subdivision = 0
		return
	}
	if e.pos.Bar == 0 {
		e.PrevSection()
	}
	e.pos.Bar = max(e.pos.Bar-1, 0)
	e.clampSubdivision()
}

// PrevSection moves into the previous section, if any, leaving the bar
// index equal to that section's bar count: one past its last bar. Callers
// stepping back from there land on the real last bar; see AtSectionEnd.
func (e *Editor) PrevSection() {
	if e.pos.Section == 0 {
		return
	}
	e.pos.Section--
	e.pos.Bar = len(e.section().Bars)
}

// NextBar moves down one bar without growing the document. At the last
// bar of a section it pins the cursor to that bar's last slot.
func (e *Editor) NextBar() {
	e.settle()
	if e.pos.Bar+1 >= len(e.section().Bars) {
		e.pos.Subdivision = e.bar().Subdivision - 1
		return
	}
	e.pos.Bar++
	e.clampSubdivision()
}

// RowUp steps back one visual row, approximated as wrap bars.
func (e *Editor) RowUp() {
	for range e.section().Wrap {
		e.PrevBar()
	}
}

// RowDown steps forward one visual row, approximated as wrap bars.
func (e *Editor) RowDown() {
	for range e.section().Wrap {
		e.NextBar()
	}
}

// DeleteAtCursor removes the chord under the cursor. On an empty slot of an
// empty bar it removes the bar instead, and when that bar is the last one
// in its section it removes the section. The only bar of the only section
// is never removed.
func (e *Editor) DeleteAtCursor() Deletion {
	e.settle()
	sec := e.section()
	bar := e.bar()

	switch {
	case bar.RemoveChord(e.pos.Subdivision):
		return DeletedChord

	case bar.IsEmpty() && len(sec.Bars) > 1:
		sec.RemoveBar(e.pos.Bar)
		if e.pos.Bar >= len(sec.Bars) {
			e.pos.Bar--
		}
		e.clampSubdivision()
		return DeletedBar

	case bar.IsEmpty() && len(sec.Bars) == 1 && len(e.song.Sections) > 1:
		e.song.RemoveSection(e.pos.Section)
		if e.pos.Section == 0 {
			e.pos = Position{}
			return DeletedSection
		}
		e.pos.Section--
		e.pos.Bar = len(e.section().Bars) - 1
		e.pos.Subdivision = e.bar().Subdivision - 1
		return DeletedSection
	}

	return DeletedNothing
}

// Chord returns the chord under the cursor, if any.
func (e *Editor) Chord() (chord.Chord, bool) {
	return e.Bar().Chord(e.pos.Subdivision)
}

// Insert stores c in the slot under the cursor, replacing any chord there.
func (e *Editor) Insert(c chord.Chord) error {
	return e.Bar().InsertChord(e.pos.Subdivision, c)
}

// ToggleQuestion flips the "?" marker of the chord under the cursor. It
// reports false on an empty slot.
func (e *Editor) ToggleQuestion() bool {
	return e.Bar().Update(e.pos.Subdivision, (*chord.Chord).ToggleQuestion)
}

// ToggleSpecial flips the "!" marker of the chord under the cursor. It
// reports false on an empty slot.
func (e *Editor) ToggleSpecial() bool {
	return e.Bar().Update(e.pos.Subdivision, (*chord.Chord).ToggleSpecial)
}

// DoubleSubdivision doubles the bar under the cursor. The cursor follows
// its slot to the new index.
func (e *Editor) DoubleSubdivision() bool {
	if !e.Bar().DoubleSubdivision() {
		return false
	}
	e.pos.Subdivision *= 2
	return true
}

// ReduceSubdivision halves the bar under the cursor. The cursor follows its
// slot to the new index.
func (e *Editor) ReduceSubdivision() bool {
	if !e.Bar().ReduceSubdivision() {
		return false
	}
	e.pos.Subdivision /= 2
	return true
}

// SetWrap changes the bars-per-row of the current section. Values below 1
// are rejected.
func (e *Editor) SetWrap(n int) bool {
	if n < 1 {
		return false
	}
	e.section().Wrap = n
	return true
}

// SetBeats changes the beat count of the bar under the cursor. Values below
// 1 are rejected.
func (e *Editor) SetBeats(n int) bool {
	if n < 1 {
		return false
	}
	e.Bar().Beats = n
	return true
}

// ToggleRepeat flips the repeat marker of the current section and returns
// the new value.
func (e *Editor) ToggleRepeat() bool {
	sec := e.section()
	sec.Repeats = !sec.Repeats
	return sec.Repeats
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
