package song

import (
	"errors"
	"maps"
	"slices"

	"github.com/hay-kot/leadsheet/internal/core/chord"
)

// MaxSubdivision is the finest grid a bar can be divided into.
const MaxSubdivision = 16

// ErrSlotOutOfRange is returned when a slot index is not below the bar's
// subdivision.
var ErrSlotOutOfRange = errors.New("slot out of range")

// Bar is one measure, divided into Subdivision equal slots. Slots holds
// only the occupied ones.
type Bar struct {
	Beats       int                 `json:"beats" yaml:"beats"`
	Subdivision int                 `json:"subdivision" yaml:"subdivision"`
	Slots       map[int]chord.Chord `json:"chords" yaml:"chords"`
}

// NewBar returns an empty bar.
func NewBar(beats, subdivision int) Bar {
	return Bar{
		Beats:       beats,
		Subdivision: subdivision,
		Slots:       map[int]chord.Chord{},
	}
}

// DefaultBar is a 4/4 bar split into quarters.
func DefaultBar() Bar {
	return NewBar(4, 4)
}

// Clone returns an empty bar with the same beats and subdivision.
func (b Bar) Clone() Bar {
	return NewBar(b.Beats, b.Subdivision)
}

// Indices returns the occupied slot indices in ascending order.
func (b Bar) Indices() []int {
	return slices.Sorted(maps.Keys(b.Slots))
}

// Occupied returns the number of slots holding a chord.
func (b Bar) Occupied() int {
	return len(b.Slots)
}

// IsEmpty reports whether no slot holds a chord.
func (b Bar) IsEmpty() bool {
	return len(b.Slots) == 0
}

// Chord returns the chord at slot i, if any.
func (b Bar) Chord(i int) (chord.Chord, bool) {
	c, ok := b.Slots[i]
	return c, ok
}

// InsertChord stores c at slot i, replacing any chord already there.
func (b *Bar) InsertChord(i int, c chord.Chord) error {
	if i < 0 || i >= b.Subdivision {
		return ErrSlotOutOfRange
	}
	if b.Slots == nil {
		b.Slots = map[int]chord.Chord{}
	}
	b.Slots[i] = c
	return nil
}

// RemoveChord clears slot i. It reports whether a chord was removed.
func (b *Bar) RemoveChord(i int) bool {
	if _, ok := b.Slots[i]; !ok {
		return false
	}
	delete(b.Slots, i)
	return true
}

// Update applies fn to the chord at slot i. It reports false when the slot
// is empty.
func (b *Bar) Update(i int, fn func(*chord.Chord)) bool {
	c, ok := b.Slots[i]
	if !ok {
		return false
	}
	fn(&c)
	b.Slots[i] = c
	return true
}

// ReduceSubdivision halves the subdivision, moving every chord from slot k
// to k/2. It fails, leaving the bar untouched, when the bar is already at a
// single slot or holds more chords than the halved bar has slots.
//
// Two chords landing on the same slot merge: chords are moved in ascending
// slot order and the later one wins.
func (b *Bar) ReduceSubdivision() bool {
	if b.Subdivision <= 1 {
		return false
	}
	next := b.Subdivision / 2
	if len(b.Slots) > next {
		return false
	}

	slots := make(map[int]chord.Chord, len(b.Slots))
	for _, k := range b.Indices() {
		slots[k/2] = b.Slots[k]
	}
	b.Slots = slots
	b.Subdivision = next
	return true
}

// DoubleSubdivision doubles the subdivision, moving every chord from slot k
// to 2k. It fails once the bar is at MaxSubdivision.
func (b *Bar) DoubleSubdivision() bool {
	if b.Subdivision >= MaxSubdivision {
		return false
	}

	slots := make(map[int]chord.Chord, len(b.Slots))
	for k, c := range b.Slots {
		slots[k*2] = c
	}
	b.Slots = slots
	b.Subdivision *= 2
	return true
}

// ValidSubdivision reports whether n is a power of two in 1..MaxSubdivision.
func ValidSubdivision(n int) bool {
	return n >= 1 && n <= MaxSubdivision && n&(n-1) == 0
}
