// Package chord implements the lead-sheet chord symbol grammar.
//
// A chord token has the shape
//
//	<note><accidental?><quality?><"/"bass?><"!"?><"?"?>
//
// e.g. "C", "F#-7", "Bb^/D", "Ghd!?". Qualities come from a closed token
// table; anything outside the table is rejected rather than guessed at.
package chord

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmpty          = errors.New("empty chord")
	ErrInvalidNote    = errors.New("invalid note")
	ErrUnknownQuality = errors.New("unknown chord quality")
	ErrInvalidBass    = errors.New("invalid bass note")
)

// Note is a natural note letter.
// ENUM(A, B, C, D, E, F, G).
type Note string

const (
	NoteA Note = "A"
	NoteB Note = "B"
	NoteC Note = "C"
	NoteD Note = "D"
	NoteE Note = "E"
	NoteF Note = "F"
	NoteG Note = "G"
)

// NoteFromRune maps a note letter (either case) to a Note.
func NoteFromRune(r rune) (Note, bool) {
	switch r {
	case 'A', 'a':
		return NoteA, true
	case 'B', 'b':
		return NoteB, true
	case 'C', 'c':
		return NoteC, true
	case 'D', 'd':
		return NoteD, true
	case 'E', 'e':
		return NoteE, true
	case 'F', 'f':
		return NoteF, true
	case 'G', 'g':
		return NoteG, true
	}
	return "", false
}

// Valid reports whether n is one of the seven note letters.
func (n Note) Valid() bool {
	if utf8.RuneCountInString(string(n)) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(n))
	m, ok := NoteFromRune(r)
	return ok && m == n
}

// Accidental is the optional sharp or flat after the note letter. The zero
// value is a natural.
type Accidental string

const (
	AccidentalNone  Accidental = ""
	AccidentalSharp Accidental = "sharp"
	AccidentalFlat  Accidental = "flat"
)

// Symbol returns the notation for the accidental ("", "#" or "b").
func (a Accidental) Symbol() string {
	switch a {
	case AccidentalSharp:
		return "#"
	case AccidentalFlat:
		return "b"
	default:
		return ""
	}
}

// Valid reports whether a is a known accidental.
func (a Accidental) Valid() bool {
	return a == AccidentalNone || a == AccidentalSharp || a == AccidentalFlat
}

// Chord is a single parsed chord symbol.
type Chord struct {
	Note       Note       `json:"note" yaml:"note"`
	Accidental Accidental `json:"accidental,omitempty" yaml:"accidental,omitempty"`
	Quality    Quality    `json:"quality" yaml:"quality"`
	Bass       Note       `json:"bass,omitempty" yaml:"bass,omitempty"` // "" when there is no over note
	Special    bool       `json:"special,omitempty" yaml:"special,omitempty"`
	Question   bool       `json:"question,omitempty" yaml:"question,omitempty"`
}

// Parse parses a single chord token. No partial chord is returned on
// failure.
func Parse(s string) (Chord, error) {
	if s == "" {
		return Chord{}, ErrEmpty
	}

	first, size := utf8.DecodeRuneInString(s)
	note, ok := NoteFromRune(first)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidNote, string(first))
	}

	c := Chord{Note: note}
	rest := s[size:]

	switch {
	case strings.HasPrefix(rest, "#"):
		c.Accidental = AccidentalSharp
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		c.Accidental = AccidentalFlat
		rest = rest[1:]
	}

	// flags are trailing and ordered: special before question
	if r, ok := strings.CutSuffix(rest, "?"); ok {
		c.Question = true
		rest = r
	}
	if r, ok := strings.CutSuffix(rest, "!"); ok {
		c.Special = true
		rest = r
	}

	if i := strings.LastIndexByte(rest, '/'); i >= 0 {
		bass, err := parseBass(rest[i+1:])
		if err != nil {
			return Chord{}, err
		}
		c.Bass = bass
		rest = rest[:i]
	}

	q, ok := LookupQuality(rest)
	if !ok {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownQuality, rest)
	}
	c.Quality = q

	return c, nil
}

func parseBass(s string) (Note, error) {
	if utf8.RuneCountInString(s) != 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidBass, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	n, ok := NoteFromRune(r)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBass, s)
	}
	return n, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the chord in canonical notation.
func (c Chord) String() string {
	var b strings.Builder
	b.WriteString(string(c.Note))
	b.WriteString(c.Accidental.Symbol())
	b.WriteString(c.Quality.Symbol())
	if c.Bass != "" {
		b.WriteByte('/')
		b.WriteString(string(c.Bass))
	}
	if c.Special {
		b.WriteByte('!')
	}
	if c.Question {
		b.WriteByte('?')
	}
	return b.String()
}

// ToggleQuestion flips the "?" marker.
func (c *Chord) ToggleQuestion() {
	c.Question = !c.Question
}

// ToggleSpecial flips the "!" marker.
func (c *Chord) ToggleSpecial() {
	c.Special = !c.Special
}

// Validate checks that every field holds a known value. Chords produced by
// Parse are always valid; this is for chords decoded from disk.
func (c Chord) Validate() error {
	if !c.Note.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidNote, c.Note)
	}
	if !c.Accidental.Valid() {
		return fmt.Errorf("invalid accidental %q", c.Accidental)
	}
	if !c.Quality.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownQuality, c.Quality)
	}
	if c.Bass != "" && !c.Bass.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidBass, c.Bass)
	}
	return nil
}
