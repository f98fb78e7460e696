package chord

var pitchClasses = map[Note]int{
	NoteC: 0,
	NoteD: 2,
	NoteE: 4,
	NoteF: 5,
	NoteG: 7,
	NoteA: 9,
	NoteB: 11,
}

// PitchClass returns the note's semitone within the octave, C = 0.
func (n Note) PitchClass() int {
	return pitchClasses[n]
}

// Offset returns the semitone shift of the accidental.
func (a Accidental) Offset() int {
	switch a {
	case AccidentalSharp:
		return 1
	case AccidentalFlat:
		return -1
	default:
		return 0
	}
}

// Root returns the pitch class of the chord root, 0..11.
func (c Chord) Root() int {
	return (c.Note.PitchClass() + c.Accidental.Offset() + 12) % 12
}

// Pitches voices the chord in root position as MIDI note numbers, with the
// root in the given octave (octave 4 puts C at 60). The bass note, when
// present, is placed one octave below the root. Notes outside the MIDI
// range are dropped.
func (c Chord) Pitches(octave int) []uint8 {
	base := 12*(octave+1) + c.Root()
	intervals := c.Quality.Intervals()

	out := make([]uint8, 0, len(intervals)+1)
	if c.Bass != "" {
		out = appendPitch(out, 12*octave+c.Bass.PitchClass())
	}
	for _, iv := range intervals {
		out = appendPitch(out, base+iv)
	}
	return out
}

func appendPitch(out []uint8, p int) []uint8 {
	if p < 0 || p > 127 {
		return out
	}
	return append(out, uint8(p))
}
