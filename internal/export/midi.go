package export

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/hay-kot/leadsheet/internal/core/song"
)

const (
	// TicksPerQuarter is the resolution of exported files.
	TicksPerQuarter = 960

	midiChannel  = 0
	midiVelocity = 90
)

// MIDIOptions controls MIDI export.
type MIDIOptions struct {
	Tempo  int // beats per minute
	Octave int // octave of chord roots; bass notes sound one below
}

// Note is one sounding pitch on the export timeline, in ticks.
type Note struct {
	Start    uint32
	Duration uint32
	Key      uint8
}

// Timeline lays the chords of s out in ticks. A chord sounds from its slot
// until the next chord or the end of the song. A bar lasts Beats quarter
// notes split evenly between its slots, and repeated sections play twice.
func Timeline(s *song.Song, octave int) (notes []Note, length uint32) {
	type onset struct {
		tick  uint32
		pitch []uint8
	}

	var (
		onsets []onset
		tick   uint32
	)

	for _, sec := range s.Sections {
		passes := 1
		if sec.Repeats {
			passes = 2
		}
		for range passes {
			for _, bar := range sec.Bars {
				barTicks := uint32(bar.Beats * TicksPerQuarter)
				for _, i := range bar.Indices() {
					c, _ := bar.Chord(i)
					at := tick + barTicks*uint32(i)/uint32(bar.Subdivision)
					onsets = append(onsets, onset{tick: at, pitch: c.Pitches(octave)})
				}
				tick += barTicks
			}
		}
	}

	for i, o := range onsets {
		end := tick
		if i+1 < len(onsets) {
			end = onsets[i+1].tick
		}
		for _, key := range o.pitch {
			notes = append(notes, Note{Start: o.tick, Duration: end - o.tick, Key: key})
		}
	}

	return notes, tick
}

type midiEvent struct {
	tick uint32
	on   bool
	key  uint8
}

// WriteMIDI writes s to w as a single-track Standard MIDI File.
func WriteMIDI(w io.Writer, s *song.Song, opts MIDIOptions) error {
	notes, length := Timeline(s, opts.Octave)

	events := make([]midiEvent, 0, 2*len(notes))
	for _, n := range notes {
		events = append(events,
			midiEvent{tick: n.Start, on: true, key: n.Key},
			midiEvent{tick: n.Start + n.Duration, on: false, key: n.Key},
		)
	}
	// Offs before ons on the same tick so repeated pitches re-strike.
	slices.SortStableFunc(events, func(a, b midiEvent) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		switch {
		case a.on == b.on:
			return 0
		case !a.on:
			return -1
		default:
			return 1
		}
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(s.Title))
	tr.Add(0, smf.MetaTempo(float64(opts.Tempo)))
	if len(s.Sections) > 0 && len(s.Sections[0].Bars) > 0 {
		tr.Add(0, smf.MetaMeter(uint8(s.Sections[0].Bars[0].Beats), 4))
	}

	var last uint32
	for _, e := range events {
		delta := e.tick - last
		last = e.tick
		if e.on {
			tr.Add(delta, midi.NoteOn(midiChannel, e.key, midiVelocity))
		} else {
			tr.Add(delta, midi.NoteOff(midiChannel, e.key))
		}
	}
	tr.Close(length - last)

	f := smf.New()
	f.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := f.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}
