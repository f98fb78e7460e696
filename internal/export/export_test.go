package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/pkg/tuitest"
)

func put(t *testing.T, s *song.Song, sec, bar, slot int, sym string) {
	t.Helper()
	require.NoError(t, s.Bar(sec, bar).InsertChord(slot, chord.MustParse(sym)))
}

// twoSections is A: |C . G7! . |F . . . |Bb^? . . .|  (wrap 2)  B: |D-7 . . .| repeated.
func twoSections(t *testing.T) *song.Song {
	t.Helper()
	s := song.New()
	s.Title = "Test Tune"
	s.Sections[0].Wrap = 2
	s.Sections[0].AppendBar()
	s.Sections[0].AppendBar()
	put(t, s, 0, 0, 0, "C")
	put(t, s, 0, 0, 2, "G7!")
	put(t, s, 0, 1, 0, "F")
	put(t, s, 0, 2, 0, "Bb^?")

	s.AppendSection()
	s.Sections[1].Repeats = true
	put(t, s, 1, 0, 0, "D-7")
	return s
}

func TestNewChart(t *testing.T) {
	c := NewChart(twoSections(t))

	assert.Equal(t, "Test Tune", c.Title)
	require.Len(t, c.Sections, 2)

	a := c.Sections[0]
	assert.Equal(t, "A", a.Label)
	require.Len(t, a.Bars, 3)
	require.Len(t, a.Rows, 2)
	assert.Len(t, a.Rows[1], 2)
	assert.True(t, a.Rows[1][1].Blank)
	assert.Equal(t, ChartSlot{Symbol: "G7!", Special: true}, a.Bars[0].Slots[2])
	assert.Equal(t, ChartSlot{}, a.Bars[0].Slots[1])

	assert.True(t, c.Sections[1].Repeats)
	assert.Len(t, c.Sections[1].Rows, 1)
}

func TestChartBar_Cell(t *testing.T) {
	c := NewChart(twoSections(t))
	a := c.Sections[0]

	assert.Equal(t, "C · **G7!** ·", a.Bars[0].Cell())
	assert.Equal(t, "_Bb^?_ · · ·", a.Bars[2].Cell())
	assert.Equal(t, "", a.Rows[1][1].Cell())
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown(twoSections(t))
	require.NoError(t, err)

	want := strings.Join([]string{
		"# Test Tune",
		"",
		"## A",
		"",
		"| 1 | 2 |",
		"| --- | --- |",
		"| C · **G7!** · | F · · · |",
		"| _Bb^?_ · · · |  |",
		"",
		"## B (repeat)",
		"",
		"| 1 | 2 |",
		"| --- | --- |",
		"| D-7 · · · |  |",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestTerminal(t *testing.T) {
	out, err := Terminal(twoSections(t), 80)
	require.NoError(t, err)

	plain := tuitest.StripANSI(out)
	assert.Contains(t, plain, "Test Tune")
	assert.Contains(t, plain, "D-7")
	assert.Contains(t, plain, "G7!")
}

func TestHTML(t *testing.T) {
	s := twoSections(t)
	s.Title = "Tom & Jerry"

	out, err := HTML(s)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Tom &amp; Jerry</title>")
	assert.Contains(t, out, "<h2>A</h2>")
	assert.Contains(t, out, `<chart-bar style="width: calc(100%/2);">`)
	assert.Contains(t, out, `<chart-sub style="width: calc(100%/4);">C</chart-sub>`)
	assert.Contains(t, out, `class="special">G7!</chart-sub>`)
	assert.Contains(t, out, `class="question">Bb^?</chart-sub>`)
	assert.Equal(t, 4, strings.Count(out, "<chart-bar "))
	assert.Equal(t, 16, strings.Count(out, "<chart-sub "))
}

func TestTimeline(t *testing.T) {
	s := song.New()
	s.Sections[0].AppendBar()
	put(t, s, 0, 0, 0, "C")
	put(t, s, 0, 0, 2, "F")
	put(t, s, 0, 1, 1, "G")

	notes, length := Timeline(s, 4)

	const bar = 4 * TicksPerQuarter
	assert.Equal(t, uint32(2*bar), length)
	assert.Equal(t, []Note{
		{Start: 0, Duration: bar / 2, Key: 60},
		{Start: 0, Duration: bar / 2, Key: 64},
		{Start: 0, Duration: bar / 2, Key: 67},
		{Start: bar / 2, Duration: bar/2 + bar/4, Key: 65},
		{Start: bar / 2, Duration: bar/2 + bar/4, Key: 69},
		{Start: bar / 2, Duration: bar/2 + bar/4, Key: 72},
		{Start: bar + bar/4, Duration: 3 * bar / 4, Key: 67},
		{Start: bar + bar/4, Duration: 3 * bar / 4, Key: 71},
		{Start: bar + bar/4, Duration: 3 * bar / 4, Key: 74},
	}, notes)
}

func TestTimeline_RepeatsAndBeats(t *testing.T) {
	s := song.New()
	s.Sections[0].Repeats = true
	s.Bar(0, 0).Beats = 3
	put(t, s, 0, 0, 0, "A")

	notes, length := Timeline(s, 4)

	assert.Equal(t, uint32(2*3*TicksPerQuarter), length)
	require.Len(t, notes, 6)
	assert.Equal(t, uint32(3*TicksPerQuarter), notes[3].Start)
}

func TestTimeline_Empty(t *testing.T) {
	notes, length := Timeline(song.New(), 4)

	assert.Empty(t, notes)
	assert.Equal(t, uint32(4*TicksPerQuarter), length)
}

func TestWriteMIDI(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMIDI(&buf, twoSections(t), MIDIOptions{Tempo: 100, Octave: 4}))

	f, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, f.Tracks, 1)

	var ons, offs int
	for _, ev := range f.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case midi.Message(ev.Message).GetNoteOn(&ch, &key, &vel):
			ons++
		case midi.Message(ev.Message).GetNoteOff(&ch, &key, &vel):
			offs++
		}
	}

	notes, _ := Timeline(twoSections(t), 4)
	assert.Equal(t, len(notes), ons)
	assert.Equal(t, len(notes), offs)
}

func TestSaveHTMLAndMIDI(t *testing.T) {
	s := twoSections(t)
	dir := filepath.Join(t.TempDir(), "out")

	htmlPath := filepath.Join(dir, "tune.html")
	require.NoError(t, SaveHTML(htmlPath, s))
	page, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Test Tune")

	midPath := filepath.Join(dir, "tune.mid")
	require.NoError(t, SaveMIDI(midPath, s, MIDIOptions{Tempo: 100, Octave: 4}))
	f, err := os.Open(midPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	_, err = smf.ReadFrom(f)
	require.NoError(t, err)
}
