package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/leadsheet/pkg/tuitest"
)

func press(msg tea.Msg) tea.KeyPressMsg {
	return msg.(tea.KeyPressMsg)
}

func TestTypedRune(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want rune
		ok   bool
	}{
		{name: "typed text", msg: tuitest.KeyText('G'), want: 'G', ok: true},
		{name: "bare code", msg: tuitest.KeyPress('#'), want: '#', ok: true},
		{name: "space is not typed", msg: tuitest.KeySpace(), ok: false},
		{name: "enter", msg: tuitest.KeyEnter(), ok: false},
		{name: "arrow", msg: tuitest.KeyUp(), ok: false},
		{name: "ctrl chord", msg: tuitest.KeyCtrl('a'), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := typedRune(press(tt.msg))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChordEntry(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		want     outcome
		wantText string
	}{
		{
			name:     "space commits and advances a slot",
			keys:     append(tuitest.Type("b7/F"), tuitest.KeySpace()),
			want:     outcomeCommitNextSlot,
			wantText: "Cb7/F",
		},
		{
			name:     "tab commits and advances a bar",
			keys:     append(tuitest.Type("^"), tuitest.Key(tea.KeyTab)),
			want:     outcomeCommitNextBar,
			wantText: "C^",
		},
		{
			name:     "enter commits in place",
			keys:     []tea.Msg{tuitest.KeyEnter()},
			want:     outcomeCommit,
			wantText: "C",
		},
		{
			name:     "other special keys commit in place",
			keys:     []tea.Msg{tuitest.KeyDown()},
			want:     outcomeCommit,
			wantText: "C",
		},
		{
			name:     "esc cancels",
			keys:     append(tuitest.Type("-7"), tuitest.KeyEsc()),
			want:     outcomeCancel,
			wantText: "C-7",
		},
		{
			name:     "backspace edits the buffer",
			keys:     []tea.Msg{tuitest.KeyText('7'), tuitest.Key(tea.KeyBackspace), tuitest.KeyText('-'), tuitest.KeyEnter()},
			want:     outcomeCommit,
			wantText: "C-",
		},
		{
			name:     "backspace past the start empties the buffer",
			keys:     []tea.Msg{tuitest.Key(tea.KeyBackspace), tuitest.Key(tea.KeyBackspace), tuitest.KeyEnter()},
			want:     outcomeCommit,
			wantText: "",
		},
		{
			name:     "marker characters are typed, not bound",
			keys:     append(tuitest.Type("!?"), tuitest.KeyEnter()),
			want:     outcomeCommit,
			wantText: "C!?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewChordEntry('C')

			got := outcomePending
			for _, k := range tt.keys {
				got = e.Handle(press(k))
				if got != outcomePending {
					break
				}
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantText, e.Text())
		})
	}
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		want     outcome
		wantText string
	}{
		{
			name:     "abbreviation expands on space",
			keys:     []tea.Msg{tuitest.KeyText('t'), tuitest.KeySpace()},
			want:     outcomePending,
			wantText: "title ",
		},
		{
			name:     "expansion then typing",
			keys:     append([]tea.Msg{tuitest.KeyText('s'), tuitest.KeySpace()}, append(tuitest.Type("x.yaml"), tuitest.KeyEnter())...),
			want:     outcomeCommit,
			wantText: "save x.yaml",
		},
		{
			name:     "q expands to quit",
			keys:     []tea.Msg{tuitest.KeyText('q'), tuitest.KeySpace()},
			want:     outcomePending,
			wantText: "quit",
		},
		{
			name:     "no expansion after a longer word",
			keys:     append(tuitest.Type("wrap"), tuitest.KeySpace(), tuitest.KeyText('2')),
			want:     outcomePending,
			wantText: "wrap 2",
		},
		{
			name:     "leading space is dropped",
			keys:     []tea.Msg{tuitest.KeySpace(), tuitest.KeyText('p')},
			want:     outcomePending,
			wantText: "p",
		},
		{
			name:     "tab is ignored",
			keys:     []tea.Msg{tuitest.KeyText('p'), tuitest.Key(tea.KeyTab)},
			want:     outcomePending,
			wantText: "p",
		},
		{
			name:     "esc cancels",
			keys:     []tea.Msg{tuitest.KeyText('p'), tuitest.KeyEsc()},
			want:     outcomeCancel,
			wantText: "p",
		},
		{
			name:     "backspace",
			keys:     append(tuitest.Type("nx"), tuitest.Key(tea.KeyBackspace)),
			want:     outcomePending,
			wantText: "n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCommandLine()

			got := outcomePending
			for _, k := range tt.keys {
				got = c.Handle(press(k))
				if got != outcomePending {
					break
				}
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantText, c.Text())
		})
	}
}

func TestPrompt(t *testing.T) {
	p := NewPrompt("filename? ", promptSaveAs)

	for _, k := range tuitest.Type("my") {
		assert.Equal(t, outcomePending, p.Handle(press(k)))
	}
	assert.Equal(t, outcomePending, p.Handle(press(tuitest.KeySpace())))
	assert.Equal(t, outcomePending, p.Handle(press(tuitest.Key(tea.KeyTab))))
	assert.Equal(t, outcomePending, p.Handle(press(tuitest.KeyText('s'))))
	assert.Equal(t, outcomeCommit, p.Handle(press(tuitest.KeyEnter())))
	assert.Equal(t, "my s", p.Text())

	assert.Equal(t, outcomeCancel, NewPrompt("x", promptSaveAs).Handle(press(tuitest.KeyEsc())))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		key  tea.Msg
		want outcome
	}{
		{name: "y", key: tuitest.KeyText('y'), want: outcomeCommit},
		{name: "Y", key: tuitest.KeyText('Y'), want: outcomeCommit},
		{name: "n", key: tuitest.KeyText('n'), want: outcomeCancel},
		{name: "esc", key: tuitest.KeyEsc(), want: outcomeCancel},
		{name: "other letter", key: tuitest.KeyText('x'), want: outcomePending},
		{name: "enter", key: tuitest.KeyEnter(), want: outcomePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirm("sure?", confirmNewSong)
			assert.Equal(t, tt.want, c.Handle(press(tt.key)))
		})
	}
}
