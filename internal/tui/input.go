package tui

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
)

// outcome is the result of feeding one key to a line-editing sub-mode.
type outcome int

const (
	outcomePending outcome = iota
	outcomeCancel
	outcomeCommit
	// outcomeCommitNextSlot commits, then moves to the next subdivision.
	outcomeCommitNextSlot
	// outcomeCommitNextBar commits, then moves to the next bar.
	outcomeCommitNextBar
)

// typedRune returns the printable character a key press carries. Space is
// reported separately by every caller, so it is never returned here.
func typedRune(msg tea.KeyPressMsg) (rune, bool) {
	if msg.Text != "" {
		rs := []rune(msg.Text)
		if len(rs) == 1 && unicode.IsPrint(rs[0]) && rs[0] != ' ' {
			return rs[0], true
		}
		return 0, false
	}
	if msg.Mod != 0 && msg.Mod != tea.ModShift {
		return 0, false
	}
	if msg.Code > ' ' && msg.Code <= unicode.MaxRune && unicode.IsPrint(msg.Code) {
		return msg.Code, true
	}
	return 0, false
}

// lineBuffer is the text being typed in any sub-mode.
type lineBuffer struct {
	runes []rune
}

func (b *lineBuffer) push(r rune) { b.runes = append(b.runes, r) }

func (b *lineBuffer) pop() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

func (b *lineBuffer) set(s string) { b.runes = []rune(s) }

func (b *lineBuffer) empty() bool { return len(b.runes) == 0 }

func (b *lineBuffer) String() string { return string(b.runes) }

// ChordEntry collects the symbol of a chord typed in place at the cursor.
type ChordEntry struct {
	buf lineBuffer
}

// NewChordEntry starts an entry whose first character has already been typed.
func NewChordEntry(first rune) *ChordEntry {
	e := &ChordEntry{}
	e.buf.push(first)
	return e
}

// Text returns the symbol typed so far.
func (e *ChordEntry) Text() string {
	return e.buf.String()
}

// Handle feeds one key to the entry. Printable characters append,
// backspace deletes, and any other key ends the entry.
func (e *ChordEntry) Handle(msg tea.KeyPressMsg) outcome {
	switch msg.Code {
	case tea.KeyEscape:
		return outcomeCancel
	case tea.KeyBackspace:
		e.buf.pop()
		return outcomePending
	case tea.KeySpace:
		return outcomeCommitNextSlot
	case tea.KeyTab:
		if msg.Mod == 0 {
			return outcomeCommitNextBar
		}
	}

	if r, ok := typedRune(msg); ok {
		e.buf.push(r)
		return outcomePending
	}
	return outcomeCommit
}

// commandExpansions complete a single-letter command when space follows it.
var commandExpansions = map[string]string{
	"t": "title ",
	"q": "quit",
	"s": "save ",
	"e": "edit ",
	"p": "print",
	"n": "new",
	"m": "midi ",
}

// CommandLine is the ':' prompt.
type CommandLine struct {
	buf lineBuffer
}

func NewCommandLine() *CommandLine {
	return &CommandLine{}
}

// Text returns the command typed so far.
func (c *CommandLine) Text() string {
	return c.buf.String()
}

// Handle feeds one key to the command line. A space right after a known
// one-letter abbreviation expands it; a leading space is dropped.
func (c *CommandLine) Handle(msg tea.KeyPressMsg) outcome {
	switch msg.Code {
	case tea.KeyEscape:
		return outcomeCancel
	case tea.KeyEnter:
		return outcomeCommit
	case tea.KeyTab:
		return outcomePending
	case tea.KeyBackspace:
		c.buf.pop()
		return outcomePending
	case tea.KeySpace:
		if full, ok := commandExpansions[c.buf.String()]; ok {
			c.buf.set(full)
		} else if !c.buf.empty() {
			c.buf.push(' ')
		}
		return outcomePending
	}

	if r, ok := typedRune(msg); ok {
		c.buf.push(r)
		return outcomePending
	}
	return outcomePending
}

// promptPurpose records what a prompt's answer is for.
type promptPurpose int

const (
	promptSaveAs promptPurpose = iota
)

// Prompt asks for one line of free text.
type Prompt struct {
	Label   string
	purpose promptPurpose
	buf     lineBuffer
}

func NewPrompt(label string, purpose promptPurpose) *Prompt {
	return &Prompt{Label: label, purpose: purpose}
}

// Text returns the answer typed so far.
func (p *Prompt) Text() string {
	return p.buf.String()
}

// Handle feeds one key to the prompt. Enter accepts, esc cancels, tab is
// ignored.
func (p *Prompt) Handle(msg tea.KeyPressMsg) outcome {
	switch msg.Code {
	case tea.KeyEscape:
		return outcomeCancel
	case tea.KeyEnter:
		return outcomeCommit
	case tea.KeyTab:
		return outcomePending
	case tea.KeyBackspace:
		p.buf.pop()
		return outcomePending
	case tea.KeySpace:
		p.buf.push(' ')
		return outcomePending
	}

	if r, ok := typedRune(msg); ok {
		p.buf.push(r)
	}
	return outcomePending
}

// confirmPurpose records what a yes answer does.
type confirmPurpose int

const (
	confirmNewSong confirmPurpose = iota
)

// Confirm asks a yes/no question.
type Confirm struct {
	Question string
	purpose  confirmPurpose
}

func NewConfirm(question string, purpose confirmPurpose) *Confirm {
	return &Confirm{Question: question, purpose: purpose}
}

// Handle returns outcomeCommit for y, outcomeCancel for n or esc, and
// ignores every other key.
func (c *Confirm) Handle(msg tea.KeyPressMsg) outcome {
	if msg.Code == tea.KeyEscape {
		return outcomeCancel
	}
	r, ok := typedRune(msg)
	if !ok {
		return outcomePending
	}
	switch unicode.ToLower(r) {
	case 'y':
		return outcomeCommit
	case 'n':
		return outcomeCancel
	}
	return outcomePending
}
