// Package tui implements the interactive chart editor.
package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/config"
	"github.com/hay-kot/leadsheet/internal/core/editor"
	"github.com/hay-kot/leadsheet/internal/core/grid"
	"github.com/hay-kot/leadsheet/internal/core/notify"
	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

// UIState is the input mode the editor is in.
type UIState int

const (
	stateNormal UIState = iota
	stateChordEntry
	stateCommand
	statePrompt
	stateConfirm
)

// chromeLines are the lines below the chart: status and help.
const chromeLines = 2

// Options configure a new Model.
type Options struct {
	Config *config.Config
	// Song is the document to edit; nil starts from the configured defaults.
	Song *song.Song
	// Path binds the document to a file for save; may be empty.
	Path string
}

// Model is the bubbletea model of the editor.
type Model struct {
	cfg    *config.Config
	editor *editor.Editor
	path   string
	dirty  bool

	state   UIState
	entry   *ChordEntry
	cmdline *CommandLine
	prompt  *Prompt
	confirm *Confirm

	keys      KeyMap
	help      help.Model
	viewport  viewport.Model
	toasts    *ToastController
	toastView *ToastView

	width    int
	height   int
	quitting bool

	log zerolog.Logger
}

// New returns an editor model for opts.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	s := opts.Song
	if s == nil {
		s = song.NewWithDefaults(cfg.SongDefaults())
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	toasts := NewToastController()

	m := Model{
		cfg:       cfg,
		editor:    editor.New(s),
		path:      opts.Path,
		keys:      NewKeyMap(cfg.Keys),
		help:      h,
		viewport:  viewport.New(),
		toasts:    toasts,
		toastView: NewToastView(toasts),
		log:       log.With().Str("component", "tui").Logger(),
	}
	m.syncViewport()
	return m
}

// Song returns the document being edited.
func (m Model) Song() *song.Song {
	return m.editor.Song()
}

// Path returns the file the document is bound to, if any.
func (m Model) Path() string {
	return m.path
}

// Dirty reports whether the document changed since it was loaded or saved.
func (m Model) Dirty() bool {
	return m.dirty
}

// Cursor returns the editor's cursor.
func (m Model) Cursor() editor.Position {
	return m.editor.Cursor()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(max(msg.Height-chromeLines, 1))
		m.syncViewport()
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case tea.KeyPressMsg:
		cmd := m.handleKey(msg)
		m.syncViewport()
		return m, tea.Batch(cmd, m.ensureToastTick())
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateChordEntry:
		m.handleChordEntryKey(msg)
	case stateCommand:
		return m.handleCommandKey(msg)
	case statePrompt:
		m.handlePromptKey(msg)
	case stateConfirm:
		m.handleConfirmKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	if action, ok := m.keys.Resolve(msg); ok {
		return m.runAction(action)
	}

	if msg.Code == tea.KeyEscape {
		m.toasts.DismissAll()
		return nil
	}

	if r, ok := typedRune(msg); ok {
		if _, isNote := chord.NoteFromRune(r); isNote {
			m.entry = NewChordEntry(r)
			m.state = stateChordEntry
		}
	}
	return nil
}

func (m *Model) runAction(action string) tea.Cmd {
	ed := m.editor
	before := shapeOf(ed.Song())
	defer func() {
		if shapeOf(ed.Song()) != before {
			m.dirty = true
		}
	}()

	switch action {
	case config.ActionNextSubdivision:
		ed.NextSubdivision()
	case config.ActionPrevSubdivision:
		ed.PrevSubdivision()
	case config.ActionNextBar:
		ed.NextOrCreateBar()
	case config.ActionPrevBar:
		ed.PrevBar()
	case config.ActionNextSection:
		ed.NextOrCreateSection()
	case config.ActionRowUp:
		ed.RowUp()
	case config.ActionRowDown:
		ed.RowDown()
	case config.ActionDelete:
		m.deleteAtCursor()
	case config.ActionDoubleSubdivision:
		m.resize(ed.DoubleSubdivision())
	case config.ActionReduceSubdivision:
		m.resize(ed.ReduceSubdivision())
	case config.ActionToggleQuestion:
		m.markEdited(ed.ToggleQuestion())
	case config.ActionToggleSpecial:
		m.markEdited(ed.ToggleSpecial())
	case config.ActionCommand:
		m.cmdline = NewCommandLine()
		m.state = stateCommand
	case config.ActionQuit:
		return m.quit()
	}
	return nil
}

func (m *Model) deleteAtCursor() {
	d := m.editor.DeleteAtCursor()
	m.log.Debug().Stringer("deleted", d).Interface("cursor", m.editor.Cursor()).Msg("delete")

	switch d {
	case editor.DeletedChord:
		m.dirty = true
	case editor.DeletedBar:
		m.notify(notify.Infof("Deleted bar"))
	case editor.DeletedSection:
		m.notify(notify.Infof("Deleted section"))
	}
}

func (m *Model) resize(ok bool) {
	n := m.editor.Bar().Subdivision
	if !ok {
		m.notify(notify.Warnf("Bar stays at %d subdivisions", n))
		return
	}
	m.dirty = true
	m.notify(notify.Infof("%d subdivisions", n))
}

func (m *Model) markEdited(ok bool) {
	if ok {
		m.dirty = true
	}
}

func (m *Model) handleChordEntryKey(msg tea.KeyPressMsg) {
	out := m.entry.Handle(msg)
	switch out {
	case outcomePending:
		return
	case outcomeCancel:
		m.resetState()
		return
	}

	m.commitChord(m.entry.Text())
	m.resetState()

	switch out {
	case outcomeCommitNextSlot:
		m.runAction(config.ActionNextSubdivision)
	case outcomeCommitNextBar:
		m.runAction(config.ActionNextBar)
	}
}

// commitChord stores text at the cursor. Text that does not parse leaves
// the slot untouched.
func (m *Model) commitChord(text string) {
	if text == "" {
		return
	}

	c, err := chord.Parse(text)
	if err != nil {
		m.log.Debug().Err(err).Str("input", text).Msg("chord rejected")
		m.notify(notify.Warnf("Not a chord: %q", text))
		return
	}

	if err := m.editor.Insert(c); err != nil {
		m.notify(notify.Errorf("insert chord: %v", err))
		return
	}
	m.dirty = true
}

func (m *Model) handleCommandKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.cmdline.Handle(msg) {
	case outcomeCancel:
		m.resetState()
	case outcomeCommit:
		input := m.cmdline.Text()
		m.resetState()
		return m.runCommand(ParseCommandInput(input))
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) {
	switch m.prompt.Handle(msg) {
	case outcomeCancel:
		m.resetState()
	case outcomeCommit:
		answer := strings.TrimSpace(m.prompt.Text())
		purpose := m.prompt.purpose
		m.resetState()

		if purpose == promptSaveAs {
			if answer == "" {
				m.notify(notify.Warnf("need a file name to save"))
				return
			}
			m.save(answer)
		}
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch m.confirm.Handle(msg) {
	case outcomeCancel:
		m.resetState()
	case outcomeCommit:
		purpose := m.confirm.purpose
		m.resetState()

		if purpose == confirmNewSong {
			m.newSong()
		}
	}
}

func (m *Model) resetState() {
	m.state = stateNormal
	m.entry = nil
	m.cmdline = nil
	m.prompt = nil
	m.confirm = nil
}

func (m *Model) quit() tea.Cmd {
	if m.dirty {
		m.log.Warn().Str("path", m.path).Msg("quitting with unsaved changes")
	}
	m.quitting = true
	return tea.Quit
}

// notify logs n and shows it as a toast.
func (m *Model) notify(n notify.Notification) {
	m.log.WithLevel(n.Level.LogLevel()).Msg(n.Message)
	m.toasts.Push(n)
}

func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

// syncViewport redraws the chart and scrolls so the cursor row is visible
// together with its section label.
func (m *Model) syncViewport() {
	s := m.editor.Song()
	m.viewport.SetContent(strings.Join(renderChart(s, m.editor.Cursor()), "\n"))

	h := m.viewport.Height()
	if h <= 0 {
		return
	}

	cur := m.editor.Cursor()
	row := grid.Locate(s, cur).Row
	top := m.viewport.YOffset()
	label := grid.SectionTop(s, cur.Section)

	switch {
	case row < top && row-label < h:
		m.viewport.SetYOffset(label)
	case row < top:
		m.viewport.SetYOffset(row)
	case row >= top+h:
		m.viewport.SetYOffset(row - h + 1)
	}
}

type shape struct {
	sections int
	bars     int
}

func shapeOf(s *song.Song) shape {
	sh := shape{sections: len(s.Sections)}
	for _, sec := range s.Sections {
		sh.bars += len(sec.Bars)
	}
	return sh
}
