package tui

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/leadsheet/internal/core/notify"
	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/export"
	"github.com/hay-kot/leadsheet/internal/store/songfile"
)

// runCommand executes a line typed at the ':' prompt. Unknown commands are
// ignored.
func (m *Model) runCommand(p ParsedCommand) tea.Cmd {
	if p.Name == "" {
		return nil
	}
	m.log.Debug().Str("command", p.Name).Strs("args", p.Args).Msg("run command")

	switch p.Name {
	case "title", "t":
		m.setTitle(p.Rest())
	case "quit", "q":
		return m.quit()
	case "save", "s":
		m.save(p.Rest())
	case "edit", "e":
		m.edit(p.Rest())
	case "print", "p":
		m.print()
	case "midi", "m":
		m.midi(p.Rest())
	case "new", "n":
		m.confirm = NewConfirm("Are you sure you want to clear your song?", confirmNewSong)
		m.state = stateConfirm
	case "wrap":
		n, err := strconv.Atoi(p.Arg(0))
		if err != nil || !m.editor.SetWrap(n) {
			m.notify(notify.Warnf("wrap needs a bar count of at least 1"))
			return nil
		}
		m.dirty = true
		m.notify(notify.Infof("%d bars per row", n))
	case "beats":
		n, err := strconv.Atoi(p.Arg(0))
		if err != nil || !m.editor.SetBeats(n) {
			m.notify(notify.Warnf("beats needs a count of at least 1"))
			return nil
		}
		m.dirty = true
		m.notify(notify.Infof("%d beats", n))
	case "repeat":
		m.dirty = true
		if m.editor.ToggleRepeat() {
			m.notify(notify.Infof("Section %s repeats", m.editor.Section().Label))
		} else {
			m.notify(notify.Infof("Section %s plays once", m.editor.Section().Label))
		}
	default:
		m.log.Debug().Str("command", p.Name).Msg("unknown command")
	}
	return nil
}

func (m *Model) setTitle(title string) {
	if title == "" {
		return
	}
	m.editor.Song().Title = title
	m.dirty = true
	m.notify(notify.Infof("Set title to '%s'.", title))
}

// save writes the document. A name binds the document to that file first;
// with no name and no bound file the user is asked for one.
func (m *Model) save(name string) {
	if name != "" {
		if _, err := songfile.FormatFor(name); err != nil {
			m.notify(notify.Errorf("cannot save %s: %v", name, err))
			return
		}
		m.path = name
	}

	if m.path == "" {
		m.prompt = NewPrompt("filename? ", promptSaveAs)
		m.state = statePrompt
		return
	}

	if err := songfile.Save(m.path, m.editor.Song()); err != nil {
		m.notify(notify.Errorf("save failed: %v", err))
		return
	}
	m.dirty = false
	m.notify(notify.Infof("Saved to %s", m.path))
}

// edit replaces the document with the file at path. A path that does not
// exist yet starts a new document bound to it.
func (m *Model) edit(path string) {
	if path == "" {
		return
	}

	s, err := songfile.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.replaceSong(song.NewWithDefaults(m.cfg.SongDefaults()), path)
		m.notify(notify.Infof("New file %s", path))
	case err != nil:
		m.notify(notify.Errorf("%v", err))
	default:
		m.replaceSong(s, path)
		m.notify(notify.Infof("Opened %s", path))
	}
}

func (m *Model) newSong() {
	m.replaceSong(song.NewWithDefaults(m.cfg.SongDefaults()), "")
	m.notify(notify.Infof("Cleared song"))
}

func (m *Model) replaceSong(s *song.Song, path string) {
	m.editor.Load(s)
	m.path = path
	m.dirty = false
	m.viewport.SetYOffset(0)
}

func (m *Model) print() {
	path := m.cfg.ExportPath(m.path, m.exportBase()+".html")
	if err := export.SaveHTML(path, m.editor.Song()); err != nil {
		m.notify(notify.Errorf("print failed: %v", err))
		return
	}
	m.notify(notify.Infof("Printed to %s", path))
}

func (m *Model) midi(name string) {
	path := name
	if path == "" {
		path = m.cfg.ExportPath(m.path, m.exportBase()+".mid")
	}

	opts := export.MIDIOptions{Tempo: m.cfg.Export.Tempo, Octave: m.cfg.Export.Octave}
	if err := export.SaveMIDI(path, m.editor.Song(), opts); err != nil {
		m.notify(notify.Errorf("midi export failed: %v", err))
		return
	}
	m.notify(notify.Infof("Wrote %s", path))
}

// exportBase names exports after the bound file, else after the title.
func (m *Model) exportBase() string {
	if m.path != "" {
		base := filepath.Base(m.path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return slugify(m.editor.Song().Title)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}
