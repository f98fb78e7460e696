package tui

import (
	"fmt"
	"path/filepath"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/leadsheet/internal/core/grid"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

// View renders the chart, the status and help lines, and any toasts.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	body := m.viewport.View()
	if m.state == stateChordEntry {
		body = m.overlayEntry(body)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(), m.helpLine())
	return m.toastView.Overlay(content, w, h, chromeLines)
}

// overlayEntry draws the chord being typed over the slot it will land in.
func (m Model) overlayEntry(body string) string {
	pt := grid.Locate(m.editor.Song(), m.editor.Cursor())
	y := pt.Row - m.viewport.YOffset()
	if y < 0 || y >= m.viewport.Height() {
		return body
	}

	caret := lipgloss.NewLayer(styles.EntryStyle.Render(m.entry.Text() + " "))
	caret.X(pt.Col).Y(y).Z(1)

	return lipgloss.NewCompositor(lipgloss.NewLayer(body), caret).Render()
}

func (m Model) statusLine() string {
	switch m.state {
	case stateChordEntry:
		return styles.PromptStyle.Render("chord: ") + styles.CommandLineStyle.Render(m.entry.Text())
	case stateCommand:
		return styles.PromptStyle.Render(":") + styles.CommandLineStyle.Render(m.cmdline.Text())
	case statePrompt:
		return styles.PromptStyle.Render(m.prompt.Label) + styles.CommandLineStyle.Render(m.prompt.Text())
	case stateConfirm:
		return styles.PromptStyle.Render(m.confirm.Question + " (y/n)")
	}

	cur := m.editor.Cursor()
	sec := m.editor.Section()
	bar := m.editor.Bar()

	file := "[no file]"
	if m.path != "" {
		file = filepath.Base(m.path)
	}
	if m.dirty {
		file += " [+]"
	}

	return styles.StatusStyle.Render(fmt.Sprintf("[%s] bar %d/%d  slot %d/%d  %d beats  %s",
		sec.Label,
		cur.Bar+1, len(sec.Bars),
		cur.Subdivision+1, bar.Subdivision,
		bar.Beats,
		file,
	))
}

func (m Model) helpLine() string {
	var bindings []key.Binding
	switch m.state {
	case stateChordEntry:
		bindings = chordEntryHelp
	case stateCommand:
		bindings = commandLineHelp
	case statePrompt:
		bindings = promptHelp
	case stateConfirm:
		bindings = confirmHelp
	default:
		bindings = m.keys.ShortHelp()
	}
	return m.help.ShortHelpView(bindings)
}
