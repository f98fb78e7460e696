package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/leadsheet/internal/core/config"
)

var actionHelp = map[string]string{
	config.ActionNextSubdivision:   "next slot",
	config.ActionPrevSubdivision:   "prev slot",
	config.ActionNextBar:           "next bar",
	config.ActionPrevBar:           "prev bar",
	config.ActionNextSection:       "next section",
	config.ActionRowUp:             "row up",
	config.ActionRowDown:           "row down",
	config.ActionDelete:            "delete",
	config.ActionDoubleSubdivision: "double",
	config.ActionReduceSubdivision: "halve",
	config.ActionToggleQuestion:    "toggle ?",
	config.ActionToggleSpecial:     "toggle !",
	config.ActionCommand:           "command",
	config.ActionQuit:              "quit",
}

// shortHelpActions are shown on the help line; the rest stay reachable but
// unlisted.
var shortHelpActions = []string{
	config.ActionNextSubdivision,
	config.ActionNextBar,
	config.ActionNextSection,
	config.ActionDelete,
	config.ActionDoubleSubdivision,
	config.ActionReduceSubdivision,
	config.ActionCommand,
	config.ActionQuit,
}

// KeyMap resolves normal-mode key presses to editor actions.
type KeyMap struct {
	bindings map[string]key.Binding
	order    []string
}

// NewKeyMap builds bindings from the configured action -> keys table.
// Actions missing from keys are left unbound.
func NewKeyMap(keys map[string][]string) KeyMap {
	km := KeyMap{bindings: make(map[string]key.Binding, len(keys))}
	for _, action := range config.Actions() {
		ks, ok := keys[action]
		if !ok || len(ks) == 0 {
			continue
		}
		km.bindings[action] = key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), actionHelp[action]),
		)
		km.order = append(km.order, action)
	}
	return km
}

// Resolve returns the action bound to msg, if any.
func (km KeyMap) Resolve(msg tea.KeyPressMsg) (string, bool) {
	for _, action := range km.order {
		if key.Matches(msg, km.bindings[action]) {
			return action, true
		}
	}
	return "", false
}

// ShortHelp returns the bindings listed on the help line.
func (km KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelpActions))
	for _, action := range shortHelpActions {
		if b, ok := km.bindings[action]; ok {
			out = append(out, b)
		}
	}
	return out
}

func modeHelp(pairs ...string) []key.Binding {
	out := make([]key.Binding, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, key.NewBinding(key.WithKeys(pairs[i]), key.WithHelp(pairs[i], pairs[i+1])))
	}
	return out
}

var (
	chordEntryHelp  = modeHelp("space", "next slot", "tab", "next bar", "enter", "commit", "esc", "cancel")
	commandLineHelp = modeHelp("enter", "run", "esc", "cancel")
	promptHelp      = modeHelp("enter", "accept", "esc", "cancel")
	confirmHelp     = modeHelp("y", "yes", "n", "no")
)
