// Package config handles configuration loading and validation for leadsheet.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

// Editor actions that can be bound to keys.
const (
	ActionNextSubdivision   = "next_subdivision"
	ActionPrevSubdivision   = "prev_subdivision"
	ActionNextBar           = "next_bar"
	ActionPrevBar           = "prev_bar"
	ActionNextSection       = "next_section"
	ActionRowUp             = "row_up"
	ActionRowDown           = "row_down"
	ActionDelete            = "delete"
	ActionDoubleSubdivision = "double_subdivision"
	ActionReduceSubdivision = "reduce_subdivision"
	ActionToggleQuestion    = "toggle_question"
	ActionToggleSpecial     = "toggle_special"
	ActionCommand           = "command"
	ActionQuit              = "quit"
)

// Actions returns every bindable action in display order.
func Actions() []string {
	return []string{
		ActionNextSubdivision,
		ActionPrevSubdivision,
		ActionNextBar,
		ActionPrevBar,
		ActionNextSection,
		ActionRowUp,
		ActionRowDown,
		ActionDelete,
		ActionDoubleSubdivision,
		ActionReduceSubdivision,
		ActionToggleQuestion,
		ActionToggleSpecial,
		ActionCommand,
		ActionQuit,
	}
}

// defaultKeys provides built-in keybindings that users can override per action.
var defaultKeys = map[string][]string{
	ActionNextSubdivision:   {"space", "right"},
	ActionPrevSubdivision:   {"left"},
	ActionNextBar:           {"tab", "f4"},
	ActionPrevBar:           {"f3"},
	ActionNextSection:       {"s"},
	ActionRowUp:             {"up"},
	ActionRowDown:           {"down"},
	ActionDelete:            {"delete"},
	ActionDoubleSubdivision: {"pgup"},
	ActionReduceSubdivision: {"pgdown"},
	ActionToggleQuestion:    {"?"},
	ActionToggleSpecial:     {"!"},
	ActionCommand:           {":"},
	ActionQuit:              {"ctrl+c"},
}

// Config holds the application configuration.
type Config struct {
	Theme    string              `yaml:"theme"`
	Defaults Defaults            `yaml:"defaults"`
	Export   ExportConfig        `yaml:"export"`
	Keys     map[string][]string `yaml:"keys"`
}

// Defaults seed every new document.
type Defaults struct {
	Title       string `yaml:"title"`
	Wrap        int    `yaml:"wrap"`
	Beats       int    `yaml:"beats"`
	Subdivision int    `yaml:"subdivision"`
}

// ExportConfig controls the print and midi exporters.
type ExportConfig struct {
	Dir    string `yaml:"dir"`    // output directory, empty = next to the song
	Tempo  int    `yaml:"tempo"`  // MIDI beats per minute
	Octave int    `yaml:"octave"` // MIDI octave of chord roots
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	d := song.DefaultDefaults()
	return Config{
		Theme: styles.DefaultTheme,
		Defaults: Defaults{
			Title:       d.Title,
			Wrap:        d.Wrap,
			Beats:       d.Beats,
			Subdivision: d.Subdivision,
		},
		Export: ExportConfig{
			Tempo:  120,
			Octave: 4,
		},
		Keys: mergeKeys(defaultKeys, nil),
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Keys = nil

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// User bindings replace the defaults of the actions they name.
	cfg.Keys = mergeKeys(defaultKeys, cfg.Keys)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Defaults.Title == "" {
		c.Defaults.Title = defaults.Defaults.Title
	}
	if c.Defaults.Wrap == 0 {
		c.Defaults.Wrap = defaults.Defaults.Wrap
	}
	if c.Defaults.Beats == 0 {
		c.Defaults.Beats = defaults.Defaults.Beats
	}
	if c.Defaults.Subdivision == 0 {
		c.Defaults.Subdivision = defaults.Defaults.Subdivision
	}
	if c.Export.Tempo == 0 {
		c.Export.Tempo = defaults.Export.Tempo
	}
}

func mergeKeys(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))
	for action, keys := range defaults {
		result[action] = keys
	}
	for action, keys := range user {
		result[action] = keys
	}
	return result
}

// SongDefaults converts the configured defaults for the document model.
func (c *Config) SongDefaults() song.Defaults {
	return song.Defaults{
		Title:       c.Defaults.Title,
		Wrap:        c.Defaults.Wrap,
		Beats:       c.Defaults.Beats,
		Subdivision: c.Defaults.Subdivision,
	}
}

// ExportPath returns where an export named name for the song at songPath
// is written. The export dir wins; otherwise the song's directory is used.
func (c *Config) ExportPath(songPath, name string) string {
	if c.Export.Dir != "" {
		return filepath.Join(c.Export.Dir, name)
	}
	if songPath != "" {
		return filepath.Join(filepath.Dir(songPath), name)
	}
	return name
}

func isValidAction(action string) bool {
	_, ok := defaultKeys[action]
	return ok
}
