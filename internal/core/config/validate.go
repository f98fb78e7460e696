package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, validateTheme),
		c.validateDefaults(),
		c.validateExport(),
		c.validateKeys(),
	)
}

func validateTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func (c *Config) validateDefaults() error {
	var errs criterio.FieldErrorsBuilder
	if c.Defaults.Wrap < 1 {
		errs = errs.Append("defaults.wrap", errors.New("must be at least 1"))
	}
	if c.Defaults.Beats < 1 {
		errs = errs.Append("defaults.beats", errors.New("must be at least 1"))
	}
	if !song.ValidSubdivision(c.Defaults.Subdivision) {
		errs = errs.Append("defaults.subdivision", fmt.Errorf("must be a power of two between 1 and %d", song.MaxSubdivision))
	}
	return errs.ToError()
}

func (c *Config) validateExport() error {
	var errs criterio.FieldErrorsBuilder
	if c.Export.Tempo < 20 || c.Export.Tempo > 400 {
		errs = errs.Append("export.tempo", fmt.Errorf("must be between 20 and 400, got %d", c.Export.Tempo))
	}
	if c.Export.Octave < 0 || c.Export.Octave > 8 {
		errs = errs.Append("export.octave", fmt.Errorf("must be between 0 and 8, got %d", c.Export.Octave))
	}
	return errs.ToError()
}

// validateKeys checks that every bound action exists and that no key
// triggers two actions.
func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	owner := make(map[string]string)
	for _, action := range actions {
		field := "keys." + action
		if !isValidAction(action) {
			errs = errs.Append(field, fmt.Errorf("unknown action %q", action))
			continue
		}
		for _, k := range c.Keys[action] {
			if k == "" {
				errs = errs.Append(field, errors.New("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != action {
				errs = errs.Append(field, fmt.Errorf("key %q is already bound to %s", k, prev))
				continue
			}
			owner[k] = action
		}
	}

	return errs.ToError()
}
