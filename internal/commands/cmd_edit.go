package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/store/songfile"
	"github.com/hay-kot/leadsheet/internal/tui"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates the editor command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the chart editor",
		UsageText: "leadsheet edit [file]",
		Description: `Opens the interactive chart editor.

When file exists it is loaded; otherwise the editor starts from the
configured defaults and ':save' writes to file.

Running 'leadsheet [file]' with no command does the same.`,
		Action: cmd.Run,
	})

	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 1 {
		return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
	}
	path := c.Args().First()

	s, err := cmd.open(path)
	if err != nil {
		return err
	}

	m := tui.New(tui.Options{
		Config: cmd.flags.config(),
		Song:   s,
		Path:   path,
	})

	finalModel, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if fm, ok := finalModel.(tui.Model); ok && fm.Dirty() {
		log.Warn().Str("path", fm.Path()).Msg("editor closed with unsaved changes")
	}
	return nil
}

// open loads path, or returns a fresh document when there is nothing to
// load yet.
func (cmd *EditCmd) open(path string) (*song.Song, error) {
	if path == "" {
		return nil, nil
	}

	s, err := songfile.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", path).Msg("starting new song")
		return song.NewWithDefaults(cmd.flags.config().SongDefaults()), nil
	case err != nil:
		return nil, err
	}

	log.Info().Str("path", path).Int("chords", s.ChordCount()).Msg("loaded song")
	return s, nil
}
