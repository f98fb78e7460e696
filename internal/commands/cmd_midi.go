package commands

import (
	"context"
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/leadsheet/internal/core/styles"
	"github.com/hay-kot/leadsheet/internal/export"
	"github.com/hay-kot/leadsheet/internal/store/songfile"
)

type MidiCmd struct {
	flags *Flags

	glob   string
	output string
	tempo  int
	octave int
}

// NewMidiCmd creates the midi command.
func NewMidiCmd(flags *Flags) *MidiCmd {
	return &MidiCmd{flags: flags}
}

// Register adds the midi command to the application.
func (cmd *MidiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "midi",
		Usage:     "Export songs as Standard MIDI Files",
		UsageText: "leadsheet midi [options] [file...]",
		Description: `Writes the chords of each song as block chords on one track.

A chord sounds until the next one; repeated sections play twice. Files are
written next to each song as <name>.mid. With a single song, --output picks
the file; with several it names a directory.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "glob",
				Aliases:     []string{"g"},
				Usage:       "select songs matching a doublestar pattern",
				Destination: &cmd.glob,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file, or directory for several songs",
				Destination: &cmd.output,
			},
			&cli.IntFlag{
				Name:        "tempo",
				Usage:       "beats per minute (defaults to export.tempo)",
				Destination: &cmd.tempo,
			},
			&cli.IntFlag{
				Name:        "octave",
				Usage:       "octave of chord roots (defaults to export.octave)",
				Value:       -1,
				Destination: &cmd.octave,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MidiCmd) run(ctx context.Context, c *cli.Command) error {
	files, err := resolveInputs(c.Args().Slice(), cmd.glob)
	if err != nil {
		return err
	}

	opts, err := cmd.options()
	if err != nil {
		return err
	}

	for _, file := range files {
		s, err := songfile.Load(file)
		if err != nil {
			return err
		}

		dest := outputPath(file, cmd.output, ".mid")
		if len(files) == 1 && cmd.output != "" {
			dest = cmd.output
		}

		if err := export.SaveMIDI(dest, s, opts); err != nil {
			return fmt.Errorf("midi %s: %w", file, err)
		}

		log.Info().Str("song", file).Str("output", dest).Int("tempo", opts.Tempo).Msg("exported midi")
		lipgloss.Fprintln(c.Root().Writer, styles.CommandHeaderStyle.Render("wrote")+" "+styles.CommandStyle.Render(dest))
	}

	return nil
}

func (cmd *MidiCmd) options() (export.MIDIOptions, error) {
	cfg := cmd.flags.config()
	opts := export.MIDIOptions{Tempo: cfg.Export.Tempo, Octave: cfg.Export.Octave}

	if cmd.tempo != 0 {
		if cmd.tempo < 20 || cmd.tempo > 400 {
			return opts, fmt.Errorf("--tempo must be between 20 and 400, got %d", cmd.tempo)
		}
		opts.Tempo = cmd.tempo
	}
	if cmd.octave >= 0 {
		if cmd.octave > 8 {
			return opts, fmt.Errorf("--octave must be between 0 and 8, got %d", cmd.octave)
		}
		opts.Octave = cmd.octave
	}
	return opts, nil
}
