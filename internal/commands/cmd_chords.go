package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/styles"
	"github.com/hay-kot/leadsheet/pkg/iojson"
)

type ChordsCmd struct {
	flags *Flags

	json bool

	// stdin overrides the input reader in tests.
	stdin *iojson.TokenReader
}

// ChordResult is the outcome of checking one chord symbol.
type ChordResult struct {
	Input   string       `json:"input"`
	Valid   bool         `json:"valid"`
	Symbol  string       `json:"symbol,omitempty"`
	Chord   *chord.Chord `json:"chord,omitempty"`
	Pitches []uint8      `json:"pitches,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// NewChordsCmd creates the chords command.
func NewChordsCmd(flags *Flags) *ChordsCmd {
	return &ChordsCmd{flags: flags}
}

// Register adds the chords command to the application.
func (cmd *ChordsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "chords",
		Usage:     "Check chord symbols",
		UsageText: "leadsheet chords [options] [symbol...]",
		Description: `Parses each symbol the way the editor does and prints its canonical
spelling. Symbols are read from stdin when none are given.

Exits with status 1 if any symbol is invalid.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print one JSON object per symbol",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ChordsCmd) run(ctx context.Context, c *cli.Command) error {
	reader := iojson.TokenReader{}
	if cmd.stdin != nil {
		reader = *cmd.stdin
	}

	tokens, err := reader.Read(c.Args().Slice())
	if err != nil {
		return err
	}

	octave := cmd.flags.config().Export.Octave
	results := make([]ChordResult, 0, len(tokens))
	invalid := 0
	for _, tok := range tokens {
		r := checkChord(tok, octave)
		if !r.Valid {
			invalid++
		}
		results = append(results, r)
	}

	out := c.Root().Writer
	if cmd.json {
		err = iojson.WriteLines(out, results)
	} else {
		err = printChordResults(out, results)
	}
	if err != nil {
		return err
	}

	if invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func checkChord(input string, octave int) ChordResult {
	c, err := chord.Parse(input)
	if err != nil {
		return ChordResult{Input: input, Error: err.Error()}
	}
	return ChordResult{
		Input:   input,
		Valid:   true,
		Symbol:  c.String(),
		Chord:   &c,
		Pitches: c.Pitches(octave),
	}
}

func printChordResults(w io.Writer, results []ChordResult) error {
	width := 0
	for _, r := range results {
		width = max(width, len(r.Input))
	}

	for _, r := range results {
		pad := strings.Repeat(" ", width-len(r.Input))
		var line string
		if r.Valid {
			line = fmt.Sprintf("%s%s  %s", r.Input, pad, styles.CommandStyle.Render(r.Symbol))
		} else {
			line = fmt.Sprintf("%s%s  %s", r.Input, pad, styles.ErrorStyle.Render(r.Error))
		}
		if _, err := lipgloss.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
