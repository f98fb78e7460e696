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

type PrintCmd struct {
	flags *Flags

	glob   string
	outDir string
	stdout bool
}

// NewPrintCmd creates the print command.
func NewPrintCmd(flags *Flags) *PrintCmd {
	return &PrintCmd{flags: flags}
}

// Register adds the print command to the application.
func (cmd *PrintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "print",
		Usage:     "Export songs as printable HTML charts",
		UsageText: "leadsheet print [options] [file...]",
		Description: `Renders each song as an HTML page sized for printing.

Pages are written next to each song as <name>.html unless --out-dir is set.
Use --glob to select songs with a ** pattern, e.g. --glob 'charts/**/*.yaml'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "glob",
				Aliases:     []string{"g"},
				Usage:       "select songs matching a doublestar pattern",
				Destination: &cmd.glob,
			},
			&cli.StringFlag{
				Name:        "out-dir",
				Aliases:     []string{"o"},
				Usage:       "directory for the HTML files (defaults to each song's directory)",
				Destination: &cmd.outDir,
			},
			&cli.BoolFlag{
				Name:        "stdout",
				Usage:       "write the page of a single song to stdout",
				Destination: &cmd.stdout,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PrintCmd) run(ctx context.Context, c *cli.Command) error {
	files, err := resolveInputs(c.Args().Slice(), cmd.glob)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.stdout {
		if len(files) != 1 {
			return fmt.Errorf("--stdout needs exactly one song, got %d", len(files))
		}
		s, err := songfile.Load(files[0])
		if err != nil {
			return err
		}
		page, err := export.HTML(s)
		if err != nil {
			return fmt.Errorf("render %s: %w", files[0], err)
		}
		_, err = fmt.Fprint(out, page)
		return err
	}

	for _, file := range files {
		s, err := songfile.Load(file)
		if err != nil {
			return err
		}

		dest := outputPath(file, cmd.outDir, ".html")
		if err := export.SaveHTML(dest, s); err != nil {
			return fmt.Errorf("print %s: %w", file, err)
		}

		log.Info().Str("song", file).Str("output", dest).Msg("printed song")
		lipgloss.Fprintln(out, styles.CommandHeaderStyle.Render("printed")+" "+styles.CommandStyle.Render(dest))
	}

	return nil
}
