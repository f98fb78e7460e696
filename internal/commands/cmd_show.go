package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/leadsheet/internal/export"
	"github.com/hay-kot/leadsheet/internal/store/songfile"
)

const defaultShowWidth = 80

type ShowCmd struct {
	flags *Flags

	width    int
	markdown bool
}

// NewShowCmd creates the show command.
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print a song's chart in the terminal",
		UsageText: "leadsheet show [options] <file>",
		Description: `Renders the chart as Markdown tables, one per section, styled for the
terminal with the configured theme.

Use --markdown to print the raw Markdown instead.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Aliases:     []string{"w"},
				Usage:       "wrap width (defaults to the terminal width)",
				Destination: &cmd.width,
			},
			&cli.BoolFlag{
				Name:        "markdown",
				Aliases:     []string{"m"},
				Usage:       "print raw Markdown",
				Destination: &cmd.markdown,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected one song file, got %d", c.Args().Len())
	}

	s, err := songfile.Load(c.Args().First())
	if err != nil {
		return err
	}

	var out string
	if cmd.markdown {
		out, err = export.Markdown(s)
	} else {
		out, err = export.Terminal(s, cmd.renderWidth())
	}
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	_, err = fmt.Fprint(c.Root().Writer, out)
	return err
}

func (cmd *ShowCmd) renderWidth() int {
	if cmd.width > 0 {
		return cmd.width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultShowWidth
}
