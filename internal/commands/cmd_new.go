package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/leadsheet/internal/core/song"
	"github.com/hay-kot/leadsheet/internal/core/styles"
	"github.com/hay-kot/leadsheet/internal/store/songfile"
)

type NewCmd struct {
	flags *Flags

	title string
	yes   bool
	force bool
}

// NewNewCmd creates the new command.
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application.
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create an empty song file",
		UsageText: "leadsheet new [options] <file>",
		Description: `Creates a song with one empty section, asking for the title and the
shape of its bars. The extension picks the format (.yaml, .yml or .json).

Use --yes to skip the questions and take the configured defaults.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "song title",
				Destination: &cmd.title,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "use the configured defaults without asking",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected one file to create, got %d", c.Args().Len())
	}
	path := c.Args().First()

	if _, err := songfile.FormatFor(path); err != nil {
		return err
	}

	if songfile.Exists(path) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
		overwrite := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists", path)).
			Description("Overwrite it with an empty song?").
			Value(&overwrite).
			Run()
		if err != nil {
			return cmd.aborted(err)
		}
		if !overwrite {
			return nil
		}
	}

	d := cmd.flags.config().SongDefaults()
	if cmd.title != "" {
		d.Title = cmd.title
	}

	if !cmd.yes {
		if err := askDefaults(&d); err != nil {
			return cmd.aborted(err)
		}
	}

	s := song.NewWithDefaults(d)
	if err := s.Validate(); err != nil {
		return err
	}
	if err := songfile.Save(path, s); err != nil {
		return err
	}

	log.Info().Str("path", path).Str("title", s.Title).Msg("created song")
	lipgloss.Fprintln(c.Root().Writer, styles.CommandHeaderStyle.Render("created")+" "+styles.CommandStyle.Render(path))
	return nil
}

func (cmd *NewCmd) aborted(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// askDefaults edits d through an interactive form.
func askDefaults(d *song.Defaults) error {
	wrap := strconv.Itoa(d.Wrap)
	beats := strconv.Itoa(d.Beats)
	sub := strconv.Itoa(d.Subdivision)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&d.Title),
			huh.NewInput().
				Title("Bars per row").
				Value(&wrap).
				Validate(positive),
			huh.NewInput().
				Title("Beats per bar").
				Value(&beats).
				Validate(positive),
			huh.NewSelect[string]().
				Title("Slots per bar").
				Options(huh.NewOptions("1", "2", "4", "8", "16")...).
				Value(&sub),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	d.Wrap, _ = strconv.Atoi(wrap)
	d.Beats, _ = strconv.Atoi(beats)
	d.Subdivision, _ = strconv.Atoi(sub)
	return nil
}

func positive(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("must be a whole number of at least 1")
	}
	return nil
}
