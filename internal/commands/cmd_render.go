package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"github.com/deepak-shinde14/demo-editor/editor"
)

type RenderCmd struct {
	flags *Flags

	// flags
	key         string
	lineNumbers bool
	plain       bool
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Print a stored document with terminal styling",
		UsageText: "demo-editor render [--key KEY] [--line-numbers] [--plain]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "key",
				Aliases:     []string{"k"},
				Usage:       "storage key of the document",
				Destination: &cmd.key,
			},
			&cli.BoolFlag{
				Name:        "line-numbers",
				Usage:       "prefix each block with its number",
				Destination: &cmd.lineNumbers,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "disable colors and text attributes",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	storageKey := cmd.flags.storageKey(cmd.key)
	doc, err := cmd.flags.Store.Load(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("load %q: %w", storageKey, err)
	}

	if cmd.plain {
		prev := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.Ascii)
		defer lipgloss.SetColorProfile(prev)
	}

	_, err = fmt.Fprintln(c.Root().Writer, editor.RenderDocument(doc, editor.DefaultStyle(), cmd.lineNumbers))
	return err
}
