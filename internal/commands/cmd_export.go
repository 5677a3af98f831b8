package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/deepak-shinde14/demo-editor/draft"
)

type ExportCmd struct {
	flags *Flags

	// flags
	key     string
	output  string
	compact bool
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Write a stored document as raw JSON",
		UsageText: "demo-editor export [--key KEY] [--output FILE] [--compact]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "key",
				Aliases:     []string{"k"},
				Usage:       "storage key of the document",
				Destination: &cmd.key,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "compact",
				Usage:       "emit compact JSON without indentation",
				Destination: &cmd.compact,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	storageKey := cmd.flags.storageKey(cmd.key)
	doc, err := cmd.flags.Store.Load(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("load %q: %w", storageKey, err)
	}

	var data []byte
	if cmd.compact {
		data, err = draft.Marshal(doc)
	} else {
		data, err = draft.MarshalIndent(doc)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if cmd.output == "" {
		_, err = c.Root().Writer.Write(data)
		return err
	}
	if err := os.WriteFile(cmd.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cmd.output, err)
	}
	return nil
}
