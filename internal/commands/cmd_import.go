package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/deepak-shinde14/demo-editor/draft"
)

type ImportCmd struct {
	flags *Flags

	// flags
	key  string
	file string
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Store a raw JSON document",
		UsageText: "demo-editor import [--key KEY] [-f FILE]",
		Description: `Reads a raw document (blocks and entityMap) from a file or stdin,
validates it and stores it under the key, replacing any previous document.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "key",
				Aliases:     []string{"k"},
				Usage:       "storage key of the document",
				Destination: &cmd.key,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to JSON file (reads from stdin if not provided)",
				Destination: &cmd.file,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	data, err := cmd.read(c.Root().Reader)
	if err != nil {
		return err
	}

	doc, err := draft.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	storageKey := cmd.flags.storageKey(cmd.key)
	if err := cmd.flags.Store.Save(ctx, storageKey, doc); err != nil {
		return err
	}

	log.Info().Str("key", storageKey).Int("blocks", doc.BlockCount()).Msg("document imported")
	_, err = fmt.Fprintf(c.Root().Writer, "imported %d blocks into %q\n", doc.BlockCount(), storageKey)
	return err
}

func (cmd *ImportCmd) read(stdin io.Reader) ([]byte, error) {
	if cmd.file != "" {
		data, err := os.ReadFile(cmd.file)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return data, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
