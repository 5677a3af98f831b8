package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

type KeysCmd struct {
	flags *Flags
}

// NewKeysCmd creates a new keys command
func NewKeysCmd(flags *Flags) *KeysCmd {
	return &KeysCmd{flags: flags}
}

// Register adds the keys command to the application
func (cmd *KeysCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "keys",
		Usage:     "List stored documents",
		UsageText: "demo-editor keys",
		Action:    cmd.run,
	})
	return app
}

func (cmd *KeysCmd) run(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.Store.List(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if len(entries) == 0 {
		_, err := fmt.Fprintln(c.Root().ErrWriter, "No documents stored")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tSIZE\tUPDATED")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, humanize.Bytes(uint64(e.Size())), humanize.Time(e.UpdatedAt))
	}
	return w.Flush()
}
