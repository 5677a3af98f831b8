package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "config",
		Usage:     "Print the effective configuration as YAML",
		UsageText: "demo-editor config",
		Action:    cmd.run,
	})
	return app
}

func (cmd *ConfigCmd) run(_ context.Context, c *cli.Command) error {
	data, err := cmd.flags.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = c.Root().Writer.Write(data)
	return err
}
