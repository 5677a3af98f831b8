package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	demoeditor "github.com/deepak-shinde14/demo-editor"
	"github.com/deepak-shinde14/demo-editor/internal/commands"
	"github.com/deepak-shinde14/demo-editor/internal/config"
	"github.com/deepak-shinde14/demo-editor/internal/logging"
	"github.com/deepak-shinde14/demo-editor/store"
)

// Build information. Populated at build-time via -ldflags flag.
var (
	commit = ""
	date   = ""
)

func main() {
	ctx := context.Background()

	var logCloser func()
	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "demo-editor",
		Usage:     "Rich-text editing in the terminal with markdown-style shortcuts",
		UsageText: "demo-editor [global options] command [command options]",
		Description: `A small rich-text editor. Type "# ", "* ", "** " or "*** " at the start of
an empty line to get a heading, bold, red or underlined text.

Run 'demo-editor' with no arguments to open the editor.`,
		Version: demoeditor.BuildString(commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DEMO_EDITOR_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/demo-editor.log)",
				Sources:     cli.EnvVars("DEMO_EDITOR_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DEMO_EDITOR_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("DEMO_EDITOR_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the editor owns the terminal.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "demo-editor.log")
			}

			logger, closer, err := logging.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			storeLog := logging.Component("store")
			st, err := store.Open(cfg.DataDir, store.OpenOptions{
				FileName: cfg.Database.FileName,
				Logger:   &storeLog,
			})
			if err != nil {
				return ctx, fmt.Errorf("open store: %w", err)
			}
			flags.Store = st

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.Store != nil {
				if err := flags.Store.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close store")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	editCmd := commands.NewEditCmd(flags)

	app = editCmd.Register(app)
	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewImportCmd(flags).Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewKeysCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Register editor flags on root command
	app.Flags = append(app.Flags, editCmd.Flags()...)

	// Open the editor when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'demo-editor --help' for usage", c.Args().First())
		}
		return editCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
