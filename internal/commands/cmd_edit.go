package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/deepak-shinde14/demo-editor/draft"
	"github.com/deepak-shinde14/demo-editor/editor"
	"github.com/deepak-shinde14/demo-editor/internal/logging"
	"github.com/deepak-shinde14/demo-editor/store"
)

type EditCmd struct {
	flags *Flags

	// flags
	key         string
	readOnly    bool
	lineNumbers bool
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Flags returns the edit flags for registration on the root command, so the
// editor is also the default action.
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "storage key of the document (defaults to the configured key)",
			Sources:     cli.EnvVars("DEMO_EDITOR_KEY"),
			Destination: &cmd.key,
		},
		&cli.BoolFlag{
			Name:        "read-only",
			Usage:       "open the document without allowing edits",
			Destination: &cmd.readOnly,
		},
		&cli.BoolFlag{
			Name:        "line-numbers",
			Usage:       "show block numbers (also configurable as editor.line_numbers)",
			Destination: &cmd.lineNumbers,
		},
	}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the document in the terminal editor",
		UsageText: "demo-editor edit [--key KEY] [--read-only]",
		Description: `Opens the stored document for editing. Formatting is typed inline:

  "# "    at the start of an empty line makes it a heading
  "* "    bold
  "** "   red
  "*** "  underline

The first letter a-z typed on an empty line is capitalized.
Press ctrl+s to save and ctrl+c or esc to quit.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})
	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *EditCmd) run(ctx context.Context, _ *cli.Command) error {
	storageKey := cmd.flags.storageKey(cmd.key)
	slot := cmd.flags.Store.Slot(storageKey)

	doc, err := slot.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		doc = draft.NewDocument()
	case err != nil:
		return fmt.Errorf("load document: %w", err)
	}

	log := logging.Component("editor")
	ecfg := cmd.flags.Config.Editor
	ed := editor.New(editor.Config{
		Content:      doc,
		ShowLineNums: ecfg.LineNumbers || cmd.lineNumbers,
		ShowStatus:   ecfg.ShowStatus(),
		Placeholder:  ecfg.Placeholder,
		Style:        editor.DefaultStyle(),
		HistoryLimit: ecfg.HistoryLimit,
		ReadOnly:     cmd.readOnly,
		Saver:        slot,
		Logger:       &log,
	})

	log.Info().Str("key", storageKey).Int("blocks", doc.BlockCount()).Msg("editor started")

	p := tea.NewProgram(newEditView(ed), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if v, ok := final.(editView); ok && v.ed.Dirty() {
		log.Warn().Str("key", storageKey).Msg("quit with unsaved changes")
	}
	return nil
}

// editView wraps the editor component with a quit binding.
type editView struct {
	ed   editor.Model
	quit key.Binding
}

func newEditView(ed editor.Model) editView {
	return editView{
		ed:   ed,
		quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (v editView) Init() tea.Cmd { return v.ed.Init() }

func (v editView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, v.quit) {
		return v, tea.Quit
	}
	var cmd tea.Cmd
	v.ed, cmd = v.ed.Update(msg)
	return v, cmd
}

func (v editView) View() string { return v.ed.View() }
