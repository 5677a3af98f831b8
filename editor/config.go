package editor

import (
	"github.com/rs/zerolog"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// Config configures the editor Model.
type Config struct {
	// Initial content. A zero Document starts with one empty block.
	Content draft.Document

	// Rendering options.
	ShowLineNums bool
	ShowStatus   bool
	Placeholder  string
	Style        Style

	KeyMap KeyMap

	// Forwarded to draft.Options.
	HistoryLimit int

	// ReadOnly disables every mutation; movement still works.
	ReadOnly bool

	// OnChange is called after each update that changed the document, the
	// selection or the inline style override.
	OnChange func(ChangeEvent)

	// Saver persists the document when the Save binding is pressed. Saving is
	// disabled when nil.
	Saver Saver

	// Logger receives debug records about triggers and saves. Nil disables
	// logging.
	Logger *zerolog.Logger
}
