package editor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// Saver persists a document snapshot.
type Saver interface {
	Save(ctx context.Context, doc draft.Document) error
}

// SaverFunc adapts a function to a Saver.
type SaverFunc func(ctx context.Context, doc draft.Document) error

func (f SaverFunc) Save(ctx context.Context, doc draft.Document) error { return f(ctx, doc) }

// SavedMsg reports the outcome of a save started by the Save binding.
type SavedMsg struct {
	Version uint64
	Err     error

	doc draft.Document
}

const saveTimeout = 5 * time.Second

func saveCmd(sv Saver, doc draft.Document, version uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return SavedMsg{Version: version, Err: sv.Save(ctx, doc), doc: doc}
	}
}
