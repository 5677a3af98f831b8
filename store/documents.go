package store

import (
	"context"
	"fmt"

	"github.com/deepak-shinde14/demo-editor/draft"
)

// Save stores doc in raw form under key.
func (s *Store) Save(ctx context.Context, key string, doc draft.Document) error {
	data, err := draft.Marshal(doc)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	if err := s.setBytes(ctx, key, data); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	s.log.Info().Str("key", key).Int("blocks", doc.BlockCount()).Int("bytes", len(data)).Msg("document saved")
	return nil
}

// Load returns the document stored under key. A missing key wraps
// ErrNotFound; a stored payload that is not a valid raw document wraps
// draft.ErrInvalidRaw.
func (s *Store) Load(ctx context.Context, key string) (draft.Document, error) {
	e, err := s.GetRaw(ctx, key)
	if err != nil {
		return draft.Document{}, err
	}
	doc, err := draft.Unmarshal(e.Value)
	if err != nil {
		return draft.Document{}, fmt.Errorf("load %q: %w", key, err)
	}
	return doc, nil
}

// Slot binds a Store to one key. It satisfies editor.Saver.
type Slot struct {
	store *Store
	key   string
}

// Slot returns a saver that writes to key.
func (s *Store) Slot(key string) Slot {
	return Slot{store: s, key: key}
}

func (sl Slot) Key() string { return sl.key }

func (sl Slot) Save(ctx context.Context, doc draft.Document) error {
	return sl.store.Save(ctx, sl.key, doc)
}

func (sl Slot) Load(ctx context.Context) (draft.Document, error) {
	return sl.store.Load(ctx, sl.key)
}
