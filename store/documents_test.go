package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-shinde14/demo-editor/draft"
)

func sampleDocument() draft.Document {
	return draft.NewDocument(
		draft.NewBlock("h", draft.BlockHeaderOne, "Title", draft.StyleSet{}),
		draft.NewBlock("p", draft.BlockUnstyled, "red text", draft.NewStyleSet("RED")),
	)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	doc := sampleDocument()

	require.NoError(t, s.Save(ctx, DefaultKey, doc))

	got, err := s.Load(ctx, DefaultKey)
	require.NoError(t, err)
	assert.True(t, got.Equal(doc), "loaded document differs from saved one")
}

func TestStore_LoadMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LoadInvalidPayload(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, DefaultKey, map[string]any{"blocks": []any{}}))

	_, err := s.Load(ctx, DefaultKey)
	assert.ErrorIs(t, err, draft.ErrInvalidRaw)
}

func TestSlot_SavesUnderItsKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	slot := s.Slot("notes")

	require.NoError(t, slot.Save(ctx, sampleDocument()))

	has, err := s.Has(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, has)

	got, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Title\nred text", got.PlainText())
}
