package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	require.NoError(t, s.Set(ctx, "test-key", payload{Name: "hello", Value: 42}))

	var got payload
	require.NoError(t, s.Get(ctx, "test-key", &got))
	assert.Equal(t, "hello", got.Name)
	assert.Equal(t, 42, got.Value)
}

func TestStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var v string
	err := s.Get(ctx, "nonexistent", &v)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFoundError(err))
}

func TestStore_SetOverwriteKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "key", "first"))
	first, err := s.GetRaw(ctx, "key")
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "key", "second"))
	second, err := s.GetRaw(ctx, "key")
	require.NoError(t, err)

	assert.JSONEq(t, `"second"`, string(second.Value))
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestStore_DeleteAndHas(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	has, err := s.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.Set(ctx, "key", "value"))
	has, err = s.Has(ctx, "key")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.Delete(ctx, "key"))
	has, err = s.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)

	assert.NoError(t, s.Delete(ctx, "key"), "deleting a missing key is not an error")
}

func TestStore_ListSortedWithSizes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "b", "xy"))
	require.NoError(t, s.Set(ctx, "a", 1))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "b", entries[1].Key)
	assert.Equal(t, len(`"xy"`), entries[1].Size())
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(dir, DefaultOpenOptions())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "key", "persisted"))
	require.NoError(t, s.Close())

	s, err = Open(dir, DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	var got string
	require.NoError(t, s.Get(ctx, "key", &got))
	assert.Equal(t, "persisted", got)
}

func TestIsBusyError_PlainErrors(t *testing.T) {
	assert.False(t, IsBusyError(nil))
	assert.False(t, IsBusyError(ErrNotFound))
}
