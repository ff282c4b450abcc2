package snippet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(t.TempDir())
	clock := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestFileStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	saved, err := store.Save(ctx, Snippet{Title: " Hello ", Language: "python", Content: "print(1)"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Hello", saved.Title)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestFileStore_DuplicateTitle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Save(ctx, Snippet{Title: "demo", Language: "go", Content: "x"})
	require.NoError(t, err)

	_, err = store.Save(ctx, Snippet{Title: "DEMO", Language: "go", Content: "y"})
	require.ErrorIs(t, err, ErrExists)
}

func TestFileStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Save(ctx, Snippet{Title: "demo", Language: "go", Content: "x"})
	require.NoError(t, err)

	first.Content = "y"
	updated, err := store.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))

	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "y", got.Content)
}

func TestFileStore_UpdateMissing(t *testing.T) {
	_, err := newTestStore(t).Save(context.Background(), Snippet{ID: "abc", Title: "t", Content: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Save(ctx, Snippet{Title: title, Language: "go", Content: title})
		require.NoError(t, err)
	}

	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Title)
	assert.Equal(t, "a", list[2].Title)
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	s, err := store.Save(ctx, Snippet{Title: "gone", Language: "go", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, s.ID), ErrNotFound)
}

func TestFileStore_RejectsPathIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Get(ctx, "../etc/passwd")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, "a/b"), ErrNotFound)
}

func TestPrepare(t *testing.T) {
	_, err := Prepare(Snippet{Title: "  ", Content: "x"})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Prepare(Snippet{Title: "t", Content: " \n"})
	require.ErrorIs(t, err, ErrInvalid)

	s, err := Prepare(Snippet{Title: "t", Content: "package main\n\nfunc main() {}\n"})
	require.NoError(t, err)
	assert.Equal(t, "go", s.Language)
}
