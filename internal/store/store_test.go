package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.db")
	require.NoError(t, Init(path))

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func collect(t *testing.T, seq func(func(Entry, error) bool)) []Entry {
	t.Helper()
	var out []Entry
	for e, err := range seq {
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestInitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o600))

	err := Init(path)
	require.ErrorIs(t, err, terrors.ErrStoreExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestInitLeavesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.db")
	require.NoError(t, Init(path))

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Insert(context.Background(), Entry{Title: "mail"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vault.db", entries[0].Name())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.ErrorIs(t, err, terrors.ErrIO)
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.db")
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = byte(i*7 + 3)
	}
	require.NoError(t, os.WriteFile(path, garbage, 0o600))

	_, err := Open(path)
	require.ErrorIs(t, err, terrors.ErrCorruptDatabase)
}

func TestInsertAndGet(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, Entry{
		Title:    "mail",
		User:     "alice",
		URL:      "https://mail.example.com",
		Password: "hunter2",
		Notes:    "work account",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "mail", got.Title)
	assert.Equal(t, "alice", got.User)
	assert.Equal(t, "https://mail.example.com", got.URL)
	assert.Equal(t, "hunter2", got.Password)
	assert.Equal(t, "work account", got.Notes)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetMissing(t *testing.T) {
	s := newStore(t)

	_, err := s.Get(context.Background(), 42)
	require.ErrorIs(t, err, terrors.ErrEntryNotFound)
}

func TestUpdate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, Entry{Title: "mail", Password: "old"})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, id, Entry{Title: "mail", User: "bob", Password: "new"}))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.User)
	assert.Equal(t, "new", got.Password)

	err = s.Update(ctx, id+1, Entry{Title: "nope"})
	require.ErrorIs(t, err, terrors.ErrEntryNotFound)
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, Entry{Title: "mail"})
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.Get(ctx, id)
	require.ErrorIs(t, err, terrors.ErrEntryNotFound)
}

func TestAllOrderedByID(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, title := range []string{"c", "a", "b"} {
		_, err := s.Insert(ctx, Entry{Title: title})
		require.NoError(t, err)
	}

	got := collect(t, s.All(ctx))
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Title)
	assert.Equal(t, "a", got[1].Title)
	assert.Equal(t, "b", got[2].Title)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAllEmpty(t *testing.T) {
	s := newStore(t)
	assert.Empty(t, collect(t, s.All(context.Background())))
}

func TestAllStopsEarly(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.Insert(ctx, Entry{Title: title})
		require.NoError(t, err)
	}

	seen := 0
	for _, err := range s.All(ctx) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)

	// The connection must be released after an early break.
	_, err := s.Insert(ctx, Entry{Title: "d"})
	require.NoError(t, err)
}

func TestFind(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, title := range []string{"GitHub", "gitlab", "mail", "100%_done"} {
		_, err := s.Insert(ctx, Entry{Title: title})
		require.NoError(t, err)
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"git", []string{"GitHub", "gitlab"}},
		{"HUB", []string{"GitHub"}},
		{"mail", []string{"mail"}},
		{"%", []string{"100%_done"}},
		{"_", []string{"100%_done"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var titles []string
			for _, e := range collect(t, s.Find(ctx, tt.pattern)) {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestCanceledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var gotErr error
	for _, err := range s.All(ctx) {
		gotErr = err
	}
	require.Error(t, gotErr)
}
