package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/mindmate/internal/db"
	"github.com/alexanderramin/mindmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SetGet(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	v, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestLocalStore_SetOverwrites(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Set(ctx, "theme", "light"))

	v, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_GetMissing(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Delete(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "k"), ErrNotFound)
}

func TestLocalStore_ListOrderedByKey(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, k := range []string{"b", "c", "a"} {
		require.NoError(t, repo.Set(ctx, k, "v-"+k))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "v-a", entries[0].Value)
	assert.NotEmpty(t, entries[0].UpdatedAt)
	assert.Equal(t, "c", entries[2].Key)
}

func TestLocalStore_Clear(t *testing.T) {
	repo := NewSQLiteLocalStoreRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	n, err := repo.Clear(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Set(ctx, "profile", "{}"))
	require.NoError(t, repo.Set(ctx, "token", "abc"))

	n, err = repo.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// A file-backed database shares state across pooled connections, unlike
// :memory:, so concurrent writers really contend.
func TestLocalStore_ConcurrentWriters(t *testing.T) {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	repo := NewSQLiteLocalStoreRepo(database)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 10 {
				if err := repo.Set(ctx, fmt.Sprintf("w%d-%d", w, i), "v"); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent write failed: %v", err)
	}
	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 40)
}
