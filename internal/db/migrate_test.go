package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMemDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesLocalStore(t *testing.T) {
	db := openMemDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='local_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "local_store", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_local_store_updated'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_KeepsExistingRows(t *testing.T) {
	db := openMemDB(t)
	_, err := db.Exec(`INSERT INTO local_store (key, value, updated_at) VALUES ('profile', '{}', '2025-06-15T10:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM local_store`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mindmate.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.FileExists(t, path)
}

func TestOpenDB_ReopenSeesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindmate.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO local_store (key, value, updated_at) VALUES ('k', 'v', 'now')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	var v string
	require.NoError(t, second.QueryRow(`SELECT value FROM local_store WHERE key = 'k'`).Scan(&v))
	assert.Equal(t, "v", v)
}

func TestOpenDB_PragmasOnEveryConnection(t *testing.T) {
	database, err := OpenDB(filepath.Join(t.TempDir(), "pool.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	ctx := context.Background()

	// Hold both so the pool has to open a second connection.
	first, err := database.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := database.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for name, conn := range map[string]*sql.Conn{"first": first, "second": second} {
		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout))
		assert.Equal(t, 2000, timeout, name)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode))
		assert.Equal(t, "wal", mode, name)
	}
}
