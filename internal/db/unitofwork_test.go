package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/mindmate/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*db.SQLiteUnitOfWork, *sql.DB) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func insertKey(ctx context.Context, tx db.DBTX, key string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO local_store (key, value, updated_at) VALUES (?, 'v', 'now')`, key)
	return err
}

func keyExists(t *testing.T, database *sql.DB, key string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM local_store WHERE key = ?`, key).Scan(&n))
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, database := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertKey(ctx, tx, "k1")
	})
	require.NoError(t, err)
	assert.True(t, keyExists(t, database, "k1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, database := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertKey(ctx, tx, "k2"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, keyExists(t, database, "k2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, database := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertKey(ctx, tx, "k3")
			panic("boom")
		})
	})
	assert.False(t, keyExists(t, database, "k3"))
}
