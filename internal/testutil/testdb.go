package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/mindmate/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory local store, closed at test end.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns a UnitOfWork over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
