package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mindmate/internal/db"
)

// SQLiteLocalStoreRepo implements LocalStoreRepo using a SQLite database.
type SQLiteLocalStoreRepo struct {
	db db.DBTX
}

// NewSQLiteLocalStoreRepo creates a new SQLiteLocalStoreRepo.
func NewSQLiteLocalStoreRepo(conn db.DBTX) *SQLiteLocalStoreRepo {
	return &SQLiteLocalStoreRepo{db: conn}
}

func (r *SQLiteLocalStoreRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("local store key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading local store key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteLocalStoreRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO local_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing local store key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteLocalStoreRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting local store key %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("local store key %q: %w", key, ErrNotFound)
	}
	return nil
}

func (r *SQLiteLocalStoreRepo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM local_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing local store: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning local store entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every key and reports how many were removed.
func (r *SQLiteLocalStoreRepo) Clear(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM local_store`)
	if err != nil {
		return 0, fmt.Errorf("clearing local store: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return int(n), nil
}
