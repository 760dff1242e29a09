package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/mindmate/internal/db"
)

// FailOnNthExecUoW runs transactions whose Nth write returns Err, so tests
// can check that a failed sign-out or save leaves the store untouched.
// Writes are numbered from 1; reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &writeCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type writeCounter struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (w *writeCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if w.writes.Add(1) == w.failOn {
		return nil, w.err
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}
