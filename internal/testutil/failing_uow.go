package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/filingdesk/internal/db"
)

// FailOnNthExec wraps a DBTX and fails the Nth ExecContext call with Err.
// Calls are counted from 1. Reads pass through uncounted. A zero FailOn
// never fails.
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Err    error

	count atomic.Int32
}

// NewFailOnNthExec wraps inner so its nth exec returns err.
func NewFailOnNthExec(inner db.DBTX, n int32, err error) *FailOnNthExec {
	return &FailOnNthExec{DBTX: inner, FailOn: n, Err: err}
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs reports how many ExecContext calls were attempted.
func (f *FailOnNthExec) Execs() int {
	return int(f.count.Load())
}

// FailOnNthExecUoW is a test UoW that injects an error on the Nth ExecContext
// call within a transaction, for rollback tests of multi-write operations.
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

	wrapped := NewFailOnNthExec(tx, u.FailOn, u.Err)
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}
