package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

// insertClient writes a client row and one service row, the same two-step
// write the roster import performs.
func insertClient(ctx context.Context, tx db.DBTX, id, service string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO clients (id, name, created_at) VALUES (?, ?, ?)`,
		id, "Client "+id, "2025-04-01T00:00:00Z"); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO client_services (client_id, service) VALUES (?, ?)`, id, service)
	return err
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitsClientAndServices(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertClient(ctx, tx, "c1", "GST Filing")
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, database, "clients"))
	assert.Equal(t, 1, countRows(t, database, "client_services"))
}

func TestWithinTx_ConstraintFailureRollsBackEarlierWrites(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertClient(ctx, tx, "c1", "GST Filing"); err != nil {
			return err
		}
		// Not an allowed service, so the CHECK constraint rejects it.
		return insertClient(ctx, tx, "c2", "Payroll")
	})
	require.Error(t, err)

	assert.Zero(t, countRows(t, database, "clients"), "c1 must not survive c2's failure")
	assert.Zero(t, countRows(t, database, "client_services"))
}

func TestWithinTx_ReturnsCallbackError(t *testing.T) {
	database, uow := openUoW(t)
	sentinel := errors.New("validation failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertClient(ctx, tx, "c1", "TDS Filing"); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Zero(t, countRows(t, database, "clients"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertClient(ctx, tx, "c1", "ROC Compliance")
			panic("boom")
		})
	})

	assert.Zero(t, countRows(t, database, "clients"))
}
