package sql

import (
	"context"
	"database/sql"
)

// dbExecutor abstracts over *sql.DB and *sql.Tx so repository methods run
// unchanged inside and outside a transaction.
type dbExecutor interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
