// Package postgres provides PostgreSQL implementations of the news repositories
// on database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories need. It is satisfied by *sql.DB
// and by *circuitbreaker.DBCircuitBreaker.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
