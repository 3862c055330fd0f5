package liteorm

import "context"

// Executor represents the database connection abstraction.
// *Connector implements it; tests substitute their own.
type Executor interface {
	Execute(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Rows represents an iterator over query results.
// *sql.Rows satisfies it.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}
