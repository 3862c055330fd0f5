package liteorm

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Connector owns the single database handle of an application.
// It is built once by the entry point and passed to every Manager that
// should share it; there is no package-level instance.
type Connector struct {
	db     *sql.DB
	driver string
	log    *slog.Logger
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithLogger sets the logger used for statement tracing.
func WithLogger(l *slog.Logger) ConnectorOption {
	return func(c *Connector) {
		if l != nil {
			c.log = l
		}
	}
}

// Open opens dsn with a registered database/sql driver and verifies the
// connection. The pool is capped to one connection so an in-memory
// database survives between calls.
func Open(ctx context.Context, driver, dsn string, opts ...ConnectorOption) (*Connector, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	c := NewConnector(db, opts...)
	c.driver = driver
	c.log.Debug("database opened", "driver", driver, "dsn", dsn)
	return c, nil
}

// NewConnector wraps an already opened handle.
func NewConnector(db *sql.DB, opts ...ConnectorOption) *Connector {
	c := &Connector{
		db:  db,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DB returns the underlying handle. Every call returns the same value.
func (c *Connector) DB() *sql.DB { return c.db }

// Driver returns the driver name given to Open, or "" for wrapped handles.
func (c *Connector) Driver() string { return c.driver }

// Close closes the database handle.
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	c.log.Debug("closing database connection")
	err := c.db.Close()
	c.db = nil
	return err
}

// Execute runs a statement that returns no rows. Outside a transaction
// the driver commits it before returning.
func (c *Connector) Execute(ctx context.Context, query string, args ...any) error {
	if c.db == nil {
		return ErrNotOpened
	}
	c.log.Debug("execute", "sql", query, "args", len(args))
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Query runs a statement and returns its row iterator. The caller closes it.
func (c *Connector) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if c.db == nil {
		return nil, ErrNotOpened
	}
	c.log.Debug("query", "sql", query, "args", len(args))
	//nolint:rowserrcheck // rows.Err() is checked by the caller after iteration
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// Fetch runs a statement and returns every row as a slice of raw values in
// column order. []byte values are returned as strings.
func (c *Connector) Fetch(ctx context.Context, query string, args ...any) ([][]any, error) {
	_, rows, err := c.FetchColumns(ctx, query, args...)
	return rows, err
}

// FetchColumns is Fetch that also reports the result column names.
func (c *Connector) FetchColumns(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	if c.db == nil {
		return nil, nil, ErrNotOpened
	}
	c.log.Debug("fetch", "sql", query, "args", len(args))
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		results = append(results, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return cols, results, nil
}
