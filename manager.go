package liteorm

import (
	"context"
	"fmt"
)

// Table is the type-erased view of a Manager, for tooling that handles
// many models at once.
type Table interface {
	TableName() string
	Columns() []string
	CreateTable(ctx context.Context) error
	DropTable(ctx context.Context) error
	FetchValues(ctx context.Context, conds ...Condition) ([][]any, error)
}

// Manager builds and runs the queries of one model.
// Consumers obtain it via Schema.Objects().
type Manager[T any] struct {
	schema  *Schema[T]
	exec    Executor
	createQ *Query
}

func newManager[T any](s *Schema[T], exec Executor) *Manager[T] {
	return &Manager[T]{
		schema:  s,
		exec:    exec,
		createQ: s.CreateQuery(),
	}
}

// Schema returns the model schema.
func (m *Manager[T]) Schema() *Schema[T] { return m.schema }

// Executor returns the executor the manager runs against.
func (m *Manager[T]) Executor() Executor { return m.exec }

// TableName returns the model table.
func (m *Manager[T]) TableName() string { return m.schema.TableName() }

// Columns returns the model columns in declaration order.
func (m *Manager[T]) Columns() []string { return m.schema.Columns() }

// CreateTable runs the CREATE TABLE IF NOT EXISTS statement of the model.
func (m *Manager[T]) CreateTable(ctx context.Context) error {
	return m.exec.Execute(ctx, m.createQ.String())
}

// DropTable runs DROP TABLE IF EXISTS for the model.
func (m *Manager[T]) DropTable(ctx context.Context) error {
	return m.exec.Execute(ctx, m.schema.DropQuery().String())
}

// Filter starts a query restricted by conds.
func (m *Manager[T]) Filter(conds ...Condition) *QB[T] {
	return (&QB[T]{manager: m}).Filter(conds...)
}

// FilterBy starts a query where every column in fields equals its value.
func (m *Manager[T]) FilterBy(fields Fields) *QB[T] {
	return m.Filter(fields.And()...)
}

// Query returns the statement Fetch runs without filters.
func (m *Manager[T]) Query() *Query {
	return m.schema.SelectQuery()
}

// Fetch returns every row of the table as a model instance.
func (m *Manager[T]) Fetch(ctx context.Context) ([]*T, error) {
	return (&QB[T]{manager: m}).Fetch(ctx)
}

// FetchValues fetches the rows matching conds and returns their declared
// field values in column order.
func (m *Manager[T]) FetchValues(ctx context.Context, conds ...Condition) ([][]any, error) {
	objs, err := m.Filter(conds...).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([][]any, len(objs))
	for i, o := range objs {
		out[i] = m.schema.Values(o)
	}
	return out, nil
}

func (m *Manager[T]) fetch(ctx context.Context, q *Query) ([]*T, error) {
	if err := validateConditions(m.schema.table, m.schema.columns, q.where.conds); err != nil {
		return nil, err
	}

	plan := q.Plan()
	rows, err := m.exec.Query(ctx, plan.Query, plan.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*T
	for rows.Next() {
		obj := new(T)
		dest, assign := m.schema.scanDest(obj)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", m.schema.table, err)
		}
		assign()
		results = append(results, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", m.schema.table, err)
	}
	return results, nil
}
