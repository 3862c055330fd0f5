package liteorm_test

import (
	"context"
	"reflect"

	"github.com/tinywasm/liteorm"
)

// mockExecutor records every statement and serves canned rows.
type mockExecutor struct {
	queries []string
	args    [][]any
	rows    *mockRows
	err     error
}

func (m *mockExecutor) Execute(_ context.Context, query string, args ...any) error {
	m.queries = append(m.queries, query)
	m.args = append(m.args, args)
	return m.err
}

func (m *mockExecutor) Query(_ context.Context, query string, args ...any) (liteorm.Rows, error) {
	m.queries = append(m.queries, query)
	m.args = append(m.args, args)
	if m.err != nil {
		return nil, m.err
	}
	if m.rows == nil {
		m.rows = &mockRows{}
	}
	return m.rows, nil
}

type mockRows struct {
	values  [][]any
	current int
	scanErr error
	iterErr error
	closed  bool
}

func (r *mockRows) Next() bool {
	if r.current >= len(r.values) {
		return false
	}
	r.current++
	return true
}

func (r *mockRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.values[r.current-1]
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			target.SetZero()
			continue
		}
		target.Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *mockRows) Close() error {
	r.closed = true
	return nil
}

func (r *mockRows) Err() error { return r.iterErr }
