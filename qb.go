package liteorm

import "context"

// QB represents a filtered query of one model.
// Every Filter returns a new QB; the receiver and the manager are never
// modified, so a QB can be kept in a variable and branched.
type QB[T any] struct {
	manager *Manager[T]
	conds   []Condition
}

// Filter returns a QB with conds appended to the current predicates.
func (qb *QB[T]) Filter(conds ...Condition) *QB[T] {
	next := make([]Condition, 0, len(qb.conds)+len(conds))
	next = append(next, qb.conds...)
	next = append(next, conds...)
	return &QB[T]{manager: qb.manager, conds: next}
}

// FilterBy returns a QB where every column in fields must equal its value.
func (qb *QB[T]) FilterBy(fields Fields) *QB[T] {
	return qb.Filter(fields.And()...)
}

// Conditions returns a copy of the predicates of the query.
func (qb *QB[T]) Conditions() []Condition {
	return append([]Condition(nil), qb.conds...)
}

// Query renders the SELECT statement this QB runs.
func (qb *QB[T]) Query() *Query {
	q := qb.manager.schema.SelectQuery()
	if len(qb.conds) > 0 {
		q.Where(qb.conds...)
	}
	return q
}

// Fetch runs the query and returns one new instance per row, with row
// values bound to fields in declaration order.
func (qb *QB[T]) Fetch(ctx context.Context) ([]*T, error) {
	return qb.manager.fetch(ctx, qb.Query())
}
