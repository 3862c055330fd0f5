package liteorm

import "sort"

// Logic joins a condition to the ones before it.
type Logic string

const (
	AND Logic = "AND"
	OR  Logic = "OR"
)

// Condition represents a filter for a query.
// It is a sealed value type constructed via helper functions.
type Condition struct {
	field    string
	operator string
	value    any
	logic    Logic
}

func (c Condition) Field() string    { return c.field }
func (c Condition) Operator() string { return c.operator }
func (c Condition) Value() any       { return c.value }
func (c Condition) Logic() Logic     { return c.logic }

// String renders the predicate with a placeholder for the value.
func (c Condition) String() string {
	return c.field + " " + c.operator + " ?"
}

func cond(field, operator string, value any) Condition {
	return Condition{
		field:    field,
		operator: operator,
		value:    value,
		logic:    AND,
	}
}

// Eq creates a condition for checking equality.
func Eq(field string, value any) Condition { return cond(field, "=", value) }

// Neq creates a condition for checking inequality.
func Neq(field string, value any) Condition { return cond(field, "!=", value) }

// Gt creates a condition for checking if a value is greater than another.
func Gt(field string, value any) Condition { return cond(field, ">", value) }

// Gte creates a condition for checking if a value is greater than or equal to another.
func Gte(field string, value any) Condition { return cond(field, ">=", value) }

// Lt creates a condition for checking if a value is less than another.
func Lt(field string, value any) Condition { return cond(field, "<", value) }

// Lte creates a condition for checking if a value is less than or equal to another.
func Lte(field string, value any) Condition { return cond(field, "<=", value) }

// Like creates a condition for checking if a value matches a pattern.
func Like(field string, value any) Condition { return cond(field, "LIKE", value) }

// Or creates a condition with OR logic.
func Or(c Condition) Condition {
	c.logic = OR
	return c
}

// Fields maps column names to the values they must equal.
type Fields map[string]any

// And returns one equality per key, all joined with AND, in key order.
func (f Fields) And() []Condition { return f.join(AND) }

// Or returns one equality per key, all joined with OR, in key order.
func (f Fields) Or() []Condition { return f.join(OR) }

func (f Fields) join(logic Logic) []Condition {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]Condition, 0, len(keys))
	for _, k := range keys {
		c := Eq(k, f[k])
		c.logic = logic
		conds = append(conds, c)
	}
	return conds
}
