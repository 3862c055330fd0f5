package liteorm

import "strings"

// Clause is one fragment of a SQL statement.
type Clause interface {
	// Keyword is the leading SQL keyword(s) of the clause.
	Keyword() string
	// Empty reports whether nothing has been added yet.
	Empty() bool
	// Definition renders the clause as "<KEYWORD>\n\t<body>\n".
	Definition() string
}

func definition(keyword, body string) string {
	return keyword + "\n\t" + body + "\n"
}

// Select accumulates the column list.
type Select struct {
	columns []string
}

func (s *Select) Add(columns ...string) { s.columns = append(s.columns, columns...) }
func (s *Select) Keyword() string       { return "SELECT" }
func (s *Select) Empty() bool           { return len(s.columns) == 0 }
func (s *Select) Definition() string {
	return definition(s.Keyword(), strings.Join(s.columns, ","))
}

// From accumulates the table list.
type From struct {
	tables []string
}

func (f *From) Add(tables ...string) { f.tables = append(f.tables, tables...) }
func (f *From) Keyword() string      { return "FROM" }
func (f *From) Empty() bool          { return len(f.tables) == 0 }
func (f *From) Definition() string {
	return definition(f.Keyword(), strings.Join(f.tables, ","))
}

// Where accumulates predicates. Values never reach the SQL text;
// they are returned by Args in placeholder order.
type Where struct {
	conds []Condition
}

func (w *Where) Add(conds ...Condition) { w.conds = append(w.conds, conds...) }
func (w *Where) Keyword() string        { return "WHERE" }
func (w *Where) Empty() bool            { return len(w.conds) == 0 }

// Conditions returns a copy of the accumulated predicates.
func (w *Where) Conditions() []Condition {
	return append([]Condition(nil), w.conds...)
}

// Args returns the bound values in placeholder order.
func (w *Where) Args() []any {
	if len(w.conds) == 0 {
		return nil
	}
	args := make([]any, len(w.conds))
	for i, c := range w.conds {
		args[i] = c.value
	}
	return args
}

func (w *Where) line() string {
	var b strings.Builder
	for i, c := range w.conds {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(string(c.logic))
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (w *Where) Definition() string { return definition(w.Keyword(), w.line()) }

// Create accumulates a CREATE TABLE body.
type Create struct {
	table   string
	columns []string
}

// Add sets the table (the last call wins) and appends column definitions.
func (c *Create) Add(table string, columns []string) {
	c.table = table
	c.columns = append(c.columns, columns...)
}

func (c *Create) Keyword() string { return "CREATE TABLE IF NOT EXISTS" }
func (c *Create) Empty() bool     { return len(c.columns) == 0 }
func (c *Create) Definition() string {
	return c.Keyword() + " " + c.table + " \n (" + strings.Join(c.columns, " ,\n\t") + "\n )\n"
}

// Drop accumulates the table to drop.
type Drop struct {
	tables []string
}

func (d *Drop) Add(table string) { d.tables = append(d.tables, table) }
func (d *Drop) Keyword() string  { return "DROP TABLE IF EXISTS" }
func (d *Drop) Empty() bool      { return len(d.tables) == 0 }
func (d *Drop) Definition() string {
	return definition(d.Keyword(), strings.Join(d.tables, ""))
}

// Query holds one of each clause and renders the populated ones in the
// fixed order select, from, where, create, drop. Nothing stops a caller
// from populating both CREATE and SELECT; both are then emitted.
type Query struct {
	sel    Select
	from   From
	where  Where
	create Create
	drop   Drop
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

func (q *Query) Select(columns ...string) *Query {
	q.sel.Add(columns...)
	return q
}

func (q *Query) From(tables ...string) *Query {
	q.from.Add(tables...)
	return q
}

func (q *Query) Where(conds ...Condition) *Query {
	q.where.Add(conds...)
	return q
}

func (q *Query) Create(table string, columns []string) *Query {
	q.create.Add(table, columns)
	return q
}

func (q *Query) Drop(table string) *Query {
	q.drop.Add(table)
	return q
}

// Clauses returns the clauses in rendering order.
func (q *Query) Clauses() []Clause {
	return []Clause{&q.sel, &q.from, &q.where, &q.create, &q.drop}
}

// String renders the statement text. Calling it repeatedly yields the same text.
func (q *Query) String() string {
	var b strings.Builder
	for _, c := range q.Clauses() {
		if !c.Empty() {
			b.WriteString(c.Definition())
		}
	}
	return b.String()
}

// Args returns the values bound to the WHERE placeholders.
func (q *Query) Args() []any {
	return q.where.Args()
}

// Plan pairs the statement text with its arguments.
func (q *Query) Plan() Plan {
	return Plan{Query: q.String(), Args: q.Args()}
}

// Clone returns an independent copy; adding to either side never affects the other.
func (q *Query) Clone() *Query {
	return &Query{
		sel:    Select{columns: append([]string(nil), q.sel.columns...)},
		from:   From{tables: append([]string(nil), q.from.tables...)},
		where:  Where{conds: append([]Condition(nil), q.where.conds...)},
		create: Create{table: q.create.table, columns: append([]string(nil), q.create.columns...)},
		drop:   Drop{tables: append([]string(nil), q.drop.tables...)},
	}
}
