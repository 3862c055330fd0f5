package liteorm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywasm/liteorm"
)

func TestQuery_Create(t *testing.T) {
	q := liteorm.NewQuery().Create("t", []string{"a INT"})
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS t \n (a INT\n )\n", q.String())

	q = liteorm.NewQuery().Create("t", []string{"a INT", "b CHAR(3)"})
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS t \n (a INT ,\n\tb CHAR(3)\n )\n", q.String())
}

func TestQuery_SelectFrom(t *testing.T) {
	s := liteorm.NewQuery().Select("a", "b").From("t").String()

	sel := strings.Index(s, "SELECT\n\ta,b\n")
	from := strings.Index(s, "FROM\n\tt\n")
	require.GreaterOrEqual(t, sel, 0, s)
	require.GreaterOrEqual(t, from, 0, s)
	assert.Less(t, sel, from)
	assert.NotContains(t, s, "WHERE")
	assert.Equal(t, "SELECT\n\ta,b\nFROM\n\tt\n", s)
}

func TestQuery_Where(t *testing.T) {
	q := liteorm.NewQuery().Select("a").From("t").
		Where(liteorm.Eq("a", 1), liteorm.Or(liteorm.Eq("b", "x")), liteorm.Gt("c", 2))

	assert.Equal(t, "SELECT\n\ta\nFROM\n\tt\nWHERE\n\ta = ? OR b = ? AND c > ?\n", q.String())
	assert.Equal(t, []any{1, "x", 2}, q.Args())

	plan := q.Plan()
	assert.Equal(t, q.String(), plan.Query)
	assert.Equal(t, q.Args(), plan.Args)
}

func TestQuery_ValuesAreNeverInlined(t *testing.T) {
	q := liteorm.NewQuery().Select("a").From("t").Where(liteorm.Eq("a", "'; DROP TABLE t; --"))
	assert.NotContains(t, q.String(), "DROP")
	assert.Equal(t, []any{"'; DROP TABLE t; --"}, q.Args())
}

func TestQuery_Drop(t *testing.T) {
	assert.Equal(t, "DROP TABLE IF EXISTS\n\tt\n", liteorm.NewQuery().Drop("t").String())
}

func TestQuery_Empty(t *testing.T) {
	q := liteorm.NewQuery()
	assert.Equal(t, "", q.String())
	assert.Nil(t, q.Args())
	for _, c := range q.Clauses() {
		assert.True(t, c.Empty(), c.Keyword())
	}
}

func TestQuery_ClauseOrder(t *testing.T) {
	q := liteorm.NewQuery().Drop("t").Create("t", []string{"a INT"}).Select("a").From("t")
	var keywords []string
	for _, c := range q.Clauses() {
		keywords = append(keywords, c.Keyword())
	}
	assert.Equal(t, []string{"SELECT", "FROM", "WHERE", "CREATE TABLE IF NOT EXISTS", "DROP TABLE IF EXISTS"}, keywords)

	s := q.String()
	assert.Less(t, strings.Index(s, "SELECT"), strings.Index(s, "CREATE"))
	assert.Less(t, strings.Index(s, "CREATE"), strings.Index(s, "DROP"))
}

func TestQuery_StringIsStable(t *testing.T) {
	q := liteorm.NewQuery().Select("a").From("t").Where(liteorm.Eq("a", 1))
	assert.Equal(t, q.String(), q.String())
}

func TestQuery_Clone(t *testing.T) {
	base := liteorm.NewQuery().Select("a").From("t")
	clone := base.Clone().Where(liteorm.Eq("a", 1))
	clone.Select("b")

	assert.Equal(t, "SELECT\n\ta\nFROM\n\tt\n", base.String())
	assert.Equal(t, "SELECT\n\ta,b\nFROM\n\tt\nWHERE\n\ta = ?\n", clone.String())
}

func TestWhere_Conditions(t *testing.T) {
	var w liteorm.Where
	assert.True(t, w.Empty())
	w.Add(liteorm.Eq("a", 1))
	got := w.Conditions()
	got[0] = liteorm.Eq("z", 9)
	assert.Equal(t, "a", w.Conditions()[0].Field())
	assert.Equal(t, "WHERE\n\ta = ?\n", w.Definition())
}
