package liteorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywasm/liteorm"
)

func TestConditions(t *testing.T) {
	tests := []struct {
		cond liteorm.Condition
		op   string
	}{
		{liteorm.Eq("a", 1), "="},
		{liteorm.Neq("a", 1), "!="},
		{liteorm.Gt("a", 1), ">"},
		{liteorm.Gte("a", 1), ">="},
		{liteorm.Lt("a", 1), "<"},
		{liteorm.Lte("a", 1), "<="},
		{liteorm.Like("a", "x%"), "LIKE"},
	}
	for _, tt := range tests {
		assert.Equal(t, "a", tt.cond.Field())
		assert.Equal(t, tt.op, tt.cond.Operator())
		assert.Equal(t, liteorm.AND, tt.cond.Logic())
		assert.Equal(t, "a "+tt.op+" ?", tt.cond.String())
	}

	or := liteorm.Or(liteorm.Eq("b", "x"))
	assert.Equal(t, liteorm.OR, or.Logic())
	assert.Equal(t, "x", or.Value())
}

func TestFields(t *testing.T) {
	f := liteorm.Fields{"name": "chess", "id": 3}

	and := f.And()
	require.Len(t, and, 2)
	assert.Equal(t, "id", and[0].Field())
	assert.Equal(t, 3, and[0].Value())
	assert.Equal(t, "name", and[1].Field())
	assert.Equal(t, liteorm.AND, and[1].Logic())

	or := f.Or()
	require.Len(t, or, 2)
	assert.Equal(t, liteorm.OR, or[0].Logic())
	assert.Equal(t, liteorm.OR, or[1].Logic())

	assert.Empty(t, liteorm.Fields{}.And())
}
