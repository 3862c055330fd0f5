package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/tinywasm/liteorm"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// MemoryDSN returns a DSN naming a fresh shared-cache in-memory SQLite
// database. Two connectors opened on the same DSN see the same data; DSNs
// from separate calls never collide.
func MemoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
}

// OpenMemory opens a connector on a new in-memory database and closes it
// when the test ends.
func OpenMemory(t testing.TB) *liteorm.Connector {
	t.Helper()
	c, err := liteorm.Open(context.Background(), "sqlite", MemoryDSN(), liteorm.WithLogger(NewTestLogger(t)))
	if err != nil {
		t.Fatalf("open memory database: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
