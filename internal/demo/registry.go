package demo

import (
	"sort"

	"github.com/tinywasm/liteorm"
)

// Tables returns the demo tables bound to exec, keyed by table name.
func Tables(exec liteorm.Executor) map[string]liteorm.Table {
	return map[string]liteorm.Table{
		GameModel.TableName(): GameModel.Objects(exec),
		TestModel.TableName(): TestModel.Objects(exec),
	}
}

// Ordered returns the demo tables in creation order: referenced tables first.
func Ordered(exec liteorm.Executor) []liteorm.Table {
	return []liteorm.Table{
		GameModel.Objects(exec),
		TestModel.Objects(exec),
	}
}

// Names returns the demo table names sorted.
func Names() []string {
	names := []string{GameModel.TableName(), TestModel.TableName()}
	sort.Strings(names)
	return names
}

// Definitions returns the CREATE TABLE statement of every demo table in creation order.
func Definitions() []string {
	return []string{
		GameModel.CreateQuery().String(),
		TestModel.CreateQuery().String(),
	}
}
