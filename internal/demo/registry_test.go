package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywasm/liteorm"
	"github.com/tinywasm/liteorm/internal/testutil"
)

func TestModels(t *testing.T) {
	assert.Equal(t, "game", GameModel.TableName())
	assert.Equal(t, []string{"id", "name"}, GameModel.Columns())
	assert.Equal(t, "test", TestModel.TableName())
	assert.Equal(t, []string{"id", "name", "game_id"}, TestModel.Columns())
	assert.Equal(t, GameMeta.TableName, GameModel.TableName())
	assert.Equal(t, TestMeta.GameID, "game_id")
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS game \n (id INTEGER PRIMARY KEY NOT NULL ,\n\tname CHAR(200) NOT NULL UNIQUE\n )\n",
		defs[0])
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS test \n (id INTEGER PRIMARY KEY NOT NULL ,\n\tname CHAR(100) NOT NULL UNIQUE ,\n\tgame_id INTEGER REFERENCES game ON DELETE NO ACTION\n )\n",
		defs[1])
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"game", "test"}, Names())

	tables := Tables(nil)
	assert.Len(t, tables, 2)
	assert.Contains(t, tables, "game")
	assert.Contains(t, tables, "test")

	ordered := Ordered(nil)
	require.Len(t, ordered, 2)
	assert.Equal(t, "game", ordered[0].TableName())
	assert.Equal(t, "test", ordered[1].TableName())
}

func TestGamesAndTests(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenMemory(t)
	for _, table := range Ordered(conn) {
		require.NoError(t, table.CreateTable(ctx))
	}

	require.NoError(t, conn.Execute(ctx, "INSERT INTO game (id, name) VALUES (?, ?), (?, ?)", 1, "chess", 2, "go"))
	require.NoError(t, conn.Execute(ctx,
		"INSERT INTO test (id, name, game_id) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		1, "opening", 1, 2, "endgame", 1, 3, "ko", 2))

	games, err := GameModel.Objects(conn).Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*Game{{ID: 1, Name: "chess"}, {ID: 2, Name: "go"}}, games)

	tests, err := FetchTestByGameID(ctx, conn, 1)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, "opening", tests[0].Name)
	assert.Equal(t, "endgame", tests[1].Name)

	chess, err := GameModel.Objects(conn).Filter(liteorm.Eq(GameMeta.Name, "chess")).Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, chess, 1)
	assert.Equal(t, "Game(chess)", GameModel.Format(chess[0]))
}

func TestForeignKeyEnforced(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenMemory(t)
	for _, table := range Ordered(conn) {
		require.NoError(t, table.CreateTable(ctx))
	}

	err := conn.Execute(ctx, "INSERT INTO test (id, name, game_id) VALUES (?, ?, ?)", 1, "orphan", 99)
	assert.Error(t, err)
}

func TestTestWithoutGame(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenMemory(t)
	for _, table := range Ordered(conn) {
		require.NoError(t, table.CreateTable(ctx))
	}
	require.NoError(t, conn.Execute(ctx, "INSERT INTO test (id, name) VALUES (?, ?)", 1, "orphan"))

	got, err := TestModel.Objects(conn).Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*Test{{ID: 1, Name: "orphan"}}, got)

	rows, err := Tables(conn)["test"].FetchValues(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(1), "orphan", int64(0)}}, rows)
}
