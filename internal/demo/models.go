// Package demo holds the two sample models managed by the liteorm command.
package demo

//go:generate go run github.com/tinywasm/liteorm/cmd/ormc -root .

// Game is a board or video game.
type Game struct {
	ID    int64  `db:"pk"`
	Name  string `db:"max=200"`
	Tests []Test
}

// Test is a play test of a Game.
type Test struct {
	ID     int64  `db:"pk"`
	Name   string `db:"max=100"`
	GameID int64  `db:"ref=game,ondelete=no_action"`
}
