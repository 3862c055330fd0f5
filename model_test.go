package liteorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywasm/liteorm"
)

type Game struct {
	ID   int64
	Name string
}

type Player struct {
	ID       int64
	Nickname string `db:"name=nick"`
	GameID   int64
	Rating   int
	secret   string
}

func (*Player) TableName() string { return "players" }

var gameFields = []liteorm.Field{
	liteorm.IntegerField("id", liteorm.PrimaryKey()),
	liteorm.CharField("name"),
}

func TestDefine(t *testing.T) {
	s, err := liteorm.Define[Game](gameFields...)
	require.NoError(t, err)

	assert.Equal(t, "Game", s.Name())
	assert.Equal(t, "game", s.TableName())
	assert.Equal(t, []string{"id", "name"}, s.Columns())
	assert.Equal(t, []string{"id INTEGER PRIMARY KEY NOT NULL", "name CHAR(255) NOT NULL UNIQUE"}, s.Definitions())

	f, ok := s.Field("name")
	require.True(t, ok)
	assert.Equal(t, liteorm.TypeChar, f.Type)
	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestDefine_FieldOrderFollowsDeclaration(t *testing.T) {
	s, err := liteorm.Define[Game](liteorm.CharField("name"), liteorm.IntegerField("id", liteorm.PrimaryKey()))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "id"}, s.Columns())
}

func TestDefine_TableNamer(t *testing.T) {
	s, err := liteorm.Define[Player](
		liteorm.IntegerField("id", liteorm.PrimaryKey()),
		liteorm.CharField("nick"),
		liteorm.ForeignKeyField("game_id", liteorm.Ref("game"), liteorm.Cascade),
		liteorm.IntegerField("rating", liteorm.Default(1000)),
	)
	require.NoError(t, err)
	assert.Equal(t, "players", s.TableName())
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS players \n (id INTEGER PRIMARY KEY NOT NULL ,\n\tnick CHAR(255) NOT NULL UNIQUE ,\n\tgame_id INTEGER REFERENCES game ON DELETE CASCADE ,\n\trating INTEGER NOT NULL DEFAULT 1000\n )\n",
		s.CreateQuery().String())
}

func TestDefine_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []liteorm.Field
		err    error
	}{
		{"no fields", nil, liteorm.ErrValidation},
		{"empty name", []liteorm.Field{liteorm.IntegerField("")}, liteorm.ErrValidation},
		{"duplicate", []liteorm.Field{liteorm.IntegerField("id"), liteorm.CharField("id")}, liteorm.ErrValidation},
		{"fk without ref", []liteorm.Field{liteorm.ForeignKeyField("id", nil, liteorm.Cascade)}, liteorm.ErrValidation},
		{"fk bad action", []liteorm.Field{liteorm.ForeignKeyField("id", liteorm.Ref("x"), "EXPLODE")}, liteorm.ErrValidation},
		{"no struct field", []liteorm.Field{liteorm.IntegerField("score")}, liteorm.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := liteorm.Define[Game](tt.fields...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDefine_NotAStruct(t *testing.T) {
	_, err := liteorm.Define[int](liteorm.IntegerField("id"))
	assert.ErrorIs(t, err, liteorm.ErrValidation)
}

func TestDefine_UnexportedFieldIsNotMapped(t *testing.T) {
	_, err := liteorm.Define[Player](liteorm.CharField("secret"))
	assert.ErrorIs(t, err, liteorm.ErrValidation)
}

func TestMustDefine_Panics(t *testing.T) {
	assert.Panics(t, func() { liteorm.MustDefine[Game]() })
}

func TestSchema_Queries(t *testing.T) {
	s := liteorm.MustDefine[Game](gameFields...)
	assert.Equal(t, "SELECT\n\tid,name\nFROM\n\tgame\n", s.SelectQuery().String())
	assert.Equal(t, "DROP TABLE IF EXISTS\n\tgame\n", s.DropQuery().String())
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS game \n (id INTEGER PRIMARY KEY NOT NULL ,\n\tname CHAR(255) NOT NULL UNIQUE\n )\n",
		s.CreateQuery().String())
}

func TestSchema_New(t *testing.T) {
	s := liteorm.MustDefine[Game](gameFields...)

	g := s.New(map[string]any{"id": 7, "name": "chess", "ignored": true})
	assert.Equal(t, &Game{ID: 7, Name: "chess"}, g)

	// an integer never becomes a rune string
	g = s.New(map[string]any{"name": 65})
	assert.Equal(t, "", g.Name)

	g = s.New(map[string]any{"name": nil})
	assert.Equal(t, "", g.Name)
}

func TestSchema_NewByTag(t *testing.T) {
	s := liteorm.MustDefine[Player](liteorm.IntegerField("id"), liteorm.CharField("nick"))
	p := s.New(map[string]any{"nick": "ace"})
	assert.Equal(t, "ace", p.Nickname)
}

func TestSchema_Values(t *testing.T) {
	s := liteorm.MustDefine[Game](gameFields...)
	g := &Game{ID: 1, Name: "go"}

	assert.Equal(t, []any{int64(1), "go"}, s.Values(g))
	assert.Equal(t, map[string]any{"name": "go"}, s.Attrs(g))
	assert.Equal(t, "Game(go)", s.Format(g))

	ptrs := s.Pointers(g)
	require.Len(t, ptrs, 2)
	*(ptrs[1].(*string)) = "shogi"
	assert.Equal(t, "shogi", g.Name)
}

func TestSchema_NewPointerAndBytes(t *testing.T) {
	e := EntryModel.New(map[string]any{"comment": "x", "ref": 4, "note": []byte("raw")})
	require.NotNil(t, e.Comment)
	assert.Equal(t, "x", *e.Comment)
	require.NotNil(t, e.Ref)
	assert.Equal(t, int64(4), *e.Ref)
	assert.Equal(t, "raw", e.Note)

	e = EntryModel.New(map[string]any{"comment": nil})
	assert.Nil(t, e.Comment)
}
