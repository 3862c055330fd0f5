// Package liteorm is a small object-relational mapper over database/sql.
//
// A model is a Go struct plus an ordered list of field descriptors,
// registered once with Define:
//
//	type Game struct {
//		ID   int64
//		Name string
//	}
//
//	var GameModel = liteorm.MustDefine[Game](
//		liteorm.IntegerField("id", liteorm.PrimaryKey()),
//		liteorm.CharField("name", liteorm.MaxLength(200)),
//	)
//
// The application opens one Connector and hands it to the managers:
//
//	conn, err := liteorm.Open(ctx, "sqlite", "mydb.db")
//	games := GameModel.Objects(conn)
//	err = games.CreateTable(ctx)
//	found, err := games.Filter(liteorm.Eq("name", "chess")).Fetch(ctx)
//
// Filter values are always sent as bound arguments. The ormc command
// generates Define declarations from db struct tags.
package liteorm
