package store

import "time"

type Author struct {
	ID    int64
	Name  string `db:"max=80,nounique"`
	Books []Book
}

func (Author) TableName() string { return "authors" }

type Book struct {
	ID        int64     `db:"pk"`
	Title     string    `db:"max=120"`
	Pages     int       `db:"default=100,null"`
	AuthorID  int64     `db:"ref=authors,ondelete=cascade"`
	Published time.Time `db:"auto_now"`
	Price     float64
	Notes     string `db:"-"`
}

type Shelf struct {
	Label string `db:"name=shelf_label,default=new"`
}

type Review struct {
	ID     int64
	Body   *string
	BookID *int64 `db:"ref=book,ondelete=set_null"`
}
