package liteorm

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType represents the column type family of a model field.
type FieldType int

const (
	TypeChar FieldType = iota
	TypeInteger
	TypeDateTime
	TypeForeignKey
)

func (t FieldType) String() string {
	switch t {
	case TypeChar:
		return "CHAR"
	case TypeInteger:
		return "INTEGER"
	case TypeDateTime:
		return "DATETIME"
	case TypeForeignKey:
		return "FOREIGN KEY"
	}
	return "UNKNOWN"
}

// Constraint is a bitmask of column-level constraints.
// ConstraintNone = 0 is defined separately to avoid shifting iota off-by-one.
type Constraint int

const ConstraintNone Constraint = 0

const (
	ConstraintPK      Constraint = 1 << iota // 1: PRIMARY KEY
	ConstraintUnique                         // 2: UNIQUE
	ConstraintNotNull                        // 4: NOT NULL
)

// OnDelete is the referential action of a foreign key.
type OnDelete string

const (
	Cascade    OnDelete = "CASCADE"
	Restrict   OnDelete = "RESTRICT"
	NoAction   OnDelete = "NO ACTION"
	SetNull    OnDelete = "SET NULL"
	SetDefault OnDelete = "SET DEFAULT"
)

// Valid reports whether a is one of the five SQL referential actions.
func (a OnDelete) Valid() bool {
	switch a {
	case Cascade, Restrict, NoAction, SetNull, SetDefault:
		return true
	}
	return false
}

// Expr is a raw SQL expression used as a column default, e.g. CURRENT_TIMESTAMP.
// It is rendered verbatim.
type Expr string

// CurrentTimestamp is the default installed by AutoNow.
const CurrentTimestamp Expr = "CURRENT_TIMESTAMP"

// DefaultMaxLength is the CHAR length used when MaxLength is not given.
const DefaultMaxLength = 255

// Referent is anything that owns a table, typically a *Schema.
type Referent interface {
	TableName() string
}

type tableRef string

func (r tableRef) TableName() string { return string(r) }

// Ref names a referenced table directly, for foreign keys declared before
// (or without) the referenced schema.
func Ref(table string) Referent { return tableRef(table) }

// Field describes a single column in a model's schema.
// Fields are values: once built by a constructor they are never mutated.
type Field struct {
	Name        string
	Type        FieldType
	Constraints Constraint
	Default     any // nil = no DEFAULT clause
	MaxLength   int // TypeChar only
	AutoNow     bool
	Ref         string // FK: referenced table name
	OnDelete    OnDelete
}

// FieldOption configures a field at construction time.
type FieldOption func(*Field)

// PrimaryKey marks the column as PRIMARY KEY.
func PrimaryKey() FieldOption {
	return func(f *Field) { f.Constraints |= ConstraintPK }
}

// Null allows NULL values; fields are NOT NULL otherwise.
func Null() FieldOption {
	return func(f *Field) { f.Constraints &^= ConstraintNotNull }
}

// Unique switches the UNIQUE constraint on or off.
func Unique(on bool) FieldOption {
	return func(f *Field) {
		if on {
			f.Constraints |= ConstraintUnique
		} else {
			f.Constraints &^= ConstraintUnique
		}
	}
}

// Default sets the DEFAULT value. No type checking is done against the column.
func Default(v any) FieldOption {
	return func(f *Field) { f.Default = v }
}

// MaxLength sets the CHAR length.
func MaxLength(n int) FieldOption {
	return func(f *Field) { f.MaxLength = n }
}

// AutoNow makes the column default to the insertion time.
func AutoNow() FieldOption {
	return func(f *Field) {
		f.AutoNow = true
		f.Default = CurrentTimestamp
	}
}

func newField(name string, typ FieldType, base Constraint, opts []FieldOption) Field {
	f := Field{Name: name, Type: typ, Constraints: base}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// CharField declares a CHAR(n) column. Unique unless Unique(false) is given.
func CharField(name string, opts ...FieldOption) Field {
	f := newField(name, TypeChar, ConstraintNotNull|ConstraintUnique, opts)
	if f.MaxLength <= 0 {
		f.MaxLength = DefaultMaxLength
	}
	return f
}

// IntegerField declares an INTEGER column.
func IntegerField(name string, opts ...FieldOption) Field {
	return newField(name, TypeInteger, ConstraintNotNull, opts)
}

// DateTimeField declares a DATETIME column.
func DateTimeField(name string, opts ...FieldOption) Field {
	return newField(name, TypeDateTime, ConstraintNotNull, opts)
}

// ForeignKeyField declares an INTEGER column referencing ref's table.
// It carries no other constraint.
func ForeignKeyField(name string, ref Referent, onDelete OnDelete) Field {
	f := Field{Name: name, Type: TypeForeignKey, OnDelete: onDelete}
	if ref != nil {
		f.Ref = ref.TableName()
	}
	if f.OnDelete == "" {
		f.OnDelete = NoAction
	}
	return f
}

// IsPrimaryKey reports whether the field carries PRIMARY KEY.
func (f Field) IsPrimaryKey() bool { return f.Constraints&ConstraintPK != 0 }

// IsNullable reports whether the column accepts NULL.
func (f Field) IsNullable() bool { return f.Constraints&ConstraintNotNull == 0 }

// IsUnique reports whether the field carries UNIQUE.
func (f Field) IsUnique() bool { return f.Constraints&ConstraintUnique != 0 }

// SQLType returns the base type token, e.g. CHAR(255).
func (f Field) SQLType() string {
	switch f.Type {
	case TypeChar:
		n := f.MaxLength
		if n <= 0 {
			n = DefaultMaxLength
		}
		return "CHAR(" + strconv.Itoa(n) + ")"
	case TypeDateTime:
		return "DATETIME"
	}
	return "INTEGER"
}

// Definition renders the column definition without the column name.
func (f Field) Definition() string {
	if f.Type == TypeForeignKey {
		return f.SQLType() + " REFERENCES " + f.Ref + " ON DELETE " + string(f.OnDelete)
	}

	var b strings.Builder
	b.WriteString(f.SQLType())
	if f.IsPrimaryKey() {
		b.WriteString(" PRIMARY KEY")
	}
	if !f.IsNullable() {
		b.WriteString(" NOT NULL")
	}
	if f.IsUnique() {
		b.WriteString(" UNIQUE")
	}
	if f.Default != nil {
		b.WriteString(" DEFAULT ")
		b.WriteString(Literal(f.Default))
	}
	return b.String()
}

// Column renders "<name> <definition>", one entry of a CREATE TABLE body.
func (f Field) Column() string {
	return f.Name + " " + f.Definition()
}

func (f Field) String() string { return f.Definition() }

// Literal renders v as a SQL literal. It is only used for DDL defaults,
// which cannot be bound; query values always travel as arguments.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case Expr:
		return string(x)
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case []byte:
		return "X'" + hex.EncodeToString(x) + "'"
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + x.Format(time.DateTime) + "'"
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return Literal(fmt.Sprint(v))
}
