package liteorm

import (
	"fmt"
	"reflect"
	"strings"
)

// TableNamer lets a model struct choose its own table name.
type TableNamer interface {
	TableName() string
}

// Schema is the frozen description of one model: its table, its fields in
// declaration order and where each field lives in the Go struct T.
// Build it once, at startup, with Define.
type Schema[T any] struct {
	name    string
	table   string
	fields  []Field
	index   []int          // struct field index per declared field
	columns map[string]int // column name -> position in fields
	typ     reflect.Type
}

// Define registers the model T with the given fields. The table name is
// T's TableName() when *T implements TableNamer, otherwise the lowercased
// type name. Field order is argument order and drives row binding.
func Define[T any](fields ...Field) (*Schema[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: model %s is not a struct", ErrValidation, typ)
	}

	table := strings.ToLower(typ.Name())
	var zero T
	if n, ok := any(&zero).(TableNamer); ok {
		table = n.TableName()
	}

	if err := validate(table, fields); err != nil {
		return nil, err
	}

	s := &Schema[T]{
		name:    typ.Name(),
		table:   table,
		fields:  append([]Field(nil), fields...),
		index:   make([]int, len(fields)),
		columns: make(map[string]int, len(fields)),
		typ:     typ,
	}
	for i, f := range s.fields {
		idx, ok := structField(typ, f.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no exported field for column %q", ErrValidation, typ.Name(), f.Name)
		}
		s.index[i] = idx
		s.columns[f.Name] = i
	}
	return s, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// model declarations.
func MustDefine[T any](fields ...Field) *Schema[T] {
	s, err := Define[T](fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// structField finds the exported field of typ bound to column: a db tag
// "name=<column>" wins, then the snake-case or case-insensitive Go name.
func structField(typ reflect.Type, column string) (int, bool) {
	byName := -1
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		tag := sf.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if name, ok := tagValue(tag, "name"); ok {
			if name == column {
				return i, true
			}
			continue
		}
		if byName < 0 && (columnName(sf.Name) == column ||
			strings.EqualFold(strings.ReplaceAll(column, "_", ""), sf.Name)) {
			byName = i
		}
	}
	return byName, byName >= 0
}

// Name returns the Go type name of the model.
func (s *Schema[T]) Name() string { return s.name }

// TableName returns the table the model maps to.
func (s *Schema[T]) TableName() string { return s.table }

// Fields returns the declared fields in declaration order.
func (s *Schema[T]) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field returns the declared field with the given column name.
func (s *Schema[T]) Field(name string) (Field, bool) {
	i, ok := s.columns[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Columns returns the column names in declaration order.
func (s *Schema[T]) Columns() []string {
	cols := make([]string, len(s.fields))
	for i, f := range s.fields {
		cols[i] = f.Name
	}
	return cols
}

// Definitions returns one "<name> <definition>" entry per field.
func (s *Schema[T]) Definitions() []string {
	defs := make([]string, len(s.fields))
	for i, f := range s.fields {
		defs[i] = f.Column()
	}
	return defs
}

// CreateQuery builds the CREATE TABLE statement of the model.
func (s *Schema[T]) CreateQuery() *Query {
	return NewQuery().Create(s.table, s.Definitions())
}

// DropQuery builds the DROP TABLE statement of the model.
func (s *Schema[T]) DropQuery() *Query {
	return NewQuery().Drop(s.table)
}

// SelectQuery builds SELECT <columns> FROM <table>.
func (s *Schema[T]) SelectQuery() *Query {
	return NewQuery().Select(s.Columns()...).From(s.table)
}

// New builds an instance from attribute values. Keys matching an exported
// field of T are copied when the value is assignable or convertible; other
// keys are ignored. Keys are not checked against the declared fields.
func (s *Schema[T]) New(attrs map[string]any) *T {
	m := new(T)
	rv := reflect.ValueOf(m).Elem()
	for k, v := range attrs {
		idx, ok := structField(s.typ, k)
		if !ok {
			continue
		}
		setValue(rv.Field(idx), v)
	}
	return m
}

func setValue(dst reflect.Value, v any) {
	if v == nil {
		dst.SetZero()
		return
	}
	src := reflect.ValueOf(v)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case dst.Kind() == reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		setValue(elem.Elem(), v)
		dst.Set(elem)
	case dst.Kind() == reflect.String && src.Kind() == reflect.Slice && src.Type().Elem().Kind() == reflect.Uint8:
		dst.SetString(string(src.Bytes()))
	case dst.Kind() == reflect.String && src.Kind() != reflect.String:
		// int -> string conversion would yield a rune, not digits.
	case src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	}
}

// Pointers returns the addresses of m's declared fields, in declaration
// order. Fetch scans through them for NOT NULL columns.
func (s *Schema[T]) Pointers(m *T) []any {
	rv := reflect.ValueOf(m).Elem()
	ptrs := make([]any, len(s.index))
	for i, idx := range s.index {
		ptrs[i] = rv.Field(idx).Addr().Interface()
	}
	return ptrs
}

// scanDest returns the Scan destinations of m. Nullable columns scan into
// an any holder so a NULL reaches m as the zero value (nil for pointer
// fields); assign copies the held values onto m after a successful Scan.
func (s *Schema[T]) scanDest(m *T) (dest []any, assign func()) {
	rv := reflect.ValueOf(m).Elem()
	dest = make([]any, len(s.index))
	held := make(map[int]*any)
	for i, idx := range s.index {
		if !s.fields[i].IsNullable() {
			dest[i] = rv.Field(idx).Addr().Interface()
			continue
		}
		h := new(any)
		held[i] = h
		dest[i] = h
	}
	assign = func() {
		for i, h := range held {
			setValue(rv.Field(s.index[i]), *h)
		}
	}
	return dest, assign
}

// Values returns m's declared field values in declaration order. Pointer
// fields are dereferenced; a nil pointer yields nil.
func (s *Schema[T]) Values(m *T) []any {
	rv := reflect.ValueOf(m).Elem()
	vals := make([]any, len(s.index))
	for i, idx := range s.index {
		f := rv.Field(idx)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		vals[i] = f.Interface()
	}
	return vals
}

// Attrs returns m's declared field values keyed by column, without id.
func (s *Schema[T]) Attrs(m *T) map[string]any {
	vals := s.Values(m)
	attrs := make(map[string]any, len(vals))
	for i, f := range s.fields {
		if f.Name == "id" {
			continue
		}
		attrs[f.Name] = vals[i]
	}
	return attrs
}

// Format renders m as Name(v1, v2, ...) over the declared fields except id.
func (s *Schema[T]) Format(m *T) string {
	vals := s.Values(m)
	parts := make([]string, 0, len(vals))
	for i, f := range s.fields {
		if f.Name == "id" {
			continue
		}
		parts = append(parts, fmt.Sprint(vals[i]))
	}
	return s.name + "(" + strings.Join(parts, ", ") + ")"
}

// Objects returns the manager of this model bound to exec.
func (s *Schema[T]) Objects(exec Executor) *Manager[T] {
	return newManager(s, exec)
}
