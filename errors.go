package liteorm

import "errors"

// ErrValidation is returned when a schema declaration is inconsistent.
var ErrValidation = errors.New("validation error")

// ErrEmptyTable is returned when a schema resolves to an empty table name.
var ErrEmptyTable = errors.New("empty table name")

// ErrUnknownColumn is returned when a filter names a column the model does not declare.
var ErrUnknownColumn = errors.New("unknown column")

// ErrNotOpened is returned by a Connector whose database handle is closed or missing.
var ErrNotOpened = errors.New("database not opened")
