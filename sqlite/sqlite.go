// Package sqlite provides the SQLite dialect for bindq.
//
// SQLite has no :: cast syntax. Numeric placeholders become
// CAST(? AS NUMERIC) and UUIDs are bound as their canonical text.
package sqlite

import "github.com/zoobzio/bindq"

// Dialect renders ? placeholders.
type Dialect struct{}

// New creates a SQLite dialect.
func New() Dialect {
	return Dialect{}
}

// Name returns "sqlite".
func (Dialect) Name() string {
	return "sqlite"
}

// Placeholder returns ?, wrapped in a cast for numeric variables.
func (Dialect) Placeholder(_ int, b bindq.BindVariable) string {
	if _, ok := b.(bindq.Numeric); ok {
		return "CAST(? AS NUMERIC)"
	}
	return "?"
}

// Arg returns the driver value.
func (Dialect) Arg(b bindq.BindVariable) any {
	if id, ok := b.(bindq.UniqueID); ok {
		return id.UUID().String()
	}
	return b.Value()
}
