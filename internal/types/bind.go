package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Cast suffixes appended to placeholders whose driver value needs a hint.
const (
	NumericCast = "::numeric"
	UUIDCast    = "::uuid"
)

// BindVariable is a named, typed placeholder value.
// The set of implementations is closed: Numeric, Text and UniqueID.
// This is exported from the internal package so dialects can switch on it,
// but external users cannot add variants.
type BindVariable interface {
	// Name is the placeholder identifier, unique within a query.
	Name() string
	// Value is the Go value handed to the driver.
	Value() any
	// Cast is the type-cast suffix following the placeholder token, if any.
	Cast() string
	// Placeholder is the token written into the SQL text.
	Placeholder() string
	// Literal renders the value as SQL text for debug output only.
	Literal() string

	isBindVariable()
}

// Numeric binds a number. Value is an int64, uint64 or float64.
type Numeric struct {
	name  string
	value any
}

// NewNumeric creates a numeric bind variable.
func NewNumeric(name string, value any) Numeric {
	return Numeric{name: name, value: value}
}

func (n Numeric) Name() string        { return n.name }
func (n Numeric) Value() any          { return n.value }
func (n Numeric) Cast() string        { return NumericCast }
func (n Numeric) Placeholder() string { return Token(n.name) + NumericCast }
func (n Numeric) Literal() string     { return fmt.Sprint(n.value) }

// Text binds a string.
type Text struct {
	name  string
	value string
}

// NewText creates a text bind variable.
func NewText(name, value string) Text {
	return Text{name: name, value: value}
}

func (t Text) Name() string        { return t.name }
func (t Text) Value() any          { return t.value }
func (t Text) Cast() string        { return "" }
func (t Text) Placeholder() string { return Token(t.name) }

// Literal quotes the value without escaping embedded quotes.
func (t Text) Literal() string { return "'" + t.value + "'" }

// UniqueID binds a UUID.
type UniqueID struct {
	name  string
	value uuid.UUID
}

// NewUniqueID creates a UUID bind variable.
func NewUniqueID(name string, value uuid.UUID) UniqueID {
	return UniqueID{name: name, value: value}
}

func (u UniqueID) Name() string        { return u.name }
func (u UniqueID) Value() any          { return u.value }
func (u UniqueID) UUID() uuid.UUID     { return u.value }
func (u UniqueID) Cast() string        { return UUIDCast }
func (u UniqueID) Placeholder() string { return Token(u.name) + UUIDCast }
func (u UniqueID) Literal() string     { return "'" + u.value.String() + "'" + UUIDCast }

func (Numeric) isBindVariable()  {}
func (Text) isBindVariable()     {}
func (UniqueID) isBindVariable() {}

// Token returns the bare placeholder token for a bind name.
func Token(name string) string {
	return "{" + name + "}"
}
