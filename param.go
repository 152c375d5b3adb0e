package bindq

import (
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/zoobzio/bindq/internal/types"
)

// Number is the set of Go types bound as numeric placeholders.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is a typed value waiting to be given a bind name.
// A nil Value means "absent" to every Optional operation.
type Value interface {
	bind(name string) BindVariable
}

type numValue struct{ n any }

func (v numValue) bind(name string) BindVariable { return types.NewNumeric(name, v.n) }

type strValue struct{ s string }

func (v strValue) bind(name string) BindVariable { return types.NewText(name, v.s) }

type uuidValue struct{ u uuid.UUID }

func (v uuidValue) bind(name string) BindVariable { return types.NewUniqueID(name, v.u) }

// Num returns a numeric value. Integers are widened to int64 or uint64 and
// floats to float64. A float32 keeps its shortest decimal form, so
// float32(0.1) binds as 0.1.
func Num[N Number](n N) Value {
	rv := reflect.ValueOf(n)
	switch {
	case rv.CanInt():
		return numValue{rv.Int()}
	case rv.CanUint():
		return numValue{rv.Uint()}
	case rv.Kind() == reflect.Float32:
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return numValue{f}
	default:
		return numValue{rv.Float()}
	}
}

// Str returns a text value.
func Str(s string) Value {
	return strValue{s}
}

// UUID returns a unique-identifier value.
func UUID(u uuid.UUID) Value {
	return uuidValue{u}
}

// NumPtr returns nil for a nil pointer, otherwise Num(*n).
func NumPtr[N Number](n *N) Value {
	if n == nil {
		return nil
	}
	return Num(*n)
}

// StrPtr returns nil for a nil pointer, otherwise Str(*s).
func StrPtr(s *string) Value {
	if s == nil {
		return nil
	}
	return Str(*s)
}

// UUIDPtr returns nil for a nil pointer, otherwise UUID(*u).
func UUIDPtr(u *uuid.UUID) Value {
	if u == nil {
		return nil
	}
	return UUID(*u)
}

// Nums lifts a slice of numbers. A nil slice stays nil (absent) and an empty
// slice stays empty (present, matching nothing).
func Nums[N Number](ns []N) []Value {
	if ns == nil {
		return nil
	}
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = Num(n)
	}
	return out
}

// Strs lifts a slice of strings, preserving nil-ness.
func Strs(ss []string) []Value {
	if ss == nil {
		return nil
	}
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}

// UUIDs lifts a slice of UUIDs, preserving nil-ness.
func UUIDs(us []uuid.UUID) []Value {
	if us == nil {
		return nil
	}
	out := make([]Value, len(us))
	for i, u := range us {
		out[i] = UUID(u)
	}
	return out
}
