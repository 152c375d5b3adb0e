package querydoc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zoobzio/bindq"
)

type filterOp int

const (
	opCompare filterOp = iota
	opIn
	opText
	opBool
	opNotNull
	opIsNull
	opIsNotNull
)

var ops = map[string]filterOp{
	"=":           opCompare,
	"!=":          opCompare,
	"<":           opCompare,
	"<=":          opCompare,
	">":           opCompare,
	">=":          opCompare,
	"in":          opIn,
	"text":        opText,
	"bool":        opBool,
	"not_null":    opNotNull,
	"is_null":     opIsNull,
	"is_not_null": opIsNotNull,
}

// Build turns doc into a query. Conversion errors name the offending
// filter or bind; a duplicate bind name surfaces as the query's own error.
func Build(doc *Document, opts ...bindq.Option) (bindq.Query, error) {
	q := bindq.New(doc.Base, opts...)
	if doc.Debug {
		q = q.Debug(true)
	}

	for _, b := range doc.Binds {
		v, err := value(b.Type, b.Value)
		if err != nil {
			return q, fmt.Errorf("bind %s: %w", b.Name, err)
		}
		q = q.OptionalBind(b.Name, v)
	}

	for i, f := range doc.Filters {
		var err error
		q, err = applyFilter(q, f)
		if err != nil {
			return q, fmt.Errorf("filter %d (%s): %w", i, f.Column, err)
		}
	}

	for _, w := range doc.Where {
		q = q.And(w)
	}
	q = q.Or(doc.AnyOf...)

	for _, o := range doc.OrderBy {
		q = q.OrderBy(o)
	}
	q = q.OptionalLimit(doc.Limit).OptionalOffset(doc.Offset)

	return q, q.Err()
}

func applyFilter(q bindq.Query, f Filter) (bindq.Query, error) {
	var opts []bindq.CompareOption
	if f.ColumnFuncs != nil {
		opts = append(opts, bindq.ColumnFuncs(functions(f.ColumnFuncs)...))
	}
	if f.ValueFuncs != nil {
		opts = append(opts, bindq.ValueFuncs(functions(f.ValueFuncs)...))
	}

	switch ops[f.Op] {
	case opCompare:
		v, err := value(f.Type, f.Value)
		if err != nil {
			return q, err
		}
		return q.OptionalCompare(f.Column, bindq.Operator(f.Op), v, opts...), nil

	case opIn:
		if f.Values == nil {
			return q, nil
		}
		vs := make([]bindq.Value, 0, len(f.Values))
		for _, raw := range f.Values {
			if raw == nil {
				return q, fmt.Errorf("null in values")
			}
			v, err := value(f.Type, raw)
			if err != nil {
				return q, err
			}
			vs = append(vs, v)
		}
		return q.In(f.Column, vs, opts...), nil

	case opText:
		if f.Value == nil {
			return q, nil
		}
		s, ok := f.Value.(string)
		if !ok {
			s = fmt.Sprint(f.Value)
		}
		return q.Text(f.Column, s, opts...), nil

	case opBool, opNotNull:
		if f.Value == nil {
			return q, nil
		}
		b, ok := f.Value.(bool)
		if !ok {
			return q, fmt.Errorf("expected bool, got %T", f.Value)
		}
		if ops[f.Op] == opBool {
			return q.Boolean(f.Column, b), nil
		}
		return q.NullBoolean(f.Column, b), nil

	case opIsNull:
		return q.IsNull(f.Column), nil

	case opIsNotNull:
		return q.IsNotNull(f.Column), nil
	}
	return q, fmt.Errorf("unknown op %q", f.Op)
}

// value converts a decoded YAML scalar. A nil raw value is absent.
func value(typ string, raw any) (bindq.Value, error) {
	if raw == nil {
		return nil, nil
	}

	switch typ {
	case TypeNumeric:
		switch n := raw.(type) {
		case int:
			return bindq.Num(n), nil
		case int64:
			return bindq.Num(n), nil
		case uint64:
			return bindq.Num(n), nil
		case float64:
			return bindq.Num(n), nil
		default:
			return nil, fmt.Errorf("expected number, got %T", raw)
		}

	case TypeUUID:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected uuid string, got %T", raw)
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", s, err)
		}
		return bindq.UUID(u), nil

	default:
		if s, ok := raw.(string); ok {
			return bindq.Str(s), nil
		}
		switch raw.(type) {
		case []any, map[string]any:
			return nil, fmt.Errorf("expected scalar, got %T", raw)
		}
		return bindq.Str(fmt.Sprint(raw)), nil
	}
}

// functions maps names to function wrappers.
func functions(names []string) []bindq.Function {
	fns := make([]bindq.Function, 0, len(names))
	for _, name := range names {
		switch name {
		case "lower":
			fns = append(fns, bindq.Lower)
		case "trim":
			fns = append(fns, bindq.Trim)
		default:
			fns = append(fns, bindq.Custom(name))
		}
	}
	return fns
}
