package bindq

import (
	"fmt"
	"strconv"
	"strings"
)

// In adds "<column> in (<ph1>, <ph2>, ...)" with one bind variable per value.
// An empty list adds the condition "false" so the query matches nothing.
// It panics if any value is nil.
func (q Query) In(column string, values []Value, opts ...CompareOption) Query {
	if q.err != nil {
		return q
	}
	if len(values) == 0 {
		return q.with([]string{"false"}, nil)
	}

	cfg := newCompareConfig(opts)
	binds := make([]BindVariable, 0, len(values))
	placeholders := make([]string, 0, len(values))
	base := simplifyName(column)
	taken := q.binds
	for i, v := range values {
		if v == nil {
			panic(fmt.Errorf("bindq: nil value at index %d for column %q", i, column))
		}
		candidate := base
		if i > 0 {
			candidate = base + strconv.Itoa(i+1)
		}
		b := v.bind(uniqueName(candidate, taken))
		taken = appendClone(taken, b)
		binds = append(binds, b)
		placeholders = append(placeholders, Apply(b.Placeholder(), cfg.valueFuncs...))
	}

	cond := fmt.Sprintf("%s in (%s)",
		Apply(column, cfg.columnFuncs...),
		strings.Join(placeholders, ", "))
	return q.with([]string{cond}, binds)
}

// OptionalIn is a no-op for a nil list and In otherwise, so an empty
// non-nil list still matches nothing.
func (q Query) OptionalIn(column string, values []Value, opts ...CompareOption) Query {
	if values == nil {
		return q
	}
	return q.In(column, values, opts...)
}

// And appends raw conditions, each ANDed with the rest of the query.
func (q Query) And(clauses ...string) Query {
	if q.err != nil || len(clauses) == 0 {
		return q
	}
	return q.with(clauses, nil)
}

// OptionalAnd is And, or a no-op when clause is nil.
func (q Query) OptionalAnd(clause *string) Query {
	if clause == nil {
		return q
	}
	return q.And(*clause)
}

// Or appends the clauses as a single parenthesized "or" group. One clause
// behaves like And; none is a no-op.
func (q Query) Or(clauses ...string) Query {
	if q.err != nil {
		return q
	}
	switch len(clauses) {
	case 0:
		return q
	case 1:
		return q.And(clauses[0])
	default:
		return q.with([]string{"(" + strings.Join(clauses, " or ") + ")"}, nil)
	}
}

// OptionalOr is Or over the clauses that are present.
func (q Query) OptionalOr(clauses ...*string) Query {
	present := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != nil {
			present = append(present, *c)
		}
	}
	return q.Or(present...)
}

// Boolean adds "<column> is true" or "<column> is false".
func (q Query) Boolean(column string, value bool) Query {
	if value {
		return q.And(column + " is true")
	}
	return q.And(column + " is false")
}

// OptionalBoolean is Boolean, or a no-op when value is nil.
func (q Query) OptionalBoolean(column string, value *bool) Query {
	if value == nil {
		return q
	}
	return q.Boolean(column, *value)
}

// NullBoolean adds "<column> is not null" when notNull is true and
// "<column> is null" otherwise.
func (q Query) NullBoolean(column string, notNull bool) Query {
	if notNull {
		return q.IsNotNull(column)
	}
	return q.IsNull(column)
}

// OptionalNullBoolean is NullBoolean, or a no-op when notNull is nil.
func (q Query) OptionalNullBoolean(column string, notNull *bool) Query {
	if notNull == nil {
		return q
	}
	return q.NullBoolean(column, *notNull)
}

// IsNull adds "<column> is null".
func (q Query) IsNull(column string) Query {
	return q.And(column + " is null")
}

// IsNotNull adds "<column> is not null".
func (q Query) IsNotNull(column string) Query {
	return q.And(column + " is not null")
}
