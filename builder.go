package bindq

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Query is an immutable SQL query under construction.
// The zero value is an empty query with a no-op logger; use New.
type Query struct {
	logger     zerolog.Logger
	err        error
	limit      *uint
	offset     *uint
	base       string
	conditions []string
	binds      []BindVariable
	orderBy    []string
	debug      bool
}

// Option configures a Query at construction.
type Option func(*Query)

// WithLogger sets the logger that receives debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(q *Query) {
		q.logger = logger
	}
}

// WithDebug enables debug output on Render.
func WithDebug() Option {
	return func(q *Query) {
		q.debug = true
	}
}

// New creates a Query from a base SQL fragment such as "select * from orders".
// Debug output goes to stderr unless WithLogger is given.
func New(base string, opts ...Option) Query {
	q := Query{
		base:   base,
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Err returns the error recorded by an earlier operation, if any.
func (q Query) Err() error {
	return q.err
}

// Base returns the base SQL fragment.
func (q Query) Base() string {
	return q.base
}

// Conditions returns a copy of the accumulated conditions.
func (q Query) Conditions() []string {
	return clone(q.conditions)
}

// Binds returns a copy of the accumulated bind variables.
func (q Query) Binds() []BindVariable {
	return clone(q.binds)
}

// Debug returns a Query with debug output switched on or off.
func (q Query) Debug(enabled bool) Query {
	q.debug = enabled
	return q
}

// CompareOption adjusts how a comparison renders its two sides.
type CompareOption func(*compareConfig)

type compareConfig struct {
	columnFuncs []Function
	valueFuncs  []Function
	valueSet    bool
}

// ColumnFuncs wraps the column side of a comparison.
func ColumnFuncs(fns ...Function) CompareOption {
	return func(c *compareConfig) {
		c.columnFuncs = fns
	}
}

// ValueFuncs wraps the placeholder side of a comparison. Passing no
// functions clears a helper's default.
func ValueFuncs(fns ...Function) CompareOption {
	return func(c *compareConfig) {
		c.valueFuncs = fns
		c.valueSet = true
	}
}

func newCompareConfig(opts []CompareOption, defaultValueFuncs ...Function) compareConfig {
	var cfg compareConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.valueSet {
		cfg.valueFuncs = defaultValueFuncs
	}
	return cfg
}

// Compare adds "<column> <op> <placeholder>" and its bind variable.
// It panics if v is nil; use OptionalCompare for values that may be absent.
func (q Query) Compare(column string, op Operator, v Value, opts ...CompareOption) Query {
	return q.compare(column, op, v, newCompareConfig(opts))
}

// OptionalCompare is Compare, or a no-op when v is nil.
func (q Query) OptionalCompare(column string, op Operator, v Value, opts ...CompareOption) Query {
	if v == nil {
		return q
	}
	return q.Compare(column, op, v, opts...)
}

func (q Query) compare(column string, op Operator, v Value, cfg compareConfig) Query {
	if q.err != nil {
		return q
	}
	if v == nil {
		panic(fmt.Errorf("bindq: nil value for column %q", column))
	}
	b := v.bind(uniqueName(column, q.binds))
	cond := fmt.Sprintf("%s %s %s",
		Apply(column, cfg.columnFuncs...),
		op,
		Apply(b.Placeholder(), cfg.valueFuncs...))
	return q.with([]string{cond}, []BindVariable{b})
}

// Equals adds "<column> = <value>".
func (q Query) Equals(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, EQ, v, opts...)
}

// OptionalEquals is Equals, or a no-op when v is nil.
func (q Query) OptionalEquals(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, EQ, v, opts...)
}

// NotEquals adds "<column> != <value>".
func (q Query) NotEquals(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, NE, v, opts...)
}

// OptionalNotEquals is NotEquals, or a no-op when v is nil.
func (q Query) OptionalNotEquals(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, NE, v, opts...)
}

// LessThan adds "<column> < <value>".
func (q Query) LessThan(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, LT, v, opts...)
}

// OptionalLessThan is LessThan, or a no-op when v is nil.
func (q Query) OptionalLessThan(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, LT, v, opts...)
}

// LessThanOrEquals adds "<column> <= <value>".
func (q Query) LessThanOrEquals(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, LE, v, opts...)
}

// OptionalLessThanOrEquals is LessThanOrEquals, or a no-op when v is nil.
func (q Query) OptionalLessThanOrEquals(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, LE, v, opts...)
}

// GreaterThan adds "<column> > <value>".
func (q Query) GreaterThan(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, GT, v, opts...)
}

// OptionalGreaterThan is GreaterThan, or a no-op when v is nil.
func (q Query) OptionalGreaterThan(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, GT, v, opts...)
}

// GreaterThanOrEquals adds "<column> >= <value>".
func (q Query) GreaterThanOrEquals(column string, v Value, opts ...CompareOption) Query {
	return q.Compare(column, GE, v, opts...)
}

// OptionalGreaterThanOrEquals is GreaterThanOrEquals, or a no-op when v is nil.
func (q Query) OptionalGreaterThanOrEquals(column string, v Value, opts ...CompareOption) Query {
	return q.OptionalCompare(column, GE, v, opts...)
}

// Text adds an equality comparison whose value side is trimmed unless
// ValueFuncs says otherwise.
func (q Query) Text(column, value string, opts ...CompareOption) Query {
	return q.compare(column, EQ, Str(value), newCompareConfig(opts, Trim))
}

// OptionalText is Text, or a no-op when value is nil.
func (q Query) OptionalText(column string, value *string, opts ...CompareOption) Query {
	if value == nil {
		return q
	}
	return q.Text(column, *value, opts...)
}

// Bind adds a bind variable with an exact name and no condition, for clause
// text that references {name} directly. A name already in use records a
// DuplicateBindError.
func (q Query) Bind(name string, v Value) Query {
	if q.err != nil {
		return q
	}
	if v == nil {
		panic(fmt.Errorf("bindq: nil value for bind %q", name))
	}
	for _, b := range q.binds {
		if b.Name() == name {
			q.err = DuplicateBindError{Name: name}
			return q
		}
	}
	return q.with(nil, []BindVariable{v.bind(name)})
}

// OptionalBind is Bind, or a no-op when v is nil.
func (q Query) OptionalBind(name string, v Value) Query {
	if v == nil {
		return q
	}
	return q.Bind(name, v)
}

// OrderBy appends an ordering expression such as "created_at desc".
func (q Query) OrderBy(expr string) Query {
	if q.err != nil {
		return q
	}
	q.orderBy = appendClone(q.orderBy, expr)
	return q
}

// OptionalOrderBy is OrderBy, or a no-op when expr is nil.
func (q Query) OptionalOrderBy(expr *string) Query {
	if expr == nil {
		return q
	}
	return q.OrderBy(*expr)
}

// Limit sets the limit, replacing any earlier one.
func (q Query) Limit(limit uint) Query {
	if q.err != nil {
		return q
	}
	q.limit = &limit
	return q
}

// OptionalLimit is Limit, or a no-op when limit is nil.
func (q Query) OptionalLimit(limit *uint) Query {
	if limit == nil {
		return q
	}
	return q.Limit(*limit)
}

// Offset sets the offset, replacing any earlier one.
func (q Query) Offset(offset uint) Query {
	if q.err != nil {
		return q
	}
	q.offset = &offset
	return q
}

// OptionalOffset is Offset, or a no-op when offset is nil.
func (q Query) OptionalOffset(offset *uint) Query {
	if offset == nil {
		return q
	}
	return q.Offset(*offset)
}

// with returns q extended by conds and binds. The receiver's slices are
// never appended to in place.
func (q Query) with(conds []string, binds []BindVariable) Query {
	if len(conds) > 0 {
		q.conditions = appendClone(q.conditions, conds...)
	}
	if len(binds) > 0 {
		q.binds = appendClone(q.binds, binds...)
	}
	return q
}

func appendClone[T any](s []T, xs ...T) []T {
	out := make([]T, 0, len(s)+len(xs))
	out = append(out, s...)
	return append(out, xs...)
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return appendClone(s)
}
