package bindq

// Statement is a rendered query: SQL with {name} placeholders and the bind
// variables they refer to, in insertion order.
type Statement struct {
	SQL   string
	Binds []BindVariable
}

// Names returns the bind variable names in order.
func (s Statement) Names() []string {
	names := make([]string, len(s.Binds))
	for i, b := range s.Binds {
		names[i] = b.Name()
	}
	return names
}

// Args returns the bind values keyed by name.
func (s Statement) Args() map[string]any {
	args := make(map[string]any, len(s.Binds))
	for _, b := range s.Binds {
		args[b.Name()] = b.Value()
	}
	return args
}

// Interpolate substitutes literal values for placeholders.
//
// Text values are quoted but embedded quotes are NOT escaped. The result is
// for reading in logs only and must never be executed.
func (s Statement) Interpolate() string {
	return rewrite(s.SQL, s.Binds, BindVariable.Literal)
}

// Compile rewrites placeholders for d and returns the driver arguments,
// one per placeholder occurrence.
func (s Statement) Compile(d Dialect) (string, []any) {
	var args []any
	sql := rewrite(s.SQL, s.Binds, func(b BindVariable) string {
		args = append(args, d.Arg(b))
		return d.Placeholder(len(args), b)
	})
	return sql, args
}
