package types

// Function is a textual transform applied to a column or value expression.
// The set of implementations is closed: Lower, Trim and Custom.
type Function interface {
	Wrap(expr string) string
	isFunction()
}

// Lower wraps an expression in lower().
type Lower struct{}

// Trim wraps an expression in trim().
type Trim struct{}

// Custom wraps an expression in a caller-named SQL function.
type Custom struct {
	Name string
}

func (Lower) Wrap(expr string) string    { return "lower(" + expr + ")" }
func (Trim) Wrap(expr string) string     { return "trim(" + expr + ")" }
func (c Custom) Wrap(expr string) string { return c.Name + "(" + expr + ")" }

func (Lower) isFunction()  {}
func (Trim) isFunction()   {}
func (Custom) isFunction() {}

// Apply wraps expr with each function in order, so the first function
// ends up innermost.
func Apply(expr string, fns []Function) string {
	for _, fn := range fns {
		expr = fn.Wrap(expr)
	}
	return expr
}
