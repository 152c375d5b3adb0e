// Package bindq provides an immutable builder for parameterized SQL queries.
//
// A Query starts from a base SQL fragment and accumulates WHERE conditions,
// named bind variables, ordering, and pagination. Every operation returns a
// new Query, so a shared base can be extended concurrently without
// coordination.
//
// # Basic Usage
//
//	stmt, err := bindq.New("select * from orders").
//		OptionalEquals("status", bindq.StrPtr(status)).
//		OptionalIn("id", bindq.Nums(ids)).
//		OrderBy("created_at desc").
//		OptionalLimit(limit).
//		Render()
//	// stmt.SQL:   select * from orders where status = {status} order by created_at desc
//	// stmt.Binds: [status='open']
//
// Optional operations are no-ops when their value is absent, which lets
// callers express "filter by X if present" without branching.
//
// # Placeholders
//
// Placeholders are written as {name}, followed by a ::numeric or ::uuid cast
// for numeric and UUID values. Names are derived from the column: qualifiers
// are stripped, JSON-path expressions such as data->>'status' become
// data_status, and collisions receive a numeric suffix.
//
// # Dialects
//
// Statement.Compile rewrites placeholders for a specific driver. See the
// postgres, sqlite and mariadb packages.
//
// # Debug Output
//
// When debug is enabled, Render logs the statement with literal values
// substituted. That text is for humans only and must never be executed.
package bindq

import "github.com/zoobzio/bindq/internal/types"

// BindVariable is a named, typed placeholder value.
type BindVariable = types.BindVariable

// Bind variable variants.
type (
	Numeric  = types.Numeric
	Text     = types.Text
	UniqueID = types.UniqueID
)

// Function is a textual transform applied to a column or value expression.
type Function = types.Function

// Built-in function wrappers.
var (
	Lower Function = types.Lower{}
	Trim  Function = types.Trim{}
)

// Custom wraps an expression in the named SQL function.
func Custom(name string) Function {
	return types.Custom{Name: name}
}

// Apply wraps expr with fns in order; the first function is innermost.
func Apply(expr string, fns ...Function) string {
	return types.Apply(expr, fns)
}
