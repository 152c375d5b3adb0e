package bindq

// Dialect rewrites bind variables for a specific database driver.
type Dialect interface {
	// Name identifies the dialect, e.g. "postgres".
	Name() string

	// Placeholder returns the driver placeholder, including any cast, for
	// the variable at the 1-based position.
	Placeholder(position int, b BindVariable) string

	// Arg returns the driver argument for the variable.
	Arg(b BindVariable) any
}
