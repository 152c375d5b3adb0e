// Package postgres provides the PostgreSQL dialect for bindq.
//
// Placeholders keep their ::numeric and ::uuid casts. Positional output uses
// $1, $2, ... for database/sql drivers such as lib/pq; Named output uses
// @name with pgx.NamedArgs.
package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/zoobzio/bindq"
)

// Dialect renders positional $n placeholders.
type Dialect struct{}

// New creates a PostgreSQL dialect.
func New() Dialect {
	return Dialect{}
}

// Name returns "postgres".
func (Dialect) Name() string {
	return "postgres"
}

// Placeholder returns $position followed by the variable's cast.
func (Dialect) Placeholder(position int, b bindq.BindVariable) string {
	return "$" + strconv.Itoa(position) + b.Cast()
}

// Arg returns the driver value. UUIDs are passed as their canonical text.
func (Dialect) Arg(b bindq.BindVariable) any {
	return arg(b)
}

func arg(b bindq.BindVariable) any {
	if id, ok := b.(bindq.UniqueID); ok {
		return id.UUID().String()
	}
	return b.Value()
}

// named renders @key placeholders for pgx.NamedArgs. pgx reads only
// letters, digits and underscores after @, so each bind name is mapped to
// a key made of those.
type named struct {
	keys map[string]string
}

func newNamed(binds []bindq.BindVariable) named {
	n := named{keys: make(map[string]string, len(binds))}
	taken := make(map[string]struct{}, len(binds))
	for _, b := range binds {
		key := namedKey(b.Name())
		if _, ok := taken[key]; ok {
			for i := 2; ; i++ {
				next := key + "_" + strconv.Itoa(i)
				if _, ok := taken[next]; !ok {
					key = next
					break
				}
			}
		}
		taken[key] = struct{}{}
		n.keys[b.Name()] = key
	}
	return n
}

// namedKey replaces every character pgx would not read as part of a name.
func namedKey(name string) string {
	key := []byte(name)
	for i, c := range key {
		if !isNameChar(c) {
			key[i] = '_'
		}
	}
	if len(key) == 0 || (key[0] >= '0' && key[0] <= '9') {
		return "_" + string(key)
	}
	return string(key)
}

func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func (named) Name() string { return "postgres-named" }

func (n named) Placeholder(_ int, b bindq.BindVariable) string {
	return "@" + n.keys[b.Name()] + b.Cast()
}

func (named) Arg(b bindq.BindVariable) any { return arg(b) }

// Positional rewrites stmt with $n placeholders.
func Positional(stmt bindq.Statement) (string, []any) {
	return stmt.Compile(Dialect{})
}

// Named rewrites stmt with @key placeholders and returns matching
// pgx.NamedArgs. The key is the bind name when it is already a plain
// identifier; other characters become underscores.
func Named(stmt bindq.Statement) (string, pgx.NamedArgs) {
	n := newNamed(stmt.Binds)
	sql, _ := stmt.Compile(n)
	args := make(pgx.NamedArgs, len(stmt.Binds))
	for _, b := range stmt.Binds {
		args[n.keys[b.Name()]] = arg(b)
	}
	return sql, args
}

// Querier is satisfied by *pgx.Conn, pgx.Tx and *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query renders q and runs it on db using named arguments.
func Query(ctx context.Context, db Querier, q bindq.Query) (pgx.Rows, error) {
	stmt, err := q.Render()
	if err != nil {
		return nil, fmt.Errorf("render query: %w", err)
	}
	sql, args := Named(stmt)
	return db.Query(ctx, sql, args)
}
