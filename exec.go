package bindq

import (
	"context"
	"database/sql"
	"fmt"
)

// Queryer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryContext renders q for d and runs it on db. Rows are returned
// unread; mapping them is the caller's job.
func QueryContext(ctx context.Context, db Queryer, d Dialect, q Query) (*sql.Rows, error) {
	query, args, err := q.Compile(d)
	if err != nil {
		return nil, fmt.Errorf("render query: %w", err)
	}
	return db.QueryContext(ctx, query, args...)
}
