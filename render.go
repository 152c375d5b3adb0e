package bindq

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zoobzio/bindq/internal/types"
)

// Render produces the parameterized SQL and its bind variables, or the
// error recorded while building. With debug enabled, the interpolated SQL
// is logged before returning.
func (q Query) Render() (Statement, error) {
	if q.err != nil {
		return Statement{}, q.err
	}

	stmt := Statement{
		SQL:   q.sql(),
		Binds: clone(q.binds),
	}

	if q.debug {
		q.logger.Log().
			Str("sql", stmt.Interpolate()).
			Int("binds", len(stmt.Binds)).
			Msg("bindq query")
	}

	return stmt, nil
}

// MustRender renders the query or panics on error.
func (q Query) MustRender() Statement {
	stmt, err := q.Render()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Compile renders the query and rewrites it for a driver dialect.
func (q Query) Compile(d Dialect) (string, []any, error) {
	stmt, err := q.Render()
	if err != nil {
		return "", nil, err
	}
	sql, args := stmt.Compile(d)
	return sql, args, nil
}

// sql assembles the clauses in the order SQL requires: where, order by,
// limit, offset.
func (q Query) sql() string {
	parts := []string{q.base}
	if len(q.conditions) > 0 {
		parts = append(parts, "where "+strings.Join(q.conditions, " and "))
	}
	if len(q.orderBy) > 0 {
		parts = append(parts, "order by "+strings.Join(q.orderBy, ", "))
	}
	if q.limit != nil {
		parts = append(parts, "limit "+strconv.FormatUint(uint64(*q.limit), 10))
	}
	if q.offset != nil {
		parts = append(parts, "offset "+strconv.FormatUint(uint64(*q.offset), 10))
	}
	return strings.Join(parts, " ")
}

// rewrite replaces every {name} token that names one of binds, together
// with that variable's cast suffix when it follows the token. Tokens are
// matched against the known names, longest first, so names that contain
// braces themselves are found whole. Tokens that name no variable are left
// as they are.
func rewrite(sql string, binds []BindVariable, replace func(BindVariable) string) string {
	known := clone(binds)
	sort.SliceStable(known, func(i, j int) bool {
		return len(known[i].Name()) > len(known[j].Name())
	})

	var out strings.Builder
	out.Grow(len(sql))
	for {
		open := strings.IndexByte(sql, '{')
		if open < 0 {
			break
		}
		out.WriteString(sql[:open])
		sql = sql[open:]

		b := matchToken(sql, known)
		if b == nil {
			out.WriteByte('{')
			sql = sql[1:]
			continue
		}

		out.WriteString(replace(b))
		sql = sql[len(types.Token(b.Name())):]
		if c := b.Cast(); c != "" && strings.HasPrefix(sql, c) {
			sql = sql[len(c):]
		}
	}
	out.WriteString(sql)
	return out.String()
}

// matchToken returns the first variable in binds whose token starts sql.
func matchToken(sql string, binds []BindVariable) BindVariable {
	for _, b := range binds {
		if strings.HasPrefix(sql, types.Token(b.Name())) {
			return b
		}
	}
	return nil
}
