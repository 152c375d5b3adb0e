// Package mariadb provides the MariaDB/MySQL dialect for bindq, for use
// with github.com/go-sql-driver/mysql.
package mariadb

import "github.com/zoobzio/bindq"

// numericCast keeps fractional digits; a bare DECIMAL rounds to an integer.
const numericCast = "CAST(? AS DECIMAL(65,30))"

// Dialect renders ? placeholders.
type Dialect struct{}

// New creates a MariaDB dialect.
func New() Dialect {
	return Dialect{}
}

// Name returns "mariadb".
func (Dialect) Name() string {
	return "mariadb"
}

// Placeholder returns ?, wrapped in a decimal cast for numeric variables.
func (Dialect) Placeholder(_ int, b bindq.BindVariable) string {
	switch b.(type) {
	case bindq.Numeric:
		return numericCast
	default:
		return "?"
	}
}

// Arg returns the driver value. UUIDs are bound as CHAR(36) text.
func (Dialect) Arg(b bindq.BindVariable) any {
	switch v := b.(type) {
	case bindq.UniqueID:
		return v.UUID().String()
	default:
		return b.Value()
	}
}
