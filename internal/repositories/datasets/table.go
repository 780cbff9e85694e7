// Package datasets implements the generic replacement-mirror repository
// shared by all reference datasets. Each dataset differs only in its table
// name, column list, and row type; a Table[T] value captures exactly those
// differences so the transaction boilerplate exists once.
package datasets

import (
	"database/sql"
)

// Table describes how one reference dataset maps onto its SQLite table.
type Table[T any] struct {
	// Name is the SQLite table name. It is interpolated into DELETE
	// statements and must never come from user input.
	Name string

	// Insert is the full INSERT statement with ? placeholders.
	Insert string

	// Select is the full SELECT statement, ordered by the dataset's
	// human-meaningful key so list rendering is deterministic.
	Select string

	// Bind produces the Insert arguments for one row.
	Bind func(row T) []any

	// Scan reads one row from a Select result set.
	Scan func(rows *sql.Rows) (T, error)
}
