package datasets

import (
	"context"
	"database/sql"
	"fmt"

	"crewmirror/internal/dbx"
)

// SQLiteRepository is the replacement-mirror store for one dataset.
type SQLiteRepository[T any] struct {
	db    *sql.DB
	table Table[T]
}

// NewSQLiteRepository binds a dataset table spec to a database handle.
func NewSQLiteRepository[T any](db *sql.DB, table Table[T]) *SQLiteRepository[T] {
	return &SQLiteRepository[T]{db: db, table: table}
}

// Replace atomically swaps the table contents for rows. The delete runs
// even when rows is empty: an empty remote result must still clear the
// stale mirror, skipping the whole replace would not.
func (r *SQLiteRepository[T]) Replace(ctx context.Context, rows []T) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+r.table.Name); err != nil {
			return fmt.Errorf("failed to clear %s: %w", r.table.Name, err)
		}
		for _, row := range rows {
			if _, err := tx.ExecContext(ctx, r.table.Insert, r.table.Bind(row)...); err != nil {
				return fmt.Errorf("failed to insert into %s: %w", r.table.Name, err)
			}
		}
		return nil
	})
}

// ListAll returns every row in the dataset's stable order.
func (r *SQLiteRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.table.Select)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", r.table.Name, err)
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		item, err := r.table.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table.Name, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.table.Name, err)
	}
	return result, nil
}

// Clear removes every row. Used by the structural-corruption reset path.
func (r *SQLiteRepository[T]) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM "+r.table.Name); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.table.Name, err)
	}
	return nil
}

// Count returns the current row count.
func (r *SQLiteRepository[T]) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.table.Name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", r.table.Name, err)
	}
	return n, nil
}
