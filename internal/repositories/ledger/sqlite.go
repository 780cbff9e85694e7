package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crewmirror/internal/dbx"
)

// SQLiteRepository persists ledger rows in the sync_ledger table.
// Timestamps are stored as RFC3339 text.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LastFetched(ctx context.Context, dataset string) (time.Time, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM sync_ledger WHERE dataset = ?`, dataset).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get ledger[%s]: %w", dataset, err)
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse ledger[%s] timestamp %q: %w", dataset, raw, err)
	}
	return at, true, nil
}

func (r *SQLiteRepository) MarkFetched(ctx context.Context, dataset string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_ledger (dataset, fetched_at) VALUES (?, ?)
		ON CONFLICT(dataset) DO UPDATE SET fetched_at = excluded.fetched_at
	`, dataset, at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to set ledger[%s]: %w", dataset, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, dataset string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sync_ledger WHERE dataset = ?`, dataset)
	if err != nil {
		return fmt.Errorf("failed to delete ledger[%s]: %w", dataset, err)
	}
	return nil
}
