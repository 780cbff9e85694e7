// Package ledger tracks the last successful remote fetch per dataset and
// implements the once-per-calendar-day refresh gate.
package ledger

import (
	"context"
	"time"
)

// Repository stores one timestamp per dataset name.
type Repository interface {
	// LastFetched returns the stored timestamp for dataset. The second
	// return value is false when no row exists.
	LastFetched(ctx context.Context, dataset string) (time.Time, bool, error)

	// MarkFetched upserts the timestamp for dataset.
	MarkFetched(ctx context.Context, dataset string, at time.Time) error

	// Delete removes the dataset's row, forcing the next gate check to
	// allow a fetch. Deleting an absent row is not an error.
	Delete(ctx context.Context, dataset string) error
}
