package ledger

import (
	"context"
	"time"
)

// Gate decides whether a dataset is due for a remote fetch. The policy is
// per calendar date in local time, not a rolling 24h window: a fetch at
// 23:59 and another at 00:01 the next day are both allowed, two fetches
// on the same date are not. Each dataset is gated independently.
type Gate struct {
	repo Repository
	now  func() time.Time
}

func NewGate(repo Repository) *Gate {
	return &Gate{repo: repo, now: time.Now}
}

// NewGateWithClock allows tests to pin the current time.
func NewGateWithClock(repo Repository, now func() time.Time) *Gate {
	return &Gate{repo: repo, now: now}
}

// ShouldFetch reports whether dataset has not yet been fetched today.
// A ledger read error fails open: a redundant fetch is cheaper than a
// mirror stuck stale.
func (g *Gate) ShouldFetch(ctx context.Context, dataset string) bool {
	at, ok, err := g.repo.LastFetched(ctx, dataset)
	if err != nil || !ok {
		return true
	}
	y1, m1, d1 := at.Local().Date()
	y2, m2, d2 := g.now().Local().Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// MarkFetched stamps dataset with the current time.
func (g *Gate) MarkFetched(ctx context.Context, dataset string) error {
	return g.repo.MarkFetched(ctx, dataset, g.now())
}

// Reset drops the dataset's stamp so the next check allows a fetch.
func (g *Gate) Reset(ctx context.Context, dataset string) error {
	return g.repo.Delete(ctx, dataset)
}
