// Package services contains the application services that drive the
// mirror: per-dataset refresh orchestration and profile load/save.
package services

import (
	"context"
	"fmt"

	"crewmirror/internal/logging"
	"crewmirror/internal/repositories/ledger"
)

// Result is the outcome of one refresh attempt.
//
// Success with nil Data means the daily gate was closed and the caller
// should read from cache; it is a deliberate no-op, not a failure.
// A failed Result is likewise non-fatal: reference data going stale for
// a day is acceptable, so callers fall back to LoadLocal instead of
// surfacing the error.
type Result[T any] struct {
	Success bool
	Data    []T
	Message string
}

// DatasetRepo is the slice of the store one refresh pipeline needs.
type DatasetRepo[T any] interface {
	Replace(ctx context.Context, rows []T) error
	ListAll(ctx context.Context) ([]T, error)
	Clear(ctx context.Context) error
}

// FetchFunc retrieves and normalizes one dataset from the remote service.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// DatasetSync orchestrates the refresh pipeline for one dataset. All six
// pipelines are structurally identical; only the endpoint, row shape,
// and table differ, which is exactly what the type parameter and the
// injected fetch/repo capture.
type DatasetSync[T any] struct {
	dataset string
	fetch   FetchFunc[T]
	repo    DatasetRepo[T]
	gate    *ledger.Gate
	log     logging.Logger
}

func NewDatasetSync[T any](dataset string, fetch FetchFunc[T], repo DatasetRepo[T], gate *ledger.Gate, log logging.Logger) *DatasetSync[T] {
	return &DatasetSync[T]{dataset: dataset, fetch: fetch, repo: repo, gate: gate, log: log}
}

// Dataset returns the dataset name this pipeline serves.
func (s *DatasetSync[T]) Dataset() string {
	return s.dataset
}

// Refresh runs the fetch-replace-stamp pipeline if the daily gate allows
// it. The ledger is stamped only after the replace commits, so a failed
// transaction leaves the gate open for a retry on the next call.
func (s *DatasetSync[T]) Refresh(ctx context.Context) Result[T] {
	if !s.gate.ShouldFetch(ctx, s.dataset) {
		return Result[T]{Success: true, Message: "cache is fresh"}
	}

	rows, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetch failed, serving cached data", "dataset", s.dataset, "error", err)
		return Result[T]{Message: fmt.Sprintf("fetch failed: %v", err)}
	}

	if err := s.repo.Replace(ctx, rows); err != nil {
		s.log.Error(ctx, "replace failed, mirror left at previous state", "dataset", s.dataset, "error", err)
		return Result[T]{Message: fmt.Sprintf("save failed: %v", err)}
	}

	if err := s.gate.MarkFetched(ctx, s.dataset); err != nil {
		// The data is committed; worst case the next call re-fetches.
		s.log.Warn(ctx, "failed to stamp ledger", "dataset", s.dataset, "error", err)
	}

	s.log.Info(ctx, "dataset refreshed", "dataset", s.dataset, "rows", len(rows))
	return Result[T]{Success: true, Data: rows}
}

// LoadLocal reads the cached rows in their stable order. It never fails:
// a read error degrades to an empty list.
func (s *DatasetSync[T]) LoadLocal(ctx context.Context) []T {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error(ctx, "local read failed", "dataset", s.dataset, "error", err)
		return []T{}
	}
	if rows == nil {
		return []T{}
	}
	return rows
}

// LoadAndRefresh refreshes if due and returns the freshest rows
// available: fetched rows on success, cached rows otherwise.
func (s *DatasetSync[T]) LoadAndRefresh(ctx context.Context) []T {
	res := s.Refresh(ctx)
	if res.Success && res.Data != nil {
		return res.Data
	}
	return s.LoadLocal(ctx)
}

// Reset clears the mirror table and its ledger stamp, forcing a full
// fetch on the next refresh. Used when a consumer detects structurally
// invalid cached data.
func (s *DatasetSync[T]) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear %s mirror: %w", s.dataset, err)
	}
	if err := s.gate.Reset(ctx, s.dataset); err != nil {
		return fmt.Errorf("failed to reset %s ledger entry: %w", s.dataset, err)
	}
	return nil
}
