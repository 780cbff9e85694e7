// Package store owns the process-wide SQLite handle and wires every
// repository to it. Open is called once at startup and the resulting
// Store is passed by injection; nothing in this module reaches for a
// package-level database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"crewmirror/internal/filex"
	"crewmirror/internal/models"
	"crewmirror/internal/repositories/appmeta"
	"crewmirror/internal/repositories/datasets"
	"crewmirror/internal/repositories/ledger"
	"crewmirror/internal/repositories/profile"
	"crewmirror/internal/store/migrations"
)

// Store bundles the open database with the repositories bound to it.
type Store struct {
	db *sql.DB

	AppMeta      appmeta.Repository
	Ledger       ledger.Repository
	Services     *datasets.SQLiteRepository[models.Service]
	Categories   *datasets.SQLiteRepository[models.Category]
	Designations *datasets.SQLiteRepository[models.Designation]
	Zones        *datasets.SQLiteRepository[models.Zone]
	TimeSlots    *datasets.SQLiteRepository[models.TimeSlot]
	Drivers      *datasets.SQLiteRepository[models.Driver]
	Profile      profile.Repository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the mirror database at dsn, applies the
// schema, and wires the repositories. The pool is capped at one
// connection: every transaction serializes on it, which is what makes a
// replace invisible in progress to concurrent readers.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Store{
		db:           db,
		AppMeta:      appmeta.NewSQLiteRepository(db),
		Ledger:       ledger.NewSQLiteRepository(db),
		Services:     datasets.NewSQLiteRepository(db, datasets.ServicesTable()),
		Categories:   datasets.NewSQLiteRepository(db, datasets.CategoriesTable()),
		Designations: datasets.NewSQLiteRepository(db, datasets.DesignationsTable()),
		Zones:        datasets.NewSQLiteRepository(db, datasets.ZonesTable()),
		TimeSlots:    datasets.NewSQLiteRepository(db, datasets.TimeSlotsTable()),
		Drivers:      datasets.NewSQLiteRepository(db, datasets.DriversTable()),
		Profile:      profile.NewSQLiteRepository(db),
	}

	if err := s.ensureInstallationID(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// ensureInstallationID assigns a stable per-installation id on first open.
func (s *Store) ensureInstallationID(ctx context.Context) error {
	id, err := s.AppMeta.Get(ctx, appmeta.KeyInstallationID)
	if err != nil {
		return err
	}
	if id != "" {
		return nil
	}
	return s.AppMeta.Set(ctx, appmeta.KeyInstallationID, uuid.NewString())
}

// DB exposes the underlying handle for ad-hoc queries in tests and tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
