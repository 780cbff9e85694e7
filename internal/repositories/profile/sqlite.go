package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crewmirror/internal/dbx"
	"crewmirror/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load reads the singleton user row and every child collection, then
// groups driver assignments by weekday. Any read error fails the whole
// load; a partial aggregate is never returned.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Profile, error) {
	user, err := r.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	p := &models.Profile{User: *user}

	if p.Images, err = r.scanStrings(ctx, `SELECT image FROM staff_images`); err != nil {
		return nil, err
	}
	if p.Videos, err = r.scanStrings(ctx, `SELECT video FROM staff_videos`); err != nil {
		return nil, err
	}
	if p.ZoneIDs, err = r.scanInt64s(ctx, `SELECT zone_id FROM staff_zone_links`); err != nil {
		return nil, err
	}
	if p.CategoryIDs, err = r.scanInt64s(ctx, `SELECT category_id FROM staff_category_links`); err != nil {
		return nil, err
	}
	if p.ServiceIDs, err = r.scanInt64s(ctx, `SELECT service_id FROM staff_service_links`); err != nil {
		return nil, err
	}
	if p.DesignationIDs, err = r.scanInt64s(ctx, `SELECT designation_id FROM staff_designation_links`); err != nil {
		return nil, err
	}
	if p.TimeSlotIDs, err = r.scanInt64s(ctx, `SELECT time_slot_id FROM staff_time_slot_links`); err != nil {
		return nil, err
	}
	if p.Documents, err = r.loadDocuments(ctx); err != nil {
		return nil, err
	}

	assignments, err := r.loadAssignments(ctx)
	if err != nil {
		return nil, err
	}
	p.DriverAssignments = models.GroupAssignmentsByDay(assignments)

	return p, nil
}

func (r *SQLiteRepository) loadUser(ctx context.Context) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, whatsapp, get_quote, status, image,
		       location, nationality, about, created_at, updated_at
		FROM staff_users LIMIT 1`)

	var u models.User
	var createdAt, updatedAt string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Whatsapp, &u.GetQuote,
		&u.Status, &u.Image, &u.Location, &u.Nationality, &u.About, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load staff user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

func (r *SQLiteRepository) loadDocuments(ctx context.Context) (*models.Documents, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT address_proof, noc, id_card_front, id_card_back, passport,
		       driving_license, education, other
		FROM staff_documents LIMIT 1`)

	var d models.Documents
	err := row.Scan(&d.AddressProof, &d.NOC, &d.IDCardFront, &d.IDCardBack,
		&d.Passport, &d.DrivingLicense, &d.Education, &d.Other)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return &d, nil
}

func (r *SQLiteRepository) loadAssignments(ctx context.Context) ([]models.DriverAssignment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, staff_id, driver_id, time_slot_id, day FROM driver_assignments`)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver assignments: %w", err)
	}
	defer rows.Close()

	var result []models.DriverAssignment
	for rows.Next() {
		var a models.DriverAssignment
		if err := rows.Scan(&a.ID, &a.StaffID, &a.DriverID, &a.TimeSlotID, &a.Day); err != nil {
			return nil, fmt.Errorf("failed to scan driver assignment: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate driver assignments: %w", err)
	}
	return result, nil
}

// Save rewrites every table the bulk writer owns in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, p *models.Profile) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM staff_users`); err != nil {
			return fmt.Errorf("failed to clear staff_users: %w", err)
		}
		u := p.User
		_, err := tx.ExecContext(ctx, `
			INSERT INTO staff_users (id, name, email, phone, whatsapp, get_quote,
				status, image, location, nationality, about, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Email, u.Phone, u.Whatsapp, u.GetQuote, u.Status,
			u.Image, u.Location, u.Nationality, u.About,
			formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to insert staff user: %w", err)
		}

		if err := replaceScalars(ctx, tx, "staff_images", "image", p.Images); err != nil {
			return err
		}
		if err := replaceScalars(ctx, tx, "staff_videos", "video", p.Videos); err != nil {
			return err
		}
		if err := replaceScalars(ctx, tx, "staff_zone_links", "zone_id", p.ZoneIDs); err != nil {
			return err
		}
		if err := replaceScalars(ctx, tx, "staff_category_links", "category_id", p.CategoryIDs); err != nil {
			return err
		}
		if err := replaceScalars(ctx, tx, "staff_service_links", "service_id", p.ServiceIDs); err != nil {
			return err
		}
		if err := replaceScalars(ctx, tx, "staff_designation_links", "designation_id", p.DesignationIDs); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM staff_documents`); err != nil {
			return fmt.Errorf("failed to clear staff_documents: %w", err)
		}
		if d := p.Documents; d != nil {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO staff_documents (address_proof, noc, id_card_front,
					id_card_back, passport, driving_license, education, other)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				d.AddressProof, d.NOC, d.IDCardFront, d.IDCardBack,
				d.Passport, d.DrivingLicense, d.Education, d.Other)
			if err != nil {
				return fmt.Errorf("failed to insert documents: %w", err)
			}
		}

		// staff_time_slot_links and driver_assignments stay untouched:
		// the wizard writes them through their own savers.
		return nil
	})
}

func (r *SQLiteRepository) SaveTimeSlotLinks(ctx context.Context, timeSlotIDs []int64) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return replaceScalars(ctx, tx, "staff_time_slot_links", "time_slot_id", timeSlotIDs)
	})
}

func (r *SQLiteRepository) SaveDriverAssignments(ctx context.Context, assignments []models.DriverAssignment) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM driver_assignments`); err != nil {
			return fmt.Errorf("failed to clear driver_assignments: %w", err)
		}
		for _, a := range assignments {
			if a.IsPlaceholder() {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO driver_assignments (staff_id, driver_id, time_slot_id, day)
				VALUES (?, ?, ?, ?)`,
				a.StaffID, a.DriverID, a.TimeSlotID, a.Day)
			if err != nil {
				return fmt.Errorf("failed to insert driver assignment: %w", err)
			}
		}
		return nil
	})
}

// replaceScalars rewrites a one-column child table.
func replaceScalars[T any](ctx context.Context, tx dbx.DBTX, table, column string, values []T) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	for _, v := range values {
		if _, err := tx.ExecContext(ctx, "INSERT INTO "+table+" ("+column+") VALUES (?)", v); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) scanStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) scanInt64s(ctx context.Context, query string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

// Remote payloads carry "2006-01-02 15:04:05"; locally written rows use
// RFC3339. An unparseable value degrades to the zero time rather than
// failing the load.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
