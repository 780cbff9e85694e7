package datasets

import (
	"database/sql"

	"crewmirror/internal/models"
)

// ServicesTable maps the services dataset onto its mirror table.
func ServicesTable() Table[models.Service] {
	return Table[models.Service]{
		Name:   "services",
		Insert: `INSERT INTO services (id, name) VALUES (?, ?)`,
		Select: `SELECT id, name FROM services ORDER BY name`,
		Bind: func(s models.Service) []any {
			return []any{s.ID, s.Name}
		},
		Scan: func(rows *sql.Rows) (models.Service, error) {
			var s models.Service
			err := rows.Scan(&s.ID, &s.Name)
			return s, err
		},
	}
}

// CategoriesTable maps the category tree onto its mirror table.
func CategoriesTable() Table[models.Category] {
	return Table[models.Category]{
		Name:   "categories",
		Insert: `INSERT INTO categories (id, title, parent_id) VALUES (?, ?, ?)`,
		Select: `SELECT id, title, parent_id FROM categories ORDER BY title`,
		Bind: func(c models.Category) []any {
			return []any{c.ID, c.Title, c.ParentID}
		},
		Scan: func(rows *sql.Rows) (models.Category, error) {
			var c models.Category
			err := rows.Scan(&c.ID, &c.Title, &c.ParentID)
			return c, err
		},
	}
}

// DesignationsTable maps the designations dataset onto its mirror table.
func DesignationsTable() Table[models.Designation] {
	return Table[models.Designation]{
		Name:   "designations",
		Insert: `INSERT INTO designations (id, name, parent_id) VALUES (?, ?, ?)`,
		Select: `SELECT id, name, parent_id FROM designations ORDER BY name`,
		Bind: func(d models.Designation) []any {
			return []any{d.ID, d.Name, d.ParentID}
		},
		Scan: func(rows *sql.Rows) (models.Designation, error) {
			var d models.Designation
			err := rows.Scan(&d.ID, &d.Name, &d.ParentID)
			return d, err
		},
	}
}

// ZonesTable maps the zones dataset onto its mirror table.
func ZonesTable() Table[models.Zone] {
	return Table[models.Zone]{
		Name:   "zones",
		Insert: `INSERT INTO zones (id, name, country) VALUES (?, ?, ?)`,
		Select: `SELECT id, name, country FROM zones ORDER BY name`,
		Bind: func(z models.Zone) []any {
			return []any{z.ID, z.Name, z.Country}
		},
		Scan: func(rows *sql.Rows) (models.Zone, error) {
			var z models.Zone
			err := rows.Scan(&z.ID, &z.Name, &z.Country)
			return z, err
		},
	}
}

// TimeSlotsTable maps the time-slots dataset onto its mirror table.
// Slots are ordered by start time, not name; most have no name at all.
func TimeSlotsTable() Table[models.TimeSlot] {
	return Table[models.TimeSlot]{
		Name:   "time_slots",
		Insert: `INSERT INTO time_slots (id, name, time_start, time_end, date, type) VALUES (?, ?, ?, ?, ?, ?)`,
		Select: `SELECT id, name, time_start, time_end, date, type FROM time_slots ORDER BY time_start`,
		Bind: func(ts models.TimeSlot) []any {
			return []any{ts.ID, ts.Name, ts.TimeStart, ts.TimeEnd, ts.Date, ts.Type}
		},
		Scan: func(rows *sql.Rows) (models.TimeSlot, error) {
			var ts models.TimeSlot
			err := rows.Scan(&ts.ID, &ts.Name, &ts.TimeStart, &ts.TimeEnd, &ts.Date, &ts.Type)
			return ts, err
		},
	}
}

// DriversTable maps the drivers dataset onto its mirror table.
func DriversTable() Table[models.Driver] {
	return Table[models.Driver]{
		Name:   "drivers",
		Insert: `INSERT INTO drivers (id, name) VALUES (?, ?)`,
		Select: `SELECT id, name FROM drivers ORDER BY name`,
		Bind: func(d models.Driver) []any {
			return []any{d.ID, d.Name}
		},
		Scan: func(rows *sql.Rows) (models.Driver, error) {
			var d models.Driver
			err := rows.Scan(&d.ID, &d.Name)
			return d, err
		},
	}
}
