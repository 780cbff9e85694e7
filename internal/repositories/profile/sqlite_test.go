package profile

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"crewmirror/internal/common"
	"crewmirror/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE staff_users (
  id INTEGER PRIMARY KEY, name TEXT NOT NULL DEFAULT '', email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '', whatsapp TEXT NOT NULL DEFAULT '',
  get_quote INTEGER NOT NULL DEFAULT 0, status TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '', location TEXT NOT NULL DEFAULT '',
  nationality TEXT NOT NULL DEFAULT '', about TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT '', updated_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE staff_images (image TEXT NOT NULL);
CREATE TABLE staff_videos (video TEXT NOT NULL);
CREATE TABLE staff_zone_links (zone_id INTEGER NOT NULL);
CREATE TABLE staff_category_links (category_id INTEGER NOT NULL);
CREATE TABLE staff_service_links (service_id INTEGER NOT NULL);
CREATE TABLE staff_designation_links (designation_id INTEGER NOT NULL);
CREATE TABLE staff_time_slot_links (time_slot_id INTEGER NOT NULL);
CREATE TABLE staff_documents (
  address_proof TEXT NOT NULL DEFAULT '', noc TEXT NOT NULL DEFAULT '',
  id_card_front TEXT NOT NULL DEFAULT '', id_card_back TEXT NOT NULL DEFAULT '',
  passport TEXT NOT NULL DEFAULT '', driving_license TEXT NOT NULL DEFAULT '',
  education TEXT NOT NULL DEFAULT '', other TEXT NOT NULL DEFAULT ''
);
CREATE TABLE driver_assignments (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  staff_id INTEGER, driver_id INTEGER, time_slot_id INTEGER, day TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func int64p(v int64) *int64 { return &v }

func sampleProfile() *models.Profile {
	return &models.Profile{
		User: models.User{
			ID: 42, Name: "Amira", Email: "amira@example.com", Phone: "+971500000001",
			Whatsapp: "+971500000001", GetQuote: true, Status: "active",
			Image: "avatars/42.jpg", Location: "Dubai Marina", Nationality: "AE",
			About:     "Senior groomer",
			CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 2, 3, 11, 30, 0, 0, time.UTC),
		},
		Images:         []string{"gallery/1.jpg", "gallery/2.jpg"},
		Videos:         []string{"intro.mp4"},
		ZoneIDs:        []int64{3, 5},
		CategoryIDs:    []int64{1, 2, 9},
		ServiceIDs:     []int64{11},
		DesignationIDs: []int64{4},
		Documents: &models.Documents{
			AddressProof: "docs/proof.pdf", IDCardFront: "docs/front.jpg",
			IDCardBack: "docs/back.jpg", Passport: "docs/passport.jpg",
		},
	}
}

func TestLoad_NoUserReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	p, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveThenLoad_RoundTripsOwnedFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	want := sampleProfile()
	require.NoError(t, r.Save(ctx, want))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.User, got.User)
	assert.Equal(t, want.Images, got.Images)
	assert.Equal(t, want.Videos, got.Videos)
	assert.Equal(t, want.ZoneIDs, got.ZoneIDs)
	assert.Equal(t, want.CategoryIDs, got.CategoryIDs)
	assert.Equal(t, want.ServiceIDs, got.ServiceIDs)
	assert.Equal(t, want.DesignationIDs, got.DesignationIDs)
	require.NotNil(t, got.Documents)
	assert.Equal(t, *want.Documents, *got.Documents)
}

func TestSave_DoesNotTouchWizardOwnedTables(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO staff_time_slot_links (time_slot_id) VALUES (7)`)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO driver_assignments (staff_id, driver_id, time_slot_id, day)
		VALUES (42, 5, 7, 'Monday')`)
	require.NoError(t, err)

	require.NoError(t, r.Save(ctx, sampleProfile()))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []int64{7}, got.TimeSlotIDs, "time-slot links must survive a bulk save")

	monday := got.DriverAssignments["Monday"]
	require.Len(t, monday, 1)
	assert.False(t, monday[0].IsPlaceholder(), "driver assignments must survive a bulk save")
}

func TestSave_ReplacesPreviousProfile(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, sampleProfile()))

	second := sampleProfile()
	second.User.ID = 43
	second.User.Name = "Bilal"
	second.Images = []string{"gallery/other.jpg"}
	second.Documents = nil
	require.NoError(t, r.Save(ctx, second))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(43), got.User.ID)
	assert.Equal(t, []string{"gallery/other.jpg"}, got.Images)
	assert.Nil(t, got.Documents)
}

func TestSave_FailureRollsBackEverything(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	original := sampleProfile()
	require.NoError(t, r.Save(ctx, original))

	// Break a table written late in the transaction; the user row
	// written early must be rolled back along with it.
	_, err := db.Exec(`DROP TABLE staff_documents`)
	require.NoError(t, err)

	broken := sampleProfile()
	broken.User.ID = 99
	require.Error(t, r.Save(ctx, broken))

	var id int64
	require.NoError(t, db.QueryRow(`SELECT id FROM staff_users`).Scan(&id))
	assert.Equal(t, int64(42), id, "failed save must leave the previous user row")
}

func TestLoad_GroupsAssignmentsWithPlaceholders(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, sampleProfile()))
	_, err := db.Exec(`
		INSERT INTO driver_assignments (staff_id, driver_id, time_slot_id, day)
		VALUES (9, 5, 2, 'Monday')`)
	require.NoError(t, err)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.DriverAssignments, 7)
	monday := got.DriverAssignments["Monday"]
	require.Len(t, monday, 1)
	assert.Equal(t, int64(5), *monday[0].DriverID)
	assert.Equal(t, int64(9), *monday[0].StaffID)
	assert.Equal(t, int64(2), *monday[0].TimeSlotID)

	for _, day := range common.Weekdays[1:] {
		rows := got.DriverAssignments[day]
		require.Len(t, rows, 1, "day %s", day)
		assert.True(t, rows[0].IsPlaceholder(), "day %s should be a placeholder", day)
	}
}

func TestSaveTimeSlotLinks_Replaces(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, sampleProfile()))
	require.NoError(t, r.SaveTimeSlotLinks(ctx, []int64{1, 2}))
	require.NoError(t, r.SaveTimeSlotLinks(ctx, []int64{3}))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []int64{3}, got.TimeSlotIDs)
}

func TestSaveDriverAssignments_SkipsPlaceholders(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, sampleProfile()))

	rows := []models.DriverAssignment{
		{StaffID: int64p(42), DriverID: int64p(5), TimeSlotID: int64p(2), Day: "Monday"},
		{Day: "Tuesday"}, // placeholder, must not be persisted
	}
	require.NoError(t, r.SaveDriverAssignments(ctx, rows))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	monday := got.DriverAssignments["Monday"]
	require.Len(t, monday, 1)
	assert.False(t, monday[0].IsPlaceholder())

	tuesday := got.DriverAssignments["Tuesday"]
	require.Len(t, tuesday, 1)
	assert.True(t, tuesday[0].IsPlaceholder(), "placeholder must come from grouping, not storage")
}
