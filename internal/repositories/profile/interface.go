// Package profile assembles the denormalized profile aggregate from the
// normalized staff tables, and writes it back transactionally.
package profile

import (
	"context"

	"crewmirror/internal/models"
)

type Repository interface {
	// Load rebuilds the aggregate from the profile tables. It returns
	// (nil, nil) when no user row exists yet.
	Load(ctx context.Context) (*models.Profile, error)

	// Save replaces the user row, images, videos, zone/category/service
	// links, designations, and the documents singleton in one
	// transaction. It deliberately leaves time-slot links and driver
	// assignments untouched: those are written by the onboarding
	// wizard's own steps, after the bulk profile arrives.
	Save(ctx context.Context, p *models.Profile) error

	// SaveTimeSlotLinks replaces the user's time-slot selections.
	SaveTimeSlotLinks(ctx context.Context, timeSlotIDs []int64) error

	// SaveDriverAssignments replaces the driver-assignment rows.
	// Placeholder rows are skipped; they exist only in the aggregate.
	SaveDriverAssignments(ctx context.Context, rows []models.DriverAssignment) error
}
