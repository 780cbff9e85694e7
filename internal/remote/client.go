// Package remote talks to the backend over plain HTTP/JSON. Each dataset
// endpoint returns an envelope of the form {"<datasetKey>": [rows]}; the
// fetchers normalize provider quirks (string-encoded ids, 0/1 booleans)
// into the store's row types.
package remote

import (
	"context"

	"crewmirror/internal/models"
)

// Client is the remote-fetch collaborator consumed by the sync engine.
// Implementations must honor context cancellation; a timeout surfaces as
// an ordinary fetch error and is treated as transient by callers.
type Client interface {
	// Login authenticates and returns a bearer token. The token is also
	// retained for subsequent fetches on this client.
	Login(ctx context.Context, username, password string) (string, error)

	// SetToken installs a previously issued bearer token.
	SetToken(token string)

	FetchServices(ctx context.Context) ([]models.Service, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchDesignations(ctx context.Context) ([]models.Designation, error)
	FetchZones(ctx context.Context) ([]models.Zone, error)
	FetchTimeSlots(ctx context.Context) ([]models.TimeSlot, error)
	FetchDrivers(ctx context.Context) ([]models.Driver, error)

	// FetchProfile retrieves the signed-in user's full profile aggregate.
	FetchProfile(ctx context.Context) (*models.Profile, error)
}
