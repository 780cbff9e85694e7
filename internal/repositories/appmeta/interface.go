// Package appmeta stores installation-scoped key/value metadata: the
// installation id, the cached auth token, and the signed-in username.
package appmeta

import "context"

// Keys used by the application. Ad-hoc keys are allowed but discouraged.
const (
	KeyInstallationID = "installation_id"
	KeyAuthToken      = "auth_token"
	KeyUsername       = "username"
)

type Repository interface {
	// Get returns the value for key, or "" with a nil error when the key
	// is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts a key/value pair.
	Set(ctx context.Context, key string, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key. Used on logout.
	Clear(ctx context.Context) error
}
