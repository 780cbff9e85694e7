package cli

import (
	"context"
	"fmt"

	"crewmirror/internal/repositories/appmeta"
)

// runLogin authenticates against the backend, stores the token and
// username for later sessions, and caches the profile aggregate so the
// app can start offline next time.
func (a *App) runLogin(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.store.AppMeta.Set(ctx, appmeta.KeyAuthToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := a.store.AppMeta.Set(ctx, appmeta.KeyUsername, username); err != nil {
		return fmt.Errorf("failed to store username: %w", err)
	}

	if err := a.profiles.SaveFromRemote(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in, profile cached.")
	return nil
}
