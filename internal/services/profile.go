package services

import (
	"context"
	"fmt"

	"crewmirror/internal/logging"
	"crewmirror/internal/models"
	"crewmirror/internal/remote"
	"crewmirror/internal/repositories/profile"
)

// ProfileService exposes the profile aggregate to the rest of the app.
//
// Read and write failure semantics differ on purpose: LoadLocal absorbs
// every error into "no profile", while the save paths propagate, because
// a profile that cannot be persisted blocks app entry.
type ProfileService struct {
	repo   profile.Repository
	client remote.Client
	log    logging.Logger
}

func NewProfileService(repo profile.Repository, client remote.Client, log logging.Logger) *ProfileService {
	return &ProfileService{repo: repo, client: client, log: log}
}

// LoadLocal returns the locally cached profile aggregate, or nil when
// there is none. Read errors are logged and collapse to nil as well; the
// caller cannot distinguish them from an absent profile and is expected
// to re-fetch.
func (s *ProfileService) LoadLocal(ctx context.Context) *models.Profile {
	p, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load local profile", "error", err)
		return nil
	}
	return p
}

// SaveFromRemote fetches the signed-in user's profile and replaces the
// local copy. Called around login and signup.
func (s *ProfileService) SaveFromRemote(ctx context.Context) error {
	p, err := s.client.FetchProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	s.log.Info(ctx, "profile saved from remote", "user_id", p.User.ID)
	return nil
}

// Save persists a profile assembled locally, e.g. by the onboarding
// wizard.
func (s *ProfileService) Save(ctx context.Context, p *models.Profile) error {
	return s.repo.Save(ctx, p)
}

// SaveTimeSlotLinks persists the wizard's time-slot step.
func (s *ProfileService) SaveTimeSlotLinks(ctx context.Context, timeSlotIDs []int64) error {
	return s.repo.SaveTimeSlotLinks(ctx, timeSlotIDs)
}

// SaveDriverAssignments persists the wizard's driver step.
func (s *ProfileService) SaveDriverAssignments(ctx context.Context, rows []models.DriverAssignment) error {
	return s.repo.SaveDriverAssignments(ctx, rows)
}
