package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewmirror/internal/common"
	"crewmirror/internal/models"
	"crewmirror/internal/store"
)

// fakeClient serves canned datasets; fetchCalls counts every dataset
// fetch across all endpoints.
type fakeClient struct {
	fetchCalls int
	fetchErr   error
	profile    *models.Profile
	profileErr error
}

func (c *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return "token", nil
}

func (c *fakeClient) SetToken(token string) {}

func (c *fakeClient) count() error {
	c.fetchCalls++
	return c.fetchErr
}

func (c *fakeClient) FetchServices(ctx context.Context) ([]models.Service, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.Service{{ID: 1, Name: "Cleaning"}, {ID: 2, Name: "Grooming"}}, nil
}

func (c *fakeClient) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.Category{{ID: 1, Title: "Home"}}, nil
}

func (c *fakeClient) FetchDesignations(ctx context.Context) ([]models.Designation, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.Designation{{ID: 1, Name: "Supervisor"}}, nil
}

func (c *fakeClient) FetchZones(ctx context.Context) ([]models.Zone, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.Zone{{ID: 1, Name: "North", Country: "AE"}}, nil
}

func (c *fakeClient) FetchTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.TimeSlot{{ID: 1, Name: "Morning", TimeStart: "08:00", TimeEnd: "12:00"}}, nil
}

func (c *fakeClient) FetchDrivers(ctx context.Context) ([]models.Driver, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return []models.Driver{{ID: 1, Name: "Imran"}}, nil
}

func (c *fakeClient) FetchProfile(ctx context.Context) (*models.Profile, error) {
	if c.profileErr != nil {
		return nil, c.profileErr
	}
	return c.profile, nil
}

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRefreshAll_PopulatesEveryDataset(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	client := &fakeClient{}
	m := NewSyncManager(st, client, discardLogger())

	statuses := m.RefreshAll(ctx)
	require.Len(t, statuses, len(common.Datasets))
	for i, status := range statuses {
		assert.Equal(t, common.Datasets[i], status.Dataset)
		assert.True(t, status.Success, "dataset %s", status.Dataset)
		assert.Greater(t, status.Rows, 0, "dataset %s", status.Dataset)
	}
	assert.Equal(t, len(common.Datasets), client.fetchCalls)
}

func TestRefreshAll_SecondSweepSameDayHitsCacheOnly(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	client := &fakeClient{}
	m := NewSyncManager(st, client, discardLogger())

	m.RefreshAll(ctx)
	statuses := m.RefreshAll(ctx)

	for _, status := range statuses {
		assert.True(t, status.Success)
		assert.Zero(t, status.Rows)
		assert.Equal(t, "cache is fresh", status.Message)
	}
	assert.Equal(t, len(common.Datasets), client.fetchCalls, "the second sweep must not refetch")

	rows := m.Services.LoadLocal(ctx)
	assert.Len(t, rows, 2, "cached rows survive the gated sweep")
}

func TestRefreshAll_OneFailureDoesNotStopTheOthers(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	client := &fakeClient{fetchErr: errors.New("upstream down")}
	m := NewSyncManager(st, client, discardLogger())

	for _, status := range m.RefreshAll(ctx) {
		assert.False(t, status.Success)
		assert.Contains(t, status.Message, "fetch failed")
	}
	assert.Equal(t, len(common.Datasets), client.fetchCalls, "every dataset is still attempted")

	// The failing sweep left every gate open.
	client.fetchErr = nil
	for _, status := range m.RefreshAll(ctx) {
		assert.True(t, status.Success)
	}
}

func TestManagerReset_UnknownDataset(t *testing.T) {
	m := NewSyncManager(setupStore(t), &fakeClient{}, discardLogger())
	err := m.Reset(context.Background(), "bookings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bookings")
}

func TestManagerReset_ClearsMirrorAndReopensGate(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	client := &fakeClient{}
	m := NewSyncManager(st, client, discardLogger())

	m.RefreshAll(ctx)
	require.NoError(t, m.Reset(ctx, common.DatasetDrivers))

	assert.Empty(t, m.Drivers.LoadLocal(ctx))

	res := m.Drivers.Refresh(ctx)
	require.True(t, res.Success)
	assert.Len(t, res.Data, 1, "reset dataset refetches on the same day")
	assert.Len(t, m.Services.LoadLocal(ctx), 2, "other datasets are untouched")
}
