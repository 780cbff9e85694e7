package services

import (
	"context"
	"fmt"

	"crewmirror/internal/common"
	"crewmirror/internal/logging"
	"crewmirror/internal/models"
	"crewmirror/internal/remote"
	"crewmirror/internal/repositories/ledger"
	"crewmirror/internal/store"
)

// RefreshStatus summarizes one dataset's outcome in a RefreshAll sweep.
type RefreshStatus struct {
	Dataset string
	Success bool
	Rows    int
	Message string
}

// SyncManager owns the six dataset pipelines. Refreshes run sequentially
// as independent all-or-nothing transactions; one dataset failing does
// not stop or roll back the others.
type SyncManager struct {
	Services     *DatasetSync[models.Service]
	Categories   *DatasetSync[models.Category]
	Designations *DatasetSync[models.Designation]
	Zones        *DatasetSync[models.Zone]
	TimeSlots    *DatasetSync[models.TimeSlot]
	Drivers      *DatasetSync[models.Driver]

	log logging.Logger
}

func NewSyncManager(st *store.Store, client remote.Client, log logging.Logger) *SyncManager {
	gate := ledger.NewGate(st.Ledger)
	return &SyncManager{
		Services:     NewDatasetSync(common.DatasetServices, client.FetchServices, st.Services, gate, log),
		Categories:   NewDatasetSync(common.DatasetCategories, client.FetchCategories, st.Categories, gate, log),
		Designations: NewDatasetSync(common.DatasetDesignations, client.FetchDesignations, st.Designations, gate, log),
		Zones:        NewDatasetSync(common.DatasetZones, client.FetchZones, st.Zones, gate, log),
		TimeSlots:    NewDatasetSync(common.DatasetTimeSlots, client.FetchTimeSlots, st.TimeSlots, gate, log),
		Drivers:      NewDatasetSync(common.DatasetDrivers, client.FetchDrivers, st.Drivers, gate, log),
		log:          log,
	}
}

// RefreshAll sweeps every dataset once, in the order of common.Datasets.
func (m *SyncManager) RefreshAll(ctx context.Context) []RefreshStatus {
	return []RefreshStatus{
		statusOf(common.DatasetServices, m.Services.Refresh(ctx)),
		statusOf(common.DatasetCategories, m.Categories.Refresh(ctx)),
		statusOf(common.DatasetDesignations, m.Designations.Refresh(ctx)),
		statusOf(common.DatasetZones, m.Zones.Refresh(ctx)),
		statusOf(common.DatasetTimeSlots, m.TimeSlots.Refresh(ctx)),
		statusOf(common.DatasetDrivers, m.Drivers.Refresh(ctx)),
	}
}

// Reset clears one dataset's mirror and ledger stamp by name.
func (m *SyncManager) Reset(ctx context.Context, dataset string) error {
	switch dataset {
	case common.DatasetServices:
		return m.Services.Reset(ctx)
	case common.DatasetCategories:
		return m.Categories.Reset(ctx)
	case common.DatasetDesignations:
		return m.Designations.Reset(ctx)
	case common.DatasetZones:
		return m.Zones.Reset(ctx)
	case common.DatasetTimeSlots:
		return m.TimeSlots.Reset(ctx)
	case common.DatasetDrivers:
		return m.Drivers.Reset(ctx)
	default:
		return fmt.Errorf("unknown dataset %q", dataset)
	}
}

func statusOf[T any](dataset string, res Result[T]) RefreshStatus {
	return RefreshStatus{
		Dataset: dataset,
		Success: res.Success,
		Rows:    len(res.Data),
		Message: res.Message,
	}
}
