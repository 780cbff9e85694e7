// Package common contains shared constants and sentinel errors used across
// crewmirror components.
package common

// Dataset names key the sync ledger and select a refresh pipeline.
// They must stay stable: a renamed dataset orphans its ledger row and
// forces a re-fetch.
const (
	DatasetServices     = "services"
	DatasetCategories   = "categories"
	DatasetDesignations = "designations"
	DatasetZones        = "zones"
	DatasetTimeSlots    = "timeslots"
	DatasetDrivers      = "drivers"
)

// Datasets lists every mirrored dataset in refresh order.
var Datasets = []string{
	DatasetServices,
	DatasetCategories,
	DatasetDesignations,
	DatasetZones,
	DatasetTimeSlots,
	DatasetDrivers,
}

// Weekdays is the canonical day order for driver-assignment grouping.
// Downstream consumers rely on getting exactly these seven keys.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
