package models

import (
	"time"

	"crewmirror/internal/common"
)

// User is the singleton staff user row. There is at most one per
// installation.
type User struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Whatsapp    string
	GetQuote    bool
	Status      string
	Image       string
	Location    string
	Nationality string
	About       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Documents holds the identifiers of the user's uploaded documents.
// Singleton row, latest write wins.
type Documents struct {
	AddressProof   string
	NOC            string
	IDCardFront    string
	IDCardBack     string
	Passport       string
	DrivingLicense string
	Education      string
	Other          string
}

// DriverAssignment links a staff member to a driver and time slot on one
// weekday. Pointer ids are nil only on placeholder rows synthesized for
// days with no assignment.
type DriverAssignment struct {
	ID         int64
	StaffID    *int64
	DriverID   *int64
	TimeSlotID *int64
	Day        string
}

// IsPlaceholder reports whether the assignment is a synthesized empty-day row.
func (a DriverAssignment) IsPlaceholder() bool {
	return a.StaffID == nil && a.DriverID == nil && a.TimeSlotID == nil
}

// Profile is the denormalized aggregate assembled from the profile tables.
// It is rebuilt on every load and never stored pre-joined.
type Profile struct {
	User              User
	Images            []string
	Videos            []string
	ZoneIDs           []int64
	CategoryIDs       []int64
	ServiceIDs        []int64
	DesignationIDs    []int64
	TimeSlotIDs       []int64
	Documents         *Documents
	DriverAssignments map[string][]DriverAssignment
}

// GroupAssignmentsByDay buckets assignment rows by weekday. The result
// always has exactly seven keys, Monday through Sunday; a day with no rows
// gets a single placeholder entry so downstream consumers can rely on at
// least one row per day.
func GroupAssignmentsByDay(rows []DriverAssignment) map[string][]DriverAssignment {
	byDay := make(map[string][]DriverAssignment, len(common.Weekdays))
	for _, row := range rows {
		byDay[row.Day] = append(byDay[row.Day], row)
	}
	grouped := make(map[string][]DriverAssignment, len(common.Weekdays))
	for _, day := range common.Weekdays {
		if dayRows, ok := byDay[day]; ok {
			grouped[day] = dayRows
			continue
		}
		grouped[day] = []DriverAssignment{{Day: day}}
	}
	return grouped
}
