// Package models defines the row and aggregate types persisted in the local
// mirror. Reference rows hold remote data as of the last successful fetch;
// they are replaced wholesale, never merged.
package models

// Service is a bookable service offered by the business.
type Service struct {
	ID   int64
	Name string
}

// Category is a node in the category tree. Root categories have a nil
// ParentID; sub-categories reference their parent.
type Category struct {
	ID       int64
	Title    string
	ParentID *int64
}

// Designation is a staff job title; like categories it can nest one level.
type Designation struct {
	ID       int64
	Name     string
	ParentID *int64
}

// Zone is a geographic service area.
type Zone struct {
	ID      int64
	Name    string
	Country string
}

// TimeSlot is a bookable window. A nil Date means the slot recurs every
// day; a set Date is a date-specific override.
type TimeSlot struct {
	ID        int64
	Name      string
	TimeStart string
	TimeEnd   string
	Date      *string
	Type      string
}

// Driver is a crew transport driver.
type Driver struct {
	ID   int64
	Name string
}
