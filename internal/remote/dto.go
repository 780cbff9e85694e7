package remote

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"crewmirror/internal/models"
)

// flexInt accepts JSON numbers and numeric strings. The provider's
// endpoints are inconsistent about id encoding.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", b, err)
	}
	*f = flexInt(v)
	return nil
}

// flexBool accepts true/false, 0/1, and their string forms.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	switch s {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid boolean value %q", s)
	}
	return nil
}

type rawService struct {
	ID   flexInt `json:"id"`
	Name string  `json:"name"`
}

func (r rawService) normalize() models.Service {
	return models.Service{ID: int64(r.ID), Name: r.Name}
}

type rawCategory struct {
	ID       flexInt  `json:"id"`
	Title    string   `json:"title"`
	ParentID *flexInt `json:"parent_id"`
}

func (r rawCategory) normalize() models.Category {
	return models.Category{ID: int64(r.ID), Title: r.Title, ParentID: optInt64(r.ParentID)}
}

type rawDesignation struct {
	ID       flexInt  `json:"id"`
	Name     string   `json:"name"`
	ParentID *flexInt `json:"parent_id"`
}

func (r rawDesignation) normalize() models.Designation {
	return models.Designation{ID: int64(r.ID), Name: r.Name, ParentID: optInt64(r.ParentID)}
}

type rawZone struct {
	ID      flexInt `json:"zone_id"`
	Name    string  `json:"zone_name"`
	Country string  `json:"country"`
}

func (r rawZone) normalize() models.Zone {
	return models.Zone{ID: int64(r.ID), Name: r.Name, Country: r.Country}
}

type rawTimeSlot struct {
	ID        flexInt `json:"id"`
	Name      string  `json:"name"`
	TimeStart string  `json:"time_start"`
	TimeEnd   string  `json:"time_end"`
	Date      *string `json:"date"`
	Type      string  `json:"type"`
}

func (r rawTimeSlot) normalize() models.TimeSlot {
	return models.TimeSlot{
		ID:        int64(r.ID),
		Name:      r.Name,
		TimeStart: r.TimeStart,
		TimeEnd:   r.TimeEnd,
		Date:      r.Date,
		Type:      r.Type,
	}
}

type rawDriver struct {
	ID   flexInt `json:"id"`
	Name string  `json:"name"`
}

func (r rawDriver) normalize() models.Driver {
	return models.Driver{ID: int64(r.ID), Name: r.Name}
}

type rawDocuments struct {
	AddressProof   string `json:"address_proof"`
	NOC            string `json:"noc"`
	IDCardFront    string `json:"id_card_front"`
	IDCardBack     string `json:"id_card_back"`
	Passport       string `json:"passport"`
	DrivingLicense string `json:"driving_license"`
	Education      string `json:"education"`
	Other          string `json:"other"`
}

type rawUser struct {
	ID          flexInt  `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Whatsapp    string   `json:"whatsapp"`
	GetQuote    flexBool `json:"get_quote"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Nationality string   `json:"nationality"`
	About       string   `json:"about"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type rawProfile struct {
	User         rawUser       `json:"user"`
	Images       []string      `json:"images"`
	Videos       []string      `json:"videos"`
	Zones        []flexInt     `json:"zones"`
	Categories   []flexInt     `json:"categories"`
	Services     []flexInt     `json:"services"`
	Designations []flexInt     `json:"designations"`
	Documents    *rawDocuments `json:"documents"`
}

func (r rawProfile) normalize() *models.Profile {
	p := &models.Profile{
		User: models.User{
			ID:          int64(r.User.ID),
			Name:        r.User.Name,
			Email:       r.User.Email,
			Phone:       r.User.Phone,
			Whatsapp:    r.User.Whatsapp,
			GetQuote:    bool(r.User.GetQuote),
			Status:      r.User.Status,
			Image:       r.User.Image,
			Location:    r.User.Location,
			Nationality: r.User.Nationality,
			About:       r.User.About,
			CreatedAt:   parseRemoteTime(r.User.CreatedAt),
			UpdatedAt:   parseRemoteTime(r.User.UpdatedAt),
		},
		Images:         r.Images,
		Videos:         r.Videos,
		ZoneIDs:        int64Slice(r.Zones),
		CategoryIDs:    int64Slice(r.Categories),
		ServiceIDs:     int64Slice(r.Services),
		DesignationIDs: int64Slice(r.Designations),
	}
	if r.Documents != nil {
		p.Documents = &models.Documents{
			AddressProof:   r.Documents.AddressProof,
			NOC:            r.Documents.NOC,
			IDCardFront:    r.Documents.IDCardFront,
			IDCardBack:     r.Documents.IDCardBack,
			Passport:       r.Documents.Passport,
			DrivingLicense: r.Documents.DrivingLicense,
			Education:      r.Documents.Education,
			Other:          r.Documents.Other,
		}
	}
	return p
}

func optInt64(v *flexInt) *int64 {
	if v == nil {
		return nil
	}
	out := int64(*v)
	return &out
}

func int64Slice(vs []flexInt) []int64 {
	if vs == nil {
		return nil
	}
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}

// The backend emits "2006-01-02 15:04:05"; some newer endpoints already
// use RFC3339. An unparseable value degrades to the zero time.
func parseRemoteTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
