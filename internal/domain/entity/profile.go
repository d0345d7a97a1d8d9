// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Profile is a role-specific record owned by a user. Only the attributes that belong to its
// Type are populated; the rest stay at their zero value.
type Profile struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the profile.
	UserID      uuid.UUID  `json:"user_id"`      // The ID of the user who owns this profile.
	Type        EntityType `json:"entity_type"`  // Which role table the profile lives in.
	DisplayName string     `json:"display_name"` // Public name shown in discovery.
	Headline    string     `json:"headline"`     // Short pitch line.
	City        string     `json:"city"`         // Free-text city, used for prefix matching.
	Latitude    *float64   `json:"latitude"`     // Nil until the user picks a location.
	Longitude   *float64   `json:"longitude"`    // Nil until the user picks a location.
	IsActive    bool       `json:"is_active"`    // Only active profiles are discoverable.

	// Freelancer
	Skills     []string `json:"skills,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`

	// Investor
	Sectors   []string `json:"sectors,omitempty"`
	Stages    []string `json:"stages,omitempty"`
	TicketMin *int64   `json:"ticket_min,omitempty"`
	TicketMax *int64   `json:"ticket_max,omitempty"`

	// Startup
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Stage       string `json:"stage,omitempty"`
	TeamSize    int    `json:"team_size,omitempty"`

	// Space provider
	SpaceName string   `json:"space_name,omitempty"`
	Category  string   `json:"category,omitempty"`
	Capacity  int      `json:"capacity,omitempty"`
	Amenities []string `json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Point returns the profile location as an orb.Point (lng, lat). The boolean is false when the
// location has not been set; such profiles have no distance, not a zero distance.
func (p *Profile) Point() (orb.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*p.Longitude, *p.Latitude}, true
}

// SetLocation sets both coordinates at once.
func (p *Profile) SetLocation(lat, lng float64) {
	p.Latitude = &lat
	p.Longitude = &lng
}

// ClearLocation removes both coordinates.
func (p *Profile) ClearLocation() {
	p.Latitude = nil
	p.Longitude = nil
}

// NearbyProfile is a profile returned by a proximity query together with its great-circle
// distance from the query center. DistanceKm is nil when the profile has no coordinates and was
// included through the city match.
type NearbyProfile struct {
	*Profile
	DistanceKm *float64 `json:"distance_km"`
}
