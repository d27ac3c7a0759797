package property

import (
	"strings"

	"staybook/internal/domain/calendar"
)

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`
	Address string `json:"address,omitempty"`
}

type Capacity struct {
	Guests    int `json:"guests"`
	Bedrooms  int `json:"bedrooms,omitempty"`
	Bathrooms int `json:"bathrooms,omitempty"`
	Beds      int `json:"beds,omitempty"`
}

// Property is a bookable inventory unit. Its Availability calendar is
// the single source of truth for what can be reserved and at what price.
type Property struct {
	ID                 string            `json:"property_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description,omitempty"`
	PropertyType       string            `json:"property_type"`
	Location           Location          `json:"location"`
	HostID             string            `json:"host_id,omitempty"`
	Capacity           Capacity          `json:"capacity"`
	Amenities          []string          `json:"amenities,omitempty"`
	Rating             float64           `json:"rating,omitempty"`
	CancellationPolicy string            `json:"cancellation_policy,omitempty"`
	CleaningFee        *int              `json:"cleaning_fee,omitempty"`
	Availability       calendar.Calendar `json:"availability"`
}

func (p *Property) FitsGuests(count int) bool {
	return count <= p.Capacity.Guests
}

func (p *Property) MatchesCity(city string) bool {
	return strings.Contains(strings.ToLower(p.Location.City), strings.ToLower(city))
}
