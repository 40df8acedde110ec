package models

import (
	"fmt"
	"time"
)

// LocationType is the closed set of place categories.
type LocationType string

const (
	LocationTypePark         LocationType = "PA"
	LocationTypeRestaurant   LocationType = "RE"
	LocationTypeVeterinarian LocationType = "VE"
	LocationTypeTrail        LocationType = "TR"
	LocationTypeHouse        LocationType = "HO"
)

// DefaultLocationType is used when a location is created without an explicit category.
const DefaultLocationType = LocationTypePark

var locationTypeLabels = map[LocationType]string{
	LocationTypePark:         "Park",
	LocationTypeRestaurant:   "Restaurant",
	LocationTypeVeterinarian: "Veterinarian",
	LocationTypeTrail:        "Trail",
	LocationTypeHouse:        "House",
}

var locationTypesByLabel = map[string]LocationType{
	"Park":         LocationTypePark,
	"Restaurant":   LocationTypeRestaurant,
	"Veterinarian": LocationTypeVeterinarian,
	"Trail":        LocationTypeTrail,
	"House":        LocationTypeHouse,
}

// ParseLocationType converts a display label into a LocationType. An empty label
// yields DefaultLocationType; an unrecognized label is an error, never a silent
// fallback to the default.
func ParseLocationType(label string) (LocationType, error) {
	if label == "" {
		return DefaultLocationType, nil
	}
	if lt, ok := locationTypesByLabel[label]; ok {
		return lt, nil
	}
	return "", fmt.Errorf("unknown location type %q", label)
}

// Valid reports whether the type is one of the five known categories.
func (lt LocationType) Valid() bool {
	_, ok := locationTypeLabels[lt]
	return ok
}

// Label returns the display form used on the wire ("Park", "Restaurant", ...).
func (lt LocationType) Label() string {
	return locationTypeLabels[lt]
}

// Coordinates is a geographic point. Latitude and longitude are always named,
// both in storage and on the wire; no positional pair exists anywhere.
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Location defines a physical place based on the 'locations' table.
// Coordinates are the source of truth; Address is derived from them by the
// geocoding provider and kept in sync on coordinate changes.
type Location struct {
	ID           int64        `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description" db:"description"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	Coordinates  Coordinates  `json:"coordinates"`
	Address      string       `json:"address" db:"address"`
	LocationType LocationType `json:"locationType" db:"location_type"`

	// Related entities
	Meetups []*Meetup `json:"meetups,omitempty"`
}
