package dto

import "time"

// --- Request DTOs ---

// CoordinatesRequest carries a geographic point on the way in. The components
// must not carry a `required` binding: zero is a legal value for either one
// (the equator and the prime meridian are real places), and `required` would
// reject it as missing.
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// CreateLocationRequest represents location creation data. Address is absent
// on purpose: it is derived from the coordinates by the geocoding provider.
type CreateLocationRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Coordinates  CoordinatesRequest `json:"coordinates" binding:"required"`
	LocationType string             `json:"location_type"`
}

// UpdateLocationRequest represents location update data.
type UpdateLocationRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Coordinates  CoordinatesRequest `json:"coordinates" binding:"required"`
	LocationType string             `json:"location_type"`
}

// LocationFilterRequest represents location list filter parameters.
type LocationFilterRequest struct {
	LocationType *string `form:"location_type,omitempty"`
	Search       *string `form:"search,omitempty"`
	Page         int     `form:"page,default=1" binding:"min=1"`
	PageSize     int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// --- Response DTOs ---

// CoordinatesResponse is the wire form of a geographic point. Components are
// named, so there is no positional order to mix up between storage and API.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EmbeddedLocationResponse is the reduced place shape nested inside meetups.
type EmbeddedLocationResponse struct {
	Name        string              `json:"name"`
	URL         string              `json:"url"`
	Address     string              `json:"address"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

// LocationMeetupResponse is the minimal meetup shape listed under a location.
type LocationMeetupResponse struct {
	URL       string    `json:"url"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// LocationResponse is the complete place shape. NumMeetups is a derived
// aggregate.
type LocationResponse struct {
	Name         string                   `json:"name"`
	URL          string                   `json:"url"`
	Description  string                   `json:"description"`
	Coordinates  CoordinatesResponse      `json:"coordinates"`
	Address      string                   `json:"address"`
	LocationType string                   `json:"location_type"`
	NumMeetups   int64                    `json:"num_meetups"`
	Meetups      []LocationMeetupResponse `json:"meetups"`
}

// LocationListResponse represents a paginated list of locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	PaginationInfo
}
