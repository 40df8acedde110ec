// Package geocoding turns geographic coordinates into postal addresses.
package geocoding

import "context"

// Geocoder resolves a coordinate pair to a normalized postal address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}
