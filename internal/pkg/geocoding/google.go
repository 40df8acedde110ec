package geocoding

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/barkbook/barkbook/internal/pkg/apperrors"
)

// GoogleGeocoder uses the Google Maps Geocoding API to resolve addresses.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a new GoogleGeocoder instance.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &GoogleGeocoder{client: c}, nil
}

// ReverseGeocode resolves the coordinate pair to a formatted postal address.
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: latitude, Lng: longitude},
	}

	results, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrGeocodingFailed, err.Error())
	}
	if len(results) == 0 {
		return "", apperrors.NewCustomError(apperrors.ErrGeocodingFailed,
			fmt.Sprintf("no address found for (%f, %f)", latitude, longitude))
	}

	return results[0].FormattedAddress, nil
}
