package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
	"github.com/barkbook/barkbook/internal/pkg/apiurl"
	"github.com/barkbook/barkbook/internal/pkg/apperrors"
)

type fakeLocationStore struct {
	locations map[int64]*models.Location
	meetups   map[int64][]*models.Meetup
	nextID    int64
}

func newFakeLocationStore() *fakeLocationStore {
	return &fakeLocationStore{
		locations: map[int64]*models.Location{},
		meetups:   map[int64][]*models.Meetup{},
		nextID:    1,
	}
}

func (s *fakeLocationStore) Create(_ context.Context, location *models.Location) error {
	location.ID = s.nextID
	s.nextID++
	copied := *location
	s.locations[location.ID] = &copied
	return nil
}

func (s *fakeLocationStore) GetByID(_ context.Context, id int64) (*models.Location, error) {
	l, ok := s.locations[id]
	if !ok {
		return nil, apperrors.ErrLocationNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *fakeLocationStore) GetAll(_ context.Context, locationType *models.LocationType, search *string, page, pageSize int) ([]models.Location, int64, error) {
	out := []models.Location{}
	for _, l := range s.locations {
		if locationType != nil && l.LocationType != *locationType {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (s *fakeLocationStore) Update(_ context.Context, location *models.Location) error {
	if _, ok := s.locations[location.ID]; !ok {
		return apperrors.ErrLocationNotFound
	}
	copied := *location
	s.locations[location.ID] = &copied
	return nil
}

func (s *fakeLocationStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.locations[id]; !ok {
		return apperrors.ErrLocationNotFound
	}
	delete(s.locations, id)
	return nil
}

func (s *fakeLocationStore) GetMeetups(_ context.Context, locationID int64) ([]*models.Meetup, error) {
	return s.meetups[locationID], nil
}

func (s *fakeLocationStore) CountMeetups(_ context.Context, locationID int64) (int64, error) {
	return int64(len(s.meetups[locationID])), nil
}

type fakeGeocoder struct {
	address string
	err     error
	calls   int
}

func (g *fakeGeocoder) ReverseGeocode(_ context.Context, latitude, longitude float64) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.address, nil
}

func newTestService(store *fakeLocationStore, geocoder *fakeGeocoder) LocationService {
	return NewLocationService(
		store,
		geocoder,
		apiurl.NewResolver("http://test/api/v1"),
		zerolog.Nop(),
	)
}

func validCreateRequest() *dto.CreateLocationRequest {
	return &dto.CreateLocationRequest{
		Name:        "Central Bark",
		Description: "Off-leash area near the lake",
		Coordinates: dto.CoordinatesRequest{Latitude: 40.785091, Longitude: -73.968285},
	}
}

func TestCreateLocationDerivesAddressAndDefaultsType(t *testing.T) {
	store := newFakeLocationStore()
	geocoder := &fakeGeocoder{address: "14 E 60th St, New York, NY"}
	svc := newTestService(store, geocoder)

	resp, err := svc.CreateLocation(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "14 E 60th St, New York, NY", resp.Address)
	assert.Equal(t, "Park", resp.LocationType)
	assert.Equal(t, "http://test/api/v1/locations/1", resp.URL)
	assert.Equal(t, 1, geocoder.calls)

	stored, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.LocationTypePark, stored.LocationType)
	assert.Equal(t, "14 E 60th St, New York, NY", stored.Address)
}

func TestCreateLocationWithExplicitType(t *testing.T) {
	store := newFakeLocationStore()
	svc := newTestService(store, &fakeGeocoder{address: "somewhere"})

	req := validCreateRequest()
	req.LocationType = "Veterinarian"

	resp, err := svc.CreateLocation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Veterinarian", resp.LocationType)
}

func TestCreateLocationRejectsUnknownTypeBeforeGeocoding(t *testing.T) {
	geocoder := &fakeGeocoder{address: "somewhere"}
	svc := newTestService(newFakeLocationStore(), geocoder)

	req := validCreateRequest()
	req.LocationType = "Beach"

	_, err := svc.CreateLocation(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocationType)
	assert.Zero(t, geocoder.calls)
}

func TestCreateLocationRejectsBlankFields(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{address: "somewhere"})

	req := validCreateRequest()
	req.Name = "   "
	_, err := svc.CreateLocation(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validCreateRequest()
	req.Description = ""
	_, err = svc.CreateLocation(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateLocationRejectsOutOfRangeCoordinates(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{address: "somewhere"})

	req := validCreateRequest()
	req.Coordinates.Latitude = 91

	_, err := svc.CreateLocation(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestCreateLocationPropagatesGeocodingFailure(t *testing.T) {
	geocoder := &fakeGeocoder{err: apperrors.NewCustomError(apperrors.ErrGeocodingFailed, "no address found")}
	svc := newTestService(newFakeLocationStore(), geocoder)

	_, err := svc.CreateLocation(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrGeocodingFailed)
}

func TestGetLocationByID(t *testing.T) {
	store := newFakeLocationStore()
	svc := newTestService(store, &fakeGeocoder{address: "somewhere"})

	created, err := svc.CreateLocation(context.Background(), validCreateRequest())
	require.NoError(t, err)

	store.meetups[1] = []*models.Meetup{{ID: 6, LocationID: 1}, {ID: 7, LocationID: 1}}

	resp, err := svc.GetLocationByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, created.Name, resp.Name)
	assert.Equal(t, int64(2), resp.NumMeetups)
	assert.Len(t, resp.Meetups, 2)
}

func TestGetLocationByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{})

	_, err := svc.GetLocationByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
}

func TestGetAllLocationsFiltersByType(t *testing.T) {
	store := newFakeLocationStore()
	svc := newTestService(store, &fakeGeocoder{address: "somewhere"})

	park := validCreateRequest()
	_, err := svc.CreateLocation(context.Background(), park)
	require.NoError(t, err)

	vet := validCreateRequest()
	vet.Name = "Paws Clinic"
	vet.LocationType = "Veterinarian"
	_, err = svc.CreateLocation(context.Background(), vet)
	require.NoError(t, err)

	filterType := "Veterinarian"
	resp, err := svc.GetAllLocations(context.Background(), &dto.LocationFilterRequest{
		LocationType: &filterType,
		Page:         1,
		PageSize:     10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Locations, 1)
	assert.Equal(t, "Paws Clinic", resp.Locations[0].Name)
	assert.Equal(t, int64(1), resp.TotalItems)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestGetAllLocationsRejectsUnknownFilterType(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{})

	filterType := "Beach"
	_, err := svc.GetAllLocations(context.Background(), &dto.LocationFilterRequest{
		LocationType: &filterType,
		Page:         1,
		PageSize:     10,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocationType)
}

func TestGetAllLocationsEmptyResult(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{})

	resp, err := svc.GetAllLocations(context.Background(), &dto.LocationFilterRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, resp.Locations)
	assert.Empty(t, resp.Locations)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestUpdateLocationRegeocodesOnlyWhenCoordinatesChange(t *testing.T) {
	store := newFakeLocationStore()
	geocoder := &fakeGeocoder{address: "old address"}
	svc := newTestService(store, geocoder)

	_, err := svc.CreateLocation(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, 1, geocoder.calls)

	// Same coordinates: no geocoding round trip, address untouched.
	req := &dto.UpdateLocationRequest{
		Name:        "Central Bark (renamed)",
		Description: "Off-leash area near the lake",
		Coordinates: dto.CoordinatesRequest{Latitude: 40.785091, Longitude: -73.968285},
	}
	resp, err := svc.UpdateLocation(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "old address", resp.Address)
	assert.Equal(t, 1, geocoder.calls)

	// New coordinates: the address is re-derived.
	geocoder.address = "new address"
	req.Coordinates = dto.CoordinatesRequest{Latitude: 40.0, Longitude: -74.0}
	resp, err = svc.UpdateLocation(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "new address", resp.Address)
	assert.Equal(t, 2, geocoder.calls)
}

func TestUpdateLocationNotFound(t *testing.T) {
	svc := newTestService(newFakeLocationStore(), &fakeGeocoder{address: "somewhere"})

	req := &dto.UpdateLocationRequest{
		Name:        "Ghost Park",
		Description: "does not exist",
		Coordinates: dto.CoordinatesRequest{Latitude: 1, Longitude: 1},
	}
	_, err := svc.UpdateLocation(context.Background(), 99, req)
	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
}

func TestDeleteLocation(t *testing.T) {
	store := newFakeLocationStore()
	svc := newTestService(store, &fakeGeocoder{address: "somewhere"})

	_, err := svc.CreateLocation(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLocation(context.Background(), 1))

	err = svc.DeleteLocation(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
}
