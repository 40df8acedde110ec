package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
	"github.com/barkbook/barkbook/internal/app/projections"
	"github.com/barkbook/barkbook/internal/pkg/apperrors"
	"github.com/barkbook/barkbook/internal/pkg/geocoding"
)

// LocationService defines the interface for location operations
type LocationService interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetLocationByID(ctx context.Context, id int64) (*dto.LocationResponse, error)
	GetAllLocations(ctx context.Context, filter *dto.LocationFilterRequest) (*dto.LocationListResponse, error)
	UpdateLocation(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// locationStore is the persistence surface the service needs.
type locationStore interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	GetAll(ctx context.Context, locationType *models.LocationType, search *string, page, pageSize int) ([]models.Location, int64, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id int64) error
	GetMeetups(ctx context.Context, locationID int64) ([]*models.Meetup, error)
	CountMeetups(ctx context.Context, locationID int64) (int64, error)
}

// locationServiceImpl implements LocationService
type locationServiceImpl struct {
	locationRepo locationStore
	geocoder     geocoding.Geocoder
	resolver     projections.URIResolver
	logger       zerolog.Logger
}

// NewLocationService creates a new LocationService
func NewLocationService(
	locationRepo locationStore,
	geocoder geocoding.Geocoder,
	resolver projections.URIResolver,
	logger zerolog.Logger,
) LocationService {
	return &locationServiceImpl{
		locationRepo: locationRepo,
		geocoder:     geocoder,
		resolver:     resolver,
		logger:       logger,
	}
}

func validateCoordinates(c dto.CoordinatesRequest) error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return apperrors.NewCustomError(apperrors.ErrInvalidCoordinates, "coordinates out of range")
	}
	return nil
}

// CreateLocation registers a place. The address is always derived from the
// coordinates by the geocoder; a create never leaves it empty.
func (s *locationServiceImpl) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name must not be empty")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description must not be empty")
	}
	if err := validateCoordinates(req.Coordinates); err != nil {
		return nil, err
	}

	locationType, err := models.ParseLocationType(req.LocationType)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidLocationType, err.Error())
	}

	address, err := s.geocoder.ReverseGeocode(ctx, req.Coordinates.Latitude, req.Coordinates.Longitude)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("latitude", req.Coordinates.Latitude).
			Float64("longitude", req.Coordinates.Longitude).
			Msg("Failed to geocode coordinates")
		return nil, err
	}

	location := &models.Location{
		Name:        req.Name,
		Description: req.Description,
		Coordinates: models.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		},
		Address:      address,
		LocationType: locationType,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", location.ID).
		Str("locationType", string(location.LocationType)).
		Msg("Location created")

	return projections.ProjectLocation(location, projections.LocationAggregates{}, s.resolver)
}

// GetLocationByID retrieves a location with its meetups.
func (s *locationServiceImpl) GetLocationByID(ctx context.Context, id int64) (*dto.LocationResponse, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location.Meetups, err = s.locationRepo.GetMeetups(ctx, id)
	if err != nil {
		return nil, err
	}

	numMeetups, err := s.locationRepo.CountMeetups(ctx, id)
	if err != nil {
		return nil, err
	}

	return projections.ProjectLocation(location, projections.LocationAggregates{NumMeetups: numMeetups}, s.resolver)
}

// GetAllLocations retrieves locations with filtering and pagination.
func (s *locationServiceImpl) GetAllLocations(ctx context.Context, filter *dto.LocationFilterRequest) (*dto.LocationListResponse, error) {
	var locationType *models.LocationType
	if filter.LocationType != nil && *filter.LocationType != "" {
		lt, err := models.ParseLocationType(*filter.LocationType)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidLocationType, err.Error())
		}
		locationType = &lt
	}

	locations, total, err := s.locationRepo.GetAll(ctx, locationType, filter.Search, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		location := &locations[i]

		location.Meetups, err = s.locationRepo.GetMeetups(ctx, location.ID)
		if err != nil {
			return nil, err
		}
		numMeetups, err := s.locationRepo.CountMeetups(ctx, location.ID)
		if err != nil {
			return nil, err
		}

		resp, err := projections.ProjectLocation(location, projections.LocationAggregates{NumMeetups: numMeetups}, s.resolver)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	totalPages := (int(total) + filter.PageSize - 1) / filter.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &dto.LocationListResponse{
		Locations: responses,
		PaginationInfo: dto.PaginationInfo{
			CurrentPage: filter.Page,
			PageSize:    filter.PageSize,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}, nil
}

// UpdateLocation edits a location. Coordinates remain the source of truth:
// when they change, the address is re-derived before the row is written.
func (s *locationServiceImpl) UpdateLocation(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name must not be empty")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description must not be empty")
	}
	if err := validateCoordinates(req.Coordinates); err != nil {
		return nil, err
	}

	locationType, err := models.ParseLocationType(req.LocationType)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidLocationType, err.Error())
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coordinatesChanged := location.Coordinates.Latitude != req.Coordinates.Latitude ||
		location.Coordinates.Longitude != req.Coordinates.Longitude

	location.Name = req.Name
	location.Description = req.Description
	location.Coordinates = models.Coordinates{
		Latitude:  req.Coordinates.Latitude,
		Longitude: req.Coordinates.Longitude,
	}
	location.LocationType = locationType

	if coordinatesChanged {
		address, err := s.geocoder.ReverseGeocode(ctx, req.Coordinates.Latitude, req.Coordinates.Longitude)
		if err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("Failed to re-geocode coordinates")
			return nil, err
		}
		location.Address = address
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	location.Meetups, err = s.locationRepo.GetMeetups(ctx, id)
	if err != nil {
		return nil, err
	}
	numMeetups, err := s.locationRepo.CountMeetups(ctx, id)
	if err != nil {
		return nil, err
	}

	return projections.ProjectLocation(location, projections.LocationAggregates{NumMeetups: numMeetups}, s.resolver)
}

// DeleteLocation removes a location.
func (s *locationServiceImpl) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Location deleted")
	return nil
}
