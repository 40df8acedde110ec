package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/pkg/apperrors"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Postgres error code for foreign_key_violation.
const foreignKeyViolationCode = "23503"

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *pgxpool.Pool
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create inserts a location and fills in its generated id and creation time.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query, args, err := psql.Insert("locations").
		Columns("name", "description", "latitude", "longitude", "address", "location_type").
		Values(
			location.Name,
			location.Description,
			location.Coordinates.Latitude,
			location.Coordinates.Longitude,
			location.Address,
			string(location.LocationType),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&location.ID, &location.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	return nil
}

// GetByID retrieves a location by ID.
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query, args, err := psql.Select("id", "name", "description", "created_at",
		"latitude", "longitude", "address", "location_type").
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var location models.Location
	var locationType string
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&location.ID,
		&location.Name,
		&location.Description,
		&location.CreatedAt,
		&location.Coordinates.Latitude,
		&location.Coordinates.Longitude,
		&location.Address,
		&locationType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to query location: %w", err)
	}
	location.LocationType = models.LocationType(locationType)

	return &location, nil
}

// GetAll retrieves locations with filtering and pagination.
func (r *LocationRepository) GetAll(ctx context.Context, locationType *models.LocationType, search *string, page, pageSize int) ([]models.Location, int64, error) {
	builder := psql.Select("id", "name", "description", "created_at",
		"latitude", "longitude", "address", "location_type",
		"COUNT(*) OVER() AS total_count").
		From("locations")

	if locationType != nil {
		builder = builder.Where(squirrel.Eq{"location_type": string(*locationType)})
	}
	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	offset := (page - 1) * pageSize
	query, args, err := builder.
		OrderBy("id").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	var total int64
	for rows.Next() {
		var location models.Location
		var locationType string
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Description,
			&location.CreatedAt,
			&location.Coordinates.Latitude,
			&location.Coordinates.Longitude,
			&location.Address,
			&locationType,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan location row: %w", err)
		}
		location.LocationType = models.LocationType(locationType)
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate location rows: %w", err)
	}

	return locations, total, nil
}

// Update overwrites a location's editable fields. created_at never changes.
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	query, args, err := psql.Update("locations").
		Set("name", location.Name).
		Set("description", location.Description).
		Set("latitude", location.Coordinates.Latitude).
		Set("longitude", location.Coordinates.Longitude).
		Set("address", location.Address).
		Set("location_type", string(location.LocationType)).
		Where(squirrel.Eq{"id": location.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLocationNotFound
	}

	return nil
}

// Delete removes a location.
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return apperrors.NewCustomError(apperrors.ErrLocationInUse,
				"location still hosts meetups and cannot be deleted")
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLocationNotFound
	}

	return nil
}

// GetMeetups retrieves the meetups held at a location, ordered by start time.
func (r *LocationRepository) GetMeetups(ctx context.Context, locationID int64) ([]*models.Meetup, error) {
	query, args, err := psql.Select("id", "admin_id", "location_id", "start_time", "end_time", "address").
		From("meetups").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetups: %w", err)
	}
	defer rows.Close()

	meetups := []*models.Meetup{}
	for rows.Next() {
		var meetup models.Meetup
		err := rows.Scan(
			&meetup.ID,
			&meetup.AdminID,
			&meetup.LocationID,
			&meetup.StartTime,
			&meetup.EndTime,
			&meetup.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meetup row: %w", err)
		}
		meetups = append(meetups, &meetup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetup rows: %w", err)
	}

	return meetups, nil
}

// CountMeetups counts the meetups held at a location.
func (r *LocationRepository) CountMeetups(ctx context.Context, locationID int64) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("meetups").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count meetups: %w", err)
	}

	return count, nil
}
