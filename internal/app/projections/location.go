package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

func projectCoordinates(c models.Coordinates) dto.CoordinatesResponse {
	return dto.CoordinatesResponse{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// EmbedLocation is the reduced place projection used inside meetups.
func EmbedLocation(l *models.Location, r URIResolver) dto.EmbeddedLocationResponse {
	return dto.EmbeddedLocationResponse{
		Name:        l.Name,
		URL:         r.LocationURI(l.ID),
		Address:     l.Address,
		Coordinates: projectCoordinates(l.Coordinates),
	}
}

// ProjectLocation is the full place projection. Its meetup list renders in a
// minimal form carrying only the self URI and the time window.
func ProjectLocation(l *models.Location, agg LocationAggregates, r URIResolver) (*dto.LocationResponse, error) {
	meetups := make([]dto.LocationMeetupResponse, 0, len(l.Meetups))
	for _, m := range l.Meetups {
		meetups = append(meetups, dto.LocationMeetupResponse{
			URL:       r.MeetupURI(m.ID),
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
		})
	}

	return &dto.LocationResponse{
		Name:         l.Name,
		URL:          r.LocationURI(l.ID),
		Description:  l.Description,
		Coordinates:  projectCoordinates(l.Coordinates),
		Address:      l.Address,
		LocationType: l.LocationType.Label(),
		NumMeetups:   agg.NumMeetups,
		Meetups:      meetups,
	}, nil
}
