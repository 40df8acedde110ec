package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// EmbedMeetup is the reduced meetup projection used inside a user response.
// The place it happens at is required and embeds in its reduced form.
func EmbedMeetup(m *models.Meetup, r URIResolver) (dto.EmbeddedMeetupResponse, error) {
	if m.Location == nil {
		return dto.EmbeddedMeetupResponse{}, missingReference("meetup", m.ID, "location")
	}

	return dto.EmbeddedMeetupResponse{
		URL:       r.MeetupURI(m.ID),
		ID:        m.ID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Address:   m.Address,
		Location:  EmbedLocation(m.Location, r),
	}, nil
}

// ProjectMeetup is the full meetup projection. Admin and location are
// required.
func ProjectMeetup(m *models.Meetup, r URIResolver) (*dto.MeetupResponse, error) {
	if m.Admin == nil {
		return nil, missingReference("meetup", m.ID, "admin")
	}
	if m.Location == nil {
		return nil, missingReference("meetup", m.ID, "location")
	}

	return &dto.MeetupResponse{
		URL:       r.MeetupURI(m.ID),
		Admin:     EmbedUser(m.Admin, r),
		Attending: embedUsers(m.Attending, r),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Location:  EmbedLocation(m.Location, r),
	}, nil
}
