package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// EmbedUser is the reduced user projection: identity, username and self URI.
// It never expands the user's own relations, which keeps nesting bounded.
func EmbedUser(u *models.User, r URIResolver) dto.EmbeddedUserResponse {
	return dto.EmbeddedUserResponse{
		Username: u.Username,
		URL:      r.UserURI(u.ID),
		ID:       u.ID,
	}
}

func embedUsers(users []*models.User, r URIResolver) []dto.EmbeddedUserResponse {
	out := make([]dto.EmbeddedUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, EmbedUser(u, r))
	}
	return out
}

// usernames collapses a list of related users to their display strings.
func usernames(users []*models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

// ProjectUser is the full user projection. All relation lists render in their
// embedded forms; the counts come from the caller-supplied aggregates.
func ProjectUser(u *models.User, agg UserAggregates, r URIResolver) (*dto.UserResponse, error) {
	dogs := make([]dto.EmbeddedDogResponse, 0, len(u.Dogs))
	for _, d := range u.Dogs {
		dogs = append(dogs, EmbedDog(d, r))
	}

	embedConvos := func(convos []*models.Conversation) []dto.EmbeddedConversationResponse {
		out := make([]dto.EmbeddedConversationResponse, 0, len(convos))
		for _, c := range convos {
			out = append(out, EmbedConversation(c, r))
		}
		return out
	}

	embedMeetups := func(meetups []*models.Meetup) ([]dto.EmbeddedMeetupResponse, error) {
		out := make([]dto.EmbeddedMeetupResponse, 0, len(meetups))
		for _, m := range meetups {
			em, err := EmbedMeetup(m, r)
			if err != nil {
				return nil, err
			}
			out = append(out, em)
		}
		return out, nil
	}

	meetups, err := embedMeetups(u.Meetups)
	if err != nil {
		return nil, err
	}
	meetupsAdmin, err := embedMeetups(u.MeetupsAdmin)
	if err != nil {
		return nil, err
	}

	embedRequests := func(requests []*models.Request) ([]dto.EmbeddedRequestResponse, error) {
		out := make([]dto.EmbeddedRequestResponse, 0, len(requests))
		for _, req := range requests {
			er, err := EmbedRequest(req, r)
			if err != nil {
				return nil, err
			}
			out = append(out, er)
		}
		return out, nil
	}

	requestsSent, err := embedRequests(u.RequestsSent)
	if err != nil {
		return nil, err
	}
	requestsReceived, err := embedRequests(u.RequestsReceived)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		URL:                r.UserURI(u.ID),
		Username:           u.Username,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		LastNameIsPublic:   u.LastNameIsPublic,
		Email:              u.Email,
		NumPets:            u.NumPets,
		StreetAddress:      u.StreetAddress,
		AddressIsPublic:    u.AddressIsPublic,
		City:               u.City,
		State:              u.State,
		CreatedAt:          u.CreatedAt,
		PhoneNum:           u.PhoneNum,
		PhoneIsPublic:      u.PhoneIsPublic,
		Birthdate:          u.Birthdate,
		BirthdateIsPublic:  u.BirthdateIsPublic,
		Picture:            u.Picture,
		Dogs:               dogs,
		Conversations:      embedConvos(u.Conversations),
		AdminConversations: embedConvos(u.AdminConversations),
		Meetups:            meetups,
		MeetupsAdmin:       meetupsAdmin,
		Followers:          embedUsers(u.Followers, r),
		Friends:            embedUsers(u.Friends, r),
		RequestsReceived:   requestsReceived,
		RequestsSent:       requestsSent,
		NumFollowers:       agg.NumFollowers,
		NumConversations:   agg.NumConversations,
		NumFriends:         agg.NumFriends,
		UnreadMessages:     agg.UnreadMessages,
		FriendRequests:     agg.FriendRequests,
	}, nil
}
