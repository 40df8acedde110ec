package dto

import "time"

// EmbeddedUserResponse is the reduced user shape nested inside other entities.
// It never carries the user's own relation lists, which bounds nesting depth.
type EmbeddedUserResponse struct {
	Username string `json:"username"`
	URL      string `json:"url"`
	ID       int64  `json:"id"`
}

// UserResponse is the complete user shape returned when the user is the
// primary subject of a response. The num_* and unread/friend_requests fields
// are derived aggregates positioned verbatim, never computed here.
type UserResponse struct {
	URL                string                         `json:"url"`
	Username           string                         `json:"username"`
	FirstName          string                         `json:"first_name"`
	LastName           string                         `json:"last_name"`
	LastNameIsPublic   bool                           `json:"last_name_is_public"`
	Email              string                         `json:"email"`
	NumPets            int                            `json:"num_pets"`
	StreetAddress      string                         `json:"street_address"`
	AddressIsPublic    bool                           `json:"address_is_public"`
	City               string                         `json:"city"`
	State              string                         `json:"state"`
	CreatedAt          time.Time                      `json:"created_at"`
	PhoneNum           string                         `json:"phone_num"`
	PhoneIsPublic      bool                           `json:"phone_is_public"`
	Birthdate          *time.Time                     `json:"birthdate"`
	BirthdateIsPublic  bool                           `json:"birthdate_is_public"`
	Picture            string                         `json:"picture"`
	Dogs               []EmbeddedDogResponse          `json:"dogs"`
	Conversations      []EmbeddedConversationResponse `json:"conversations"`
	AdminConversations []EmbeddedConversationResponse `json:"adminconversations"`
	Meetups            []EmbeddedMeetupResponse       `json:"meetups"`
	MeetupsAdmin       []EmbeddedMeetupResponse       `json:"meetupsadmin"`
	Followers          []EmbeddedUserResponse         `json:"followers"`
	Friends            []EmbeddedUserResponse         `json:"friends"`
	RequestsReceived   []EmbeddedRequestResponse      `json:"requests_received"`
	RequestsSent       []EmbeddedRequestResponse      `json:"requests_sent"`
	NumFollowers       int64                          `json:"num_followers"`
	NumConversations   int64                          `json:"num_conversations"`
	NumFriends         int64                          `json:"num_friends"`
	UnreadMessages     int64                          `json:"unread_messages"`
	FriendRequests     int64                          `json:"friend_requests"`
}
