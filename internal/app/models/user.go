package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Profile fields that
// carry an *_is_public flag are only shown to other users when the flag is set;
// enforcing that is the caller's concern, not the model's.
type User struct {
	ID                int64      `json:"id" db:"id"`
	Username          string     `json:"username" db:"username"`
	FirstName         string     `json:"firstName" db:"first_name"`
	LastName          string     `json:"lastName" db:"last_name"`
	LastNameIsPublic  bool       `json:"lastNameIsPublic" db:"last_name_is_public"`
	Email             string     `json:"email" db:"email"`
	NumPets           int        `json:"numPets" db:"num_pets"`
	StreetAddress     string     `json:"streetAddress" db:"street_address"`
	AddressIsPublic   bool       `json:"addressIsPublic" db:"address_is_public"`
	City              string     `json:"city" db:"city"`
	State             string     `json:"state" db:"state"`
	PhoneNum          string     `json:"phoneNum" db:"phone_num"`
	PhoneIsPublic     bool       `json:"phoneIsPublic" db:"phone_is_public"`
	Birthdate         *time.Time `json:"birthdate,omitempty" db:"birthdate"`
	BirthdateIsPublic bool       `json:"birthdateIsPublic" db:"birthdate_is_public"`
	Picture           string     `json:"picture" db:"picture"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`

	// Related entities
	Dogs               []*Dog          `json:"dogs,omitempty"`
	Conversations      []*Conversation `json:"conversations,omitempty"`
	AdminConversations []*Conversation `json:"adminConversations,omitempty"`
	Meetups            []*Meetup       `json:"meetups,omitempty"`
	MeetupsAdmin       []*Meetup       `json:"meetupsAdmin,omitempty"`
	Followers          []*User         `json:"followers,omitempty"`
	Friends            []*User         `json:"friends,omitempty"`
	RequestsSent       []*Request      `json:"requestsSent,omitempty"`
	RequestsReceived   []*Request      `json:"requestsReceived,omitempty"`
}
