package dto

import "time"

// EmbeddedMeetupResponse is the reduced meetup shape nested inside a user
// response. The place is embedded in its reduced form as well.
type EmbeddedMeetupResponse struct {
	URL       string                   `json:"url"`
	ID        int64                    `json:"id"`
	StartTime time.Time                `json:"start_time"`
	EndTime   time.Time                `json:"end_time"`
	Address   string                   `json:"address"`
	Location  EmbeddedLocationResponse `json:"location"`
}

// MeetupResponse is the complete meetup shape.
type MeetupResponse struct {
	URL       string                   `json:"url"`
	Admin     EmbeddedUserResponse     `json:"admin"`
	Attending []EmbeddedUserResponse   `json:"attending"`
	StartTime time.Time                `json:"start_time"`
	EndTime   time.Time                `json:"end_time"`
	Location  EmbeddedLocationResponse `json:"location"`
}
