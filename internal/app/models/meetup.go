package models

import "time"

// Meetup defines the meetup model based on the 'meetups' table. LocationID
// must reference an existing location.
type Meetup struct {
	ID         int64     `json:"id" db:"id"`
	AdminID    int64     `json:"adminId" db:"admin_id"`
	LocationID int64     `json:"locationId" db:"location_id"`
	StartTime  time.Time `json:"startTime" db:"start_time"`
	EndTime    time.Time `json:"endTime" db:"end_time"`
	Address    string    `json:"address" db:"address"`

	// Related entities
	Admin     *User     `json:"admin,omitempty"`
	Attending []*User   `json:"attending,omitempty"`
	Location  *Location `json:"location,omitempty"`
}
