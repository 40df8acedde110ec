package models

import "time"

// Dog defines the dog model based on the 'dogs' table.
type Dog struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Breed       string    `json:"breed" db:"breed"`
	Picture     string    `json:"picture" db:"picture"`
	Age         int       `json:"age" db:"age"`
	Size        string    `json:"size" db:"size"`
	Energy      string    `json:"energy" db:"energy"`
	Temper      string    `json:"temper" db:"temper"`
	GroupSize   string    `json:"groupSize" db:"group_size"`
	Vaccinated  bool      `json:"vaccinated" db:"vaccinated"`
	KidFriendly bool      `json:"kidFriendly" db:"kid_friendly"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Owner *User   `json:"owner,omitempty"`
	Posts []*Post `json:"posts,omitempty"`
}
