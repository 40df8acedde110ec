package models

import "time"

// Post defines the post model based on the 'posts' table.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	DogID     int64     `json:"dogId" db:"dog_id"`
	Body      string    `json:"body" db:"body"`
	Image     string    `json:"image" db:"image"`
	FontStyle string    `json:"fontStyle" db:"font_style"`
	TextAlign string    `json:"textAlign" db:"text_align"`
	FontSize  string    `json:"fontSize" db:"font_size"`
	PostedAt  time.Time `json:"postedAt" db:"posted_at"`

	// Related entities
	User      *User       `json:"user,omitempty"`
	Dog       *Dog        `json:"dog,omitempty"`
	LikedBy   []*User     `json:"likedBy,omitempty"`
	Comments  []*Comment  `json:"comments,omitempty"`
	Reactions []*Reaction `json:"reactions,omitempty"`
}
