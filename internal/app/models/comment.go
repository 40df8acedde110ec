package models

import "time"

// Comment defines the comment model based on the 'comments' table.
type Comment struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"userId" db:"user_id"`
	PostID   int64     `json:"postId" db:"post_id"`
	Body     string    `json:"body" db:"body"`
	PostedAt time.Time `json:"postedAt" db:"posted_at"`

	// Related entities
	User    *User   `json:"user,omitempty"`
	Post    *Post   `json:"post,omitempty"`
	LikedBy []*User `json:"likedBy,omitempty"`
}
