package models

import "time"

// DiscussionBoard defines a discussion board thread based on the
// 'discussion_boards' table. Vote counts are derived by the aggregation
// queries, not stored on the row.
type DiscussionBoard struct {
	ID       int64     `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Body     string    `json:"body" db:"body"`
	UserID   int64     `json:"userId" db:"user_id"`
	PostedAt time.Time `json:"postedAt" db:"posted_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
