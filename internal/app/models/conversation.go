package models

import "time"

// Conversation defines the conversation model based on the 'conversations' table.
type Conversation struct {
	ID        int64     `json:"id" db:"id"`
	ConvoName string    `json:"convoName" db:"convo_name"`
	AdminID   int64     `json:"adminId" db:"admin_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Admin    *User      `json:"admin,omitempty"`
	Members  []*User    `json:"members,omitempty"`
	Messages []*Message `json:"messages,omitempty"` // ordered by time sent
}
