package models

import "time"

// Message defines the message model based on the 'messages' table.
type Message struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"conversationId" db:"conversation_id"`
	SenderID       int64     `json:"senderId" db:"sender_id"`
	Body           string    `json:"body" db:"body"`
	Image          string    `json:"image" db:"image"`
	TimeSent       time.Time `json:"timeSent" db:"time_sent"`

	// Related entities
	Sender    *User       `json:"sender,omitempty"`
	Reactions []*Reaction `json:"reactions,omitempty"`
	ReadBy    []*User     `json:"readBy,omitempty"`
}
