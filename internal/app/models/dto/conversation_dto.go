package dto

import "time"

// EmbeddedConversationResponse is the reduced conversation shape nested inside
// a user response.
type EmbeddedConversationResponse struct {
	URL       string    `json:"url"`
	ID        int64     `json:"id"`
	ConvoName string    `json:"convo_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse is the complete conversation shape. NumMessages and
// Unread are derived aggregates.
type ConversationResponse struct {
	ConvoName   string                    `json:"convo_name"`
	URL         string                    `json:"url"`
	ID          int64                     `json:"id"`
	Members     []EmbeddedUserResponse    `json:"members"`
	Messages    []EmbeddedMessageResponse `json:"messages"`
	CreatedAt   time.Time                 `json:"created_at"`
	Admin       EmbeddedUserResponse      `json:"admin"`
	NumMessages int64                     `json:"num_messages"`
	Unread      int64                     `json:"unread"`
}
