package dto

import "time"

// EmbeddedMessageResponse is the message shape nested inside a conversation.
// Reactions render as display strings and ReadBy as plain usernames.
type EmbeddedMessageResponse struct {
	URL       string               `json:"url"`
	Sender    EmbeddedUserResponse `json:"sender"`
	TimeSent  time.Time            `json:"time_sent"`
	Body      string               `json:"body"`
	Reactions []string             `json:"reactions"`
	Image     string               `json:"image"`
	ReadBy    []string             `json:"read_by"`
}

// MessageResponse is the complete message shape. Reactions render as display
// strings just like the embedded form, but ReadBy stays a list of raw user
// identifiers. The asymmetry is part of the wire contract.
type MessageResponse struct {
	Sender       EmbeddedUserResponse `json:"sender"`
	Conversation string               `json:"conversation"`
	URL          string               `json:"url"`
	TimeSent     time.Time            `json:"time_sent"`
	Body         string               `json:"body"`
	Reactions    []string             `json:"reactions"`
	Image        string               `json:"image"`
	ReadBy       []int64              `json:"read_by"`
}
