package dto

import "time"

// ReactionResponse is the full reaction shape. User renders as a plain
// username string, never as an embedded object.
type ReactionResponse struct {
	Reaction string `json:"reaction"`
	User     string `json:"user"`
	URL      string `json:"url"`
}

// CommentResponse is the complete comment shape. LikedBy renders as plain
// usernames.
type CommentResponse struct {
	User     EmbeddedUserResponse `json:"user"`
	Post     string               `json:"post"`
	Body     string               `json:"body"`
	ID       int64                `json:"id"`
	URL      string               `json:"url"`
	PostedAt time.Time            `json:"posted_at"`
	LikedBy  []string             `json:"liked_by"`
}

// PostResponse is the complete post shape. LikedBy renders as plain usernames
// while Reactions render as full reaction objects; posts are the only place
// reactions appear as objects rather than strings.
type PostResponse struct {
	URL       string               `json:"url"`
	ID        int64                `json:"id"`
	User      EmbeddedUserResponse `json:"user"`
	Dog       string               `json:"dog"`
	Body      string               `json:"body"`
	Image     string               `json:"image"`
	PostedAt  time.Time            `json:"posted_at"`
	FontStyle string               `json:"font_style"`
	TextAlign string               `json:"text_align"`
	FontSize  string               `json:"font_size"`
	LikedBy   []string             `json:"liked_by"`
	Comments  []CommentResponse    `json:"comments"`
	Reactions []ReactionResponse   `json:"reactions"`
}
