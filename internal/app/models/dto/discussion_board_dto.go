package dto

import "time"

// DiscussionBoardResponse is the complete discussion board shape. The three
// vote counts are derived aggregates.
type DiscussionBoardResponse struct {
	URL          string               `json:"url"`
	Title        string               `json:"title"`
	Body         string               `json:"body"`
	User         EmbeddedUserResponse `json:"user"`
	PostedAt     time.Time            `json:"posted_at"`
	NumUpvotes   int64                `json:"num_upvotes"`
	NumDownvotes int64                `json:"num_downvotes"`
	TotalVotes   int64                `json:"total_votes"`
}
