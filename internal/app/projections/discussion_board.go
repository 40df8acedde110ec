package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// ProjectDiscussionBoard is the full discussion board projection. The author
// is required; the vote counts come from the aggregation queries.
func ProjectDiscussionBoard(b *models.DiscussionBoard, agg DiscussionBoardAggregates, r URIResolver) (*dto.DiscussionBoardResponse, error) {
	if b.User == nil {
		return nil, missingReference("discussion board", b.ID, "user")
	}

	return &dto.DiscussionBoardResponse{
		URL:          r.DiscussionBoardURI(b.ID),
		Title:        b.Title,
		Body:         b.Body,
		User:         EmbedUser(b.User, r),
		PostedAt:     b.PostedAt,
		NumUpvotes:   agg.NumUpvotes,
		NumDownvotes: agg.NumDownvotes,
		TotalVotes:   agg.TotalVotes,
	}, nil
}
