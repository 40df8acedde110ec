package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// ProjectReaction is the full reaction projection. The reacting user is
// required and renders as a plain username string, never an embedded object.
func ProjectReaction(re *models.Reaction, r URIResolver) (*dto.ReactionResponse, error) {
	if re.User == nil {
		return nil, missingReference("reaction", re.ID, "user")
	}

	return &dto.ReactionResponse{
		Reaction: re.Reaction,
		User:     re.User.Username,
		URL:      r.ReactionURI(re.ID),
	}, nil
}

// ProjectComment is the full comment projection. The author is required;
// liked_by renders as plain usernames.
func ProjectComment(c *models.Comment, r URIResolver) (*dto.CommentResponse, error) {
	if c.User == nil {
		return nil, missingReference("comment", c.ID, "user")
	}

	return &dto.CommentResponse{
		User:     EmbedUser(c.User, r),
		Post:     r.PostURI(c.PostID),
		Body:     c.Body,
		ID:       c.ID,
		URL:      r.CommentURI(c.ID),
		PostedAt: c.PostedAt,
		LikedBy:  usernames(c.LikedBy),
	}, nil
}

// ProjectPost is the full post projection. The author is required. liked_by
// renders as usernames; reactions render as full reaction objects — the only
// place they do.
func ProjectPost(p *models.Post, r URIResolver) (*dto.PostResponse, error) {
	if p.User == nil {
		return nil, missingReference("post", p.ID, "user")
	}

	comments := make([]dto.CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		pc, err := ProjectComment(c, r)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *pc)
	}

	reactions := make([]dto.ReactionResponse, 0, len(p.Reactions))
	for _, re := range p.Reactions {
		pr, err := ProjectReaction(re, r)
		if err != nil {
			return nil, err
		}
		reactions = append(reactions, *pr)
	}

	return &dto.PostResponse{
		URL:       r.PostURI(p.ID),
		ID:        p.ID,
		User:      EmbedUser(p.User, r),
		Dog:       r.DogURI(p.DogID),
		Body:      p.Body,
		Image:     p.Image,
		PostedAt:  p.PostedAt,
		FontStyle: p.FontStyle,
		TextAlign: p.TextAlign,
		FontSize:  p.FontSize,
		LikedBy:   usernames(p.LikedBy),
		Comments:  comments,
		Reactions: reactions,
	}, nil
}
