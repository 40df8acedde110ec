package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// EmbedConversation is the reduced conversation projection used inside a user
// response. Members and messages are deliberately absent.
func EmbedConversation(c *models.Conversation, r URIResolver) dto.EmbeddedConversationResponse {
	return dto.EmbeddedConversationResponse{
		URL:       r.ConversationURI(c.ID),
		ID:        c.ID,
		ConvoName: c.ConvoName,
		CreatedAt: c.CreatedAt,
	}
}

// ProjectConversation is the full conversation projection. The admin is
// required; messages keep their stored order.
func ProjectConversation(c *models.Conversation, agg ConversationAggregates, r URIResolver) (*dto.ConversationResponse, error) {
	if c.Admin == nil {
		return nil, missingReference("conversation", c.ID, "admin")
	}

	messages := make([]dto.EmbeddedMessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		em, err := EmbedMessage(m, r)
		if err != nil {
			return nil, err
		}
		messages = append(messages, em)
	}

	return &dto.ConversationResponse{
		ConvoName:   c.ConvoName,
		URL:         r.ConversationURI(c.ID),
		ID:          c.ID,
		Members:     embedUsers(c.Members, r),
		Messages:    messages,
		CreatedAt:   c.CreatedAt,
		Admin:       EmbedUser(c.Admin, r),
		NumMessages: agg.NumMessages,
		Unread:      agg.Unread,
	}, nil
}
