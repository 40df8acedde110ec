package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// reactionStrings collapses reactions to their display strings. Everywhere
// except a post's reaction list, reactions render this way.
func reactionStrings(reactions []*models.Reaction) []string {
	out := make([]string, 0, len(reactions))
	for _, re := range reactions {
		out = append(out, re.Display())
	}
	return out
}

// EmbedMessage is the message projection used inside a conversation. The
// sender is required; read_by renders as plain usernames.
func EmbedMessage(m *models.Message, r URIResolver) (dto.EmbeddedMessageResponse, error) {
	if m.Sender == nil {
		return dto.EmbeddedMessageResponse{}, missingReference("message", m.ID, "sender")
	}

	return dto.EmbeddedMessageResponse{
		URL:       r.MessageURI(m.ID),
		Sender:    EmbedUser(m.Sender, r),
		TimeSent:  m.TimeSent,
		Body:      m.Body,
		Reactions: reactionStrings(m.Reactions),
		Image:     m.Image,
		ReadBy:    usernames(m.ReadBy),
	}, nil
}

// ProjectMessage is the full message projection. Unlike the embedded form,
// read_by renders as raw user identifiers here; both forms must be producible
// from the same record.
func ProjectMessage(m *models.Message, r URIResolver) (*dto.MessageResponse, error) {
	if m.Sender == nil {
		return nil, missingReference("message", m.ID, "sender")
	}

	readBy := make([]int64, 0, len(m.ReadBy))
	for _, u := range m.ReadBy {
		readBy = append(readBy, u.ID)
	}

	return &dto.MessageResponse{
		Sender:       EmbedUser(m.Sender, r),
		Conversation: r.ConversationURI(m.ConversationID),
		URL:          r.MessageURI(m.ID),
		TimeSent:     m.TimeSent,
		Body:         m.Body,
		Reactions:    reactionStrings(m.Reactions),
		Image:        m.Image,
		ReadBy:       readBy,
	}, nil
}
