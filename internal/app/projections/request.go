package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// ProjectRequest is the full connection-request projection; both parties are
// required and render as embedded user objects.
func ProjectRequest(req *models.Request, r URIResolver) (*dto.RequestResponse, error) {
	if req.Proposing == nil {
		return nil, missingReference("request", req.ID, "proposing user")
	}
	if req.Receiving == nil {
		return nil, missingReference("request", req.ID, "receiving user")
	}

	return &dto.RequestResponse{
		URL:       r.RequestURI(req.ID),
		ID:        req.ID,
		Proposing: EmbedUser(req.Proposing, r),
		Receiving: EmbedUser(req.Receiving, r),
		Accepted:  req.Accepted,
	}, nil
}

// EmbedRequest is the reduced projection used inside a user response; the
// parties collapse to plain username strings. Both forms coexist for the same
// record.
func EmbedRequest(req *models.Request, r URIResolver) (dto.EmbeddedRequestResponse, error) {
	if req.Proposing == nil {
		return dto.EmbeddedRequestResponse{}, missingReference("request", req.ID, "proposing user")
	}
	if req.Receiving == nil {
		return dto.EmbeddedRequestResponse{}, missingReference("request", req.ID, "receiving user")
	}

	return dto.EmbeddedRequestResponse{
		URL:       r.RequestURI(req.ID),
		Proposing: req.Proposing.Username,
		Receiving: req.Receiving.Username,
		Accepted:  req.Accepted,
	}, nil
}
