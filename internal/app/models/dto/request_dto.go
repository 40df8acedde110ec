package dto

// RequestResponse is the complete connection-request shape, with both parties
// as embedded user objects.
type RequestResponse struct {
	URL       string               `json:"url"`
	ID        int64                `json:"id"`
	Proposing EmbeddedUserResponse `json:"proposing"`
	Receiving EmbeddedUserResponse `json:"receiving"`
	Accepted  bool                 `json:"accepted"`
}

// EmbeddedRequestResponse is the reduced shape nested inside a user response;
// the two parties collapse to plain username strings.
type EmbeddedRequestResponse struct {
	URL       string `json:"url"`
	Proposing string `json:"proposing"`
	Receiving string `json:"receiving"`
	Accepted  bool   `json:"accepted"`
}
