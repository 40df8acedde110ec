// Package projections turns persisted records into the response shapes the
// API delivers. Every entity has a full projection used when it is the primary
// subject of a response, and most also have an embedded projection used when
// they appear nested inside another entity. Projections are pure: they read an
// already-materialized record graph plus caller-supplied aggregate counts and
// either produce a complete document or fail with a missing-reference error.
package projections

// URIResolver resolves a record's identity to its canonical self URI. The
// actual resolution (routing, host, versioning) belongs to the caller; the
// projections only position the resolved value.
type URIResolver interface {
	UserURI(id int64) string
	DogURI(id int64) string
	ConversationURI(id int64) string
	MessageURI(id int64) string
	ReactionURI(id int64) string
	MeetupURI(id int64) string
	PostURI(id int64) string
	CommentURI(id int64) string
	DiscussionBoardURI(id int64) string
	RequestURI(id int64) string
	LocationURI(id int64) string
}
