// Package apiurl resolves record identities to their canonical API URIs.
package apiurl

import (
	"fmt"
	"strings"
)

// Resolver builds self URIs from a base URL and the route layout. It
// implements projections.URIResolver.
type Resolver struct {
	baseURL string
}

// NewResolver creates a Resolver. baseURL should include scheme, host and the
// API prefix, e.g. "http://localhost:8080/api/v1".
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *Resolver) uri(resource string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", r.baseURL, resource, id)
}

func (r *Resolver) UserURI(id int64) string            { return r.uri("users", id) }
func (r *Resolver) DogURI(id int64) string             { return r.uri("dogs", id) }
func (r *Resolver) ConversationURI(id int64) string    { return r.uri("conversations", id) }
func (r *Resolver) MessageURI(id int64) string         { return r.uri("messages", id) }
func (r *Resolver) ReactionURI(id int64) string        { return r.uri("reactions", id) }
func (r *Resolver) MeetupURI(id int64) string          { return r.uri("meetups", id) }
func (r *Resolver) PostURI(id int64) string            { return r.uri("posts", id) }
func (r *Resolver) CommentURI(id int64) string         { return r.uri("comments", id) }
func (r *Resolver) DiscussionBoardURI(id int64) string { return r.uri("discussion-boards", id) }
func (r *Resolver) RequestURI(id int64) string         { return r.uri("requests", id) }
func (r *Resolver) LocationURI(id int64) string        { return r.uri("locations", id) }
