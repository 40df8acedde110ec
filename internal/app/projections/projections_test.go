package projections

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/pkg/apperrors"
)

type testResolver struct{}

func (testResolver) uri(resource string, id int64) string {
	return fmt.Sprintf("http://test/api/v1/%s/%d", resource, id)
}

func (r testResolver) UserURI(id int64) string            { return r.uri("users", id) }
func (r testResolver) DogURI(id int64) string             { return r.uri("dogs", id) }
func (r testResolver) ConversationURI(id int64) string    { return r.uri("conversations", id) }
func (r testResolver) MessageURI(id int64) string         { return r.uri("messages", id) }
func (r testResolver) ReactionURI(id int64) string        { return r.uri("reactions", id) }
func (r testResolver) MeetupURI(id int64) string          { return r.uri("meetups", id) }
func (r testResolver) PostURI(id int64) string            { return r.uri("posts", id) }
func (r testResolver) CommentURI(id int64) string         { return r.uri("comments", id) }
func (r testResolver) DiscussionBoardURI(id int64) string { return r.uri("discussion-boards", id) }
func (r testResolver) RequestURI(id int64) string         { return r.uri("requests", id) }
func (r testResolver) LocationURI(id int64) string        { return r.uri("locations", id) }

func testUser(id int64, username string) *models.User {
	return &models.User{ID: id, Username: username}
}

func testLocation(id int64) *models.Location {
	return &models.Location{
		ID:           id,
		Name:         "Central Bark",
		Description:  "Off-leash area near the lake",
		Coordinates:  models.Coordinates{Latitude: 40.785091, Longitude: -73.968285},
		Address:      "14 E 60th St, New York, NY",
		LocationType: models.LocationTypePark,
	}
}

func TestProjectUser(t *testing.T) {
	r := testResolver{}

	u := testUser(7, "alice")
	u.FirstName = "Alice"
	u.Dogs = []*models.Dog{
		{ID: 1, Name: "Rex"},
		{ID: 2, Name: "Fido"},
		{ID: 3, Name: "Spot"},
	}
	u.Followers = []*models.User{testUser(8, "bob"), testUser(9, "carol")}
	u.Conversations = []*models.Conversation{{ID: 4, ConvoName: "park crew"}}
	u.RequestsSent = []*models.Request{
		{ID: 5, Proposing: u, Receiving: testUser(8, "bob")},
	}
	u.Meetups = []*models.Meetup{
		{ID: 6, StartTime: time.Now(), Location: testLocation(11)},
	}

	agg := UserAggregates{
		NumFollowers:     2,
		NumConversations: 1,
		NumFriends:       0,
		UnreadMessages:   4,
		FriendRequests:   1,
	}

	resp, err := ProjectUser(u, agg, r)
	require.NoError(t, err)

	assert.Equal(t, "http://test/api/v1/users/7", resp.URL)
	assert.Equal(t, "alice", resp.Username)
	assert.Len(t, resp.Dogs, 3)
	assert.Equal(t, "Rex", resp.Dogs[0].Name)
	assert.Equal(t, "http://test/api/v1/dogs/1", resp.Dogs[0].URL)

	// Related users embed as identity triples, not full documents.
	require.Len(t, resp.Followers, 2)
	assert.Equal(t, "bob", resp.Followers[0].Username)
	assert.Equal(t, int64(8), resp.Followers[0].ID)

	// Requests collapse both parties to usernames inside a user document.
	require.Len(t, resp.RequestsSent, 1)
	assert.Equal(t, "alice", resp.RequestsSent[0].Proposing)
	assert.Equal(t, "bob", resp.RequestsSent[0].Receiving)

	require.Len(t, resp.Meetups, 1)
	assert.Equal(t, "Central Bark", resp.Meetups[0].Location.Name)

	// Aggregates are positioned verbatim.
	assert.Equal(t, int64(2), resp.NumFollowers)
	assert.Equal(t, int64(4), resp.UnreadMessages)
	assert.Equal(t, int64(1), resp.FriendRequests)

	// Empty relations render as empty lists, never null.
	assert.NotNil(t, resp.Friends)
	assert.Empty(t, resp.Friends)
}

func TestProjectUserMeetupWithoutLocationFails(t *testing.T) {
	u := testUser(7, "alice")
	u.Meetups = []*models.Meetup{{ID: 6}}

	_, err := ProjectUser(u, UserAggregates{}, testResolver{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestMessageProjectionForms(t *testing.T) {
	r := testResolver{}
	sent := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	m := &models.Message{
		ID:             21,
		ConversationID: 4,
		Body:           "dog park at 3?",
		TimeSent:       sent,
		Sender:         testUser(7, "alice"),
		Reactions: []*models.Reaction{
			{ID: 1, Reaction: "👍", User: testUser(8, "bob")},
			{ID: 2, Reaction: "🐶", User: testUser(9, "carol")},
		},
		ReadBy: []*models.User{
			testUser(8, "bob"),
			testUser(9, "carol"),
			testUser(10, "dave"),
		},
	}

	embedded, err := EmbedMessage(m, r)
	require.NoError(t, err)
	full, err := ProjectMessage(m, r)
	require.NoError(t, err)

	// Reactions render as display strings in both forms.
	assert.Equal(t, []string{"👍", "🐶"}, embedded.Reactions)
	assert.Equal(t, []string{"👍", "🐶"}, full.Reactions)

	// read_by is usernames in the embedded form and raw IDs in the full form.
	assert.Equal(t, []string{"bob", "carol", "dave"}, embedded.ReadBy)
	assert.Equal(t, []int64{8, 9, 10}, full.ReadBy)

	assert.Equal(t, "alice", embedded.Sender.Username)
	assert.Equal(t, "alice", full.Sender.Username)
	assert.Equal(t, "http://test/api/v1/conversations/4", full.Conversation)
}

func TestProjectMessageWithoutSenderFails(t *testing.T) {
	m := &models.Message{ID: 21, Body: "orphaned"}

	_, err := ProjectMessage(m, testResolver{})
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)

	_, err = EmbedMessage(m, testResolver{})
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestProjectPost(t *testing.T) {
	r := testResolver{}

	p := &models.Post{
		ID:    31,
		DogID: 2,
		Body:  "first walk of spring",
		User:  testUser(7, "alice"),
		LikedBy: []*models.User{
			testUser(8, "bob"),
			testUser(9, "carol"),
		},
		Comments: []*models.Comment{
			{ID: 41, PostID: 31, Body: "cute!", User: testUser(8, "bob"),
				LikedBy: []*models.User{testUser(7, "alice")}},
		},
		Reactions: []*models.Reaction{
			{ID: 51, Reaction: "❤️", User: testUser(9, "carol")},
		},
	}

	resp, err := ProjectPost(p, r)
	require.NoError(t, err)

	assert.Equal(t, "http://test/api/v1/dogs/2", resp.Dog)
	assert.Equal(t, []string{"bob", "carol"}, resp.LikedBy)

	// Posts are the one place reactions render as objects, with the reacting
	// user as a plain username string.
	require.Len(t, resp.Reactions, 1)
	assert.Equal(t, "❤️", resp.Reactions[0].Reaction)
	assert.Equal(t, "carol", resp.Reactions[0].User)
	assert.Equal(t, "http://test/api/v1/reactions/51", resp.Reactions[0].URL)

	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "bob", resp.Comments[0].User.Username)
	assert.Equal(t, []string{"alice"}, resp.Comments[0].LikedBy)
	assert.Equal(t, "http://test/api/v1/posts/31", resp.Comments[0].Post)
}

func TestProjectPostReactionWithoutUserFails(t *testing.T) {
	p := &models.Post{
		ID:        31,
		User:      testUser(7, "alice"),
		Reactions: []*models.Reaction{{ID: 51, Reaction: "❤️"}},
	}

	_, err := ProjectPost(p, testResolver{})
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestRequestProjectionForms(t *testing.T) {
	r := testResolver{}

	req := &models.Request{
		ID:        5,
		Proposing: testUser(7, "alice"),
		Receiving: testUser(8, "bob"),
		Accepted:  false,
	}

	full, err := ProjectRequest(req, r)
	require.NoError(t, err)
	embedded, err := EmbedRequest(req, r)
	require.NoError(t, err)

	// The full form carries embedded user objects, the reduced form only
	// usernames; both describe the same record.
	assert.Equal(t, "alice", full.Proposing.Username)
	assert.Equal(t, int64(8), full.Receiving.ID)
	assert.Equal(t, "alice", embedded.Proposing)
	assert.Equal(t, "bob", embedded.Receiving)
	assert.Equal(t, full.URL, embedded.URL)
}

func TestRequestProjectionsMissingPartyFails(t *testing.T) {
	r := testResolver{}

	_, err := ProjectRequest(&models.Request{ID: 5, Receiving: testUser(8, "bob")}, r)
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)

	_, err = EmbedRequest(&models.Request{ID: 5, Proposing: testUser(7, "alice")}, r)
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestProjectConversation(t *testing.T) {
	r := testResolver{}
	admin := testUser(7, "alice")

	c := &models.Conversation{
		ID:        4,
		ConvoName: "park crew",
		Admin:     admin,
		Members:   []*models.User{admin, testUser(8, "bob")},
		Messages: []*models.Message{
			{ID: 21, Sender: admin, Body: "anyone around?"},
			{ID: 22, Sender: testUser(8, "bob"), Body: "omw"},
		},
	}

	resp, err := ProjectConversation(c, ConversationAggregates{NumMessages: 2, Unread: 1}, r)
	require.NoError(t, err)

	assert.Equal(t, "park crew", resp.ConvoName)
	assert.Equal(t, "alice", resp.Admin.Username)
	assert.Len(t, resp.Members, 2)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "anyone around?", resp.Messages[0].Body)
	assert.Equal(t, int64(2), resp.NumMessages)
	assert.Equal(t, int64(1), resp.Unread)
}

func TestProjectDog(t *testing.T) {
	d := &models.Dog{
		ID:    2,
		Name:  "Fido",
		Breed: "Beagle",
		Owner: testUser(7, "alice"),
	}

	resp, err := ProjectDog(d, DogAggregates{NumPosts: 3}, testResolver{})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Owner.Username)
	assert.Equal(t, int64(3), resp.NumPosts)

	d.Owner = nil
	_, err = ProjectDog(d, DogAggregates{}, testResolver{})
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestProjectMeetup(t *testing.T) {
	r := testResolver{}

	m := &models.Meetup{
		ID:        6,
		Admin:     testUser(7, "alice"),
		Attending: []*models.User{testUser(8, "bob")},
		Location:  testLocation(11),
	}

	resp, err := ProjectMeetup(m, r)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Admin.Username)
	assert.Equal(t, "Central Bark", resp.Location.Name)
	assert.Equal(t, 40.785091, resp.Location.Coordinates.Latitude)

	m.Location = nil
	_, err = ProjectMeetup(m, r)
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestProjectDiscussionBoard(t *testing.T) {
	b := &models.DiscussionBoard{
		ID:    61,
		Title: "Best trails near downtown",
		User:  testUser(7, "alice"),
	}

	agg := DiscussionBoardAggregates{NumUpvotes: 5, NumDownvotes: 2, TotalVotes: 3}
	resp, err := ProjectDiscussionBoard(b, agg, testResolver{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.NumUpvotes)
	assert.Equal(t, int64(3), resp.TotalVotes)

	b.User = nil
	_, err = ProjectDiscussionBoard(b, agg, testResolver{})
	assert.ErrorIs(t, err, apperrors.ErrMissingReference)
}

func TestProjectLocation(t *testing.T) {
	r := testResolver{}
	start := time.Date(2024, 5, 4, 15, 0, 0, 0, time.UTC)

	l := testLocation(11)
	l.Meetups = []*models.Meetup{
		{ID: 6, StartTime: start, EndTime: start.Add(2 * time.Hour)},
	}

	resp, err := ProjectLocation(l, LocationAggregates{NumMeetups: 1}, r)
	require.NoError(t, err)

	assert.Equal(t, "Central Bark", resp.Name)
	assert.Equal(t, "Park", resp.LocationType)
	assert.Equal(t, 40.785091, resp.Coordinates.Latitude)
	assert.Equal(t, -73.968285, resp.Coordinates.Longitude)
	assert.Equal(t, int64(1), resp.NumMeetups)

	// The meetup list under a location is minimal: self URI and time window.
	require.Len(t, resp.Meetups, 1)
	assert.Equal(t, "http://test/api/v1/meetups/6", resp.Meetups[0].URL)
	assert.Equal(t, start, resp.Meetups[0].StartTime)
}

func TestEmbedLocation(t *testing.T) {
	resp := EmbedLocation(testLocation(11), testResolver{})
	assert.Equal(t, "Central Bark", resp.Name)
	assert.Equal(t, "14 E 60th St, New York, NY", resp.Address)
	assert.Equal(t, "http://test/api/v1/locations/11", resp.URL)
}
