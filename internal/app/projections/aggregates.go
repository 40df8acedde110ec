package projections

// Aggregate inputs are counts computed by the aggregation queries and placed
// into full projections verbatim. They are value structs, so a caller cannot
// forget to supply one at runtime. Counts are usually read by separate queries
// from the one fetching the record and may be momentarily stale relative to
// the relation lists they accompany; callers needing exact consistency must
// read both inside one transaction.

// UserAggregates carries the derived counts of a full user projection.
type UserAggregates struct {
	NumFollowers     int64
	NumConversations int64
	NumFriends       int64
	UnreadMessages   int64
	FriendRequests   int64
}

// ConversationAggregates carries the derived counts of a full conversation
// projection. Unread is relative to the requesting user.
type ConversationAggregates struct {
	NumMessages int64
	Unread      int64
}

// DogAggregates carries the derived counts of a full dog projection.
type DogAggregates struct {
	NumPosts int64
}

// DiscussionBoardAggregates carries the derived vote counts of a full
// discussion board projection.
type DiscussionBoardAggregates struct {
	NumUpvotes   int64
	NumDownvotes int64
	TotalVotes   int64
}

// LocationAggregates carries the derived counts of a full location projection.
type LocationAggregates struct {
	NumMeetups int64
}
