package models

// Reaction defines a reaction attached to a message or a post, based on the
// 'reactions' table.
type Reaction struct {
	ID       int64  `json:"id" db:"id"`
	Reaction string `json:"reaction" db:"reaction"`
	UserID   int64  `json:"userId" db:"user_id"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// Display is the string form used wherever reactions render as plain strings.
func (r *Reaction) Display() string {
	return r.Reaction
}
