package models

// Request defines a pending social connection invitation based on the
// 'requests' table.
type Request struct {
	ID          int64 `json:"id" db:"id"`
	ProposingID int64 `json:"proposingId" db:"proposing_id"`
	ReceivingID int64 `json:"receivingId" db:"receiving_id"`
	Accepted    bool  `json:"accepted" db:"accepted"`

	// Related entities
	Proposing *User `json:"proposing,omitempty"`
	Receiving *User `json:"receiving,omitempty"`
}
