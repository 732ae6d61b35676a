package types

import "time"

// RoundStatus is the backend-owned state of a round.
type RoundStatus string

const (
	RoundOpen   RoundStatus = "open"
	RoundDrawn  RoundStatus = "drawn"
	RoundClosed RoundStatus = "closed"
)

// Round is a scheduled volunteer outreach event. Selected is filled in by
// the backend lottery when the round is drawn.
type Round struct {
	ID       RoundID     `json:"id"`
	Title    string      `json:"title"`
	Location string      `json:"location,omitempty"`
	StartsAt time.Time   `json:"startsAt"`
	Capacity int         `json:"capacity"`
	Signups  []UserID    `json:"signups"`
	Selected []UserID    `json:"selected,omitempty"`
	Status   RoundStatus `json:"status"`
}

// HasSignup reports whether id is on the signup list.
func (r Round) HasSignup(id UserID) bool {
	for _, s := range r.Signups {
		if s == id {
			return true
		}
	}
	return false
}

// NewRound is the body of a create-round request.
type NewRound struct {
	Title    string    `json:"title"`
	Location string    `json:"location,omitempty"`
	StartsAt time.Time `json:"startsAt"`
	Capacity int       `json:"capacity"`
}
