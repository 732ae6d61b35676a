package types

import "time"

// Feedback is a client's rating of a delivery.
type Feedback struct {
	ID        FeedbackID `json:"id"`
	UserID    UserID     `json:"userId"`
	OrderID   OrderID    `json:"orderId,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FeedbackForm is the body of a submit-feedback request.
type FeedbackForm struct {
	OrderID OrderID `json:"orderId,omitempty"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}
