package types

import "time"

// ApplicationStatus is the review state of a volunteer application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a client's request to become a volunteer.
type Application struct {
	ID           ApplicationID     `json:"id"`
	UserID       UserID            `json:"userId"`
	Username     Username          `json:"username"`
	Motivation   string            `json:"motivation"`
	Availability string            `json:"availability,omitempty"`
	Status       ApplicationStatus `json:"status"`
	ReviewNote   string            `json:"reviewNote,omitempty"`
	SubmittedAt  time.Time         `json:"submittedAt"`
}

// ApplicationForm is the body of a submit-application request.
type ApplicationForm struct {
	Motivation   string `json:"motivation"`
	Availability string `json:"availability,omitempty"`
}
