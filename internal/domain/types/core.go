package types

// Username is the login name of a backend account.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// UserID identifies a backend account.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// OrderID identifies a delivery order.
type OrderID string

// String returns the string form of the identifier.
func (id OrderID) String() string { return string(id) }

// CargoID identifies an inventory item.
type CargoID string

// String returns the string form of the identifier.
func (id CargoID) String() string { return string(id) }

// ApplicationID identifies a volunteer application.
type ApplicationID string

// String returns the string form of the identifier.
func (id ApplicationID) String() string { return string(id) }

// RoundID identifies a volunteer round.
type RoundID string

// String returns the string form of the identifier.
func (id RoundID) String() string { return string(id) }

// FeedbackID identifies a feedback entry.
type FeedbackID string

// String returns the string form of the identifier.
func (id FeedbackID) String() string { return string(id) }

// SessionID is the opaque token the backend issues for a negotiated shared
// secret. It travels in the X-Session-ID header of encrypted requests.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Short returns a prefix of the session id that is safe to print in logs.
func (id SessionID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8]) + "…"
}
