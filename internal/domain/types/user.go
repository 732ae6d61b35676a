package types

// Role gates which operations a logged-in account may use.
type Role string

const (
	RoleClient    Role = "client"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// String returns the string form of the role.
func (r Role) String() string { return string(r) }

// User is a backend account as returned by the user endpoints.
type User struct {
	ID       UserID   `json:"id"`
	Username Username `json:"username"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Role     Role     `json:"role"`
}

// Credentials is the login form.
type Credentials struct {
	Username Username `json:"username"`
	Password string   `json:"password"`
}

// Registration is the sign-up form.
type Registration struct {
	Username Username `json:"username"`
	Password string   `json:"password"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
}

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
