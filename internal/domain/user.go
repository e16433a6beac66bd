package domain

import "time"

// User represents a user entity in the system. Passwords and session
// state live in the external identity provider; only profile fields
// are stored here.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Viewer is the identity an inbound request acts as. A nil *Viewer
// means the request is anonymous.
type Viewer struct {
	UserID   string
	Username string
}

// IsAuthenticated reports whether the viewer carries an identity.
func (v *Viewer) IsAuthenticated() bool {
	return v != nil && v.UserID != ""
}
