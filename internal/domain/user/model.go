package user

import "time"

// User identifies an account in the workspace. Identity is established by
// the session provider; the core only carries the reference.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Label returns the name to show for the user, falling back to email.
func (u User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
