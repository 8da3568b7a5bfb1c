package invite

import "errors"

var (
	// ErrInviteNotFound indicates the invite doesn't exist.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrEmailRequired indicates a missing invitee email.
	ErrEmailRequired = errors.New("invite email required")
	// ErrAlreadyResolved indicates the invite was already accepted or declined.
	ErrAlreadyResolved = errors.New("invite already resolved")
)
