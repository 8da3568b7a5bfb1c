package api

import "errors"

var (
	// ErrNotFound is returned when the referenced entity no longer exists
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the current identity lacks permission
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when the server rejects a request as malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable is returned for transport failures and server errors;
	// the operation did not apply and may be retried by the caller
	ErrUnavailable = errors.New("service unavailable")
)
