package services

import "errors"

// Sentinel errors returned by service methods. Handlers map these to HTTP
// statuses with errors.Is; anything else is treated as an internal error
// and never echoed to the client.
var (
	// ErrInvalidCredentials covers both "no such email" and "wrong
	// password" so login responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidOrExpiredToken is returned when a reset token does not
	// match any admin, was already consumed, or has expired.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrAdminNotFound is returned when an authenticated request
	// references an admin row that no longer exists.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrDeliveryFailure is returned when the email transport fails.
	ErrDeliveryFailure = errors.New("email delivery failed")
)
