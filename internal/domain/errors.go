package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a numeric identifier is zero or negative.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidRole is returned when a role name is not a member of the
	// closed role set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
