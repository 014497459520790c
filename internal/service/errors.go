// Package service provides application-level services for enrollments,
// progress tracking, and user accounts. Services enforce role and ownership
// rules and translate store errors into service-level sentinels.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them onto HTTP
// status codes.
var (
	// ErrLearnerOnly indicates an operation reserved for learner-role actors.
	// API layer should map this to HTTP 403 Forbidden.
	ErrLearnerOnly = errors.New("operation requires learner role")

	// ErrAdminOnly indicates an operation reserved for administrator-role actors.
	// API layer should map this to HTTP 403 Forbidden.
	ErrAdminOnly = errors.New("operation requires administrator role")

	// ErrEnrollmentNotOwned indicates the enrollment exists but belongs to a
	// different learner, or does not exist at all. The two cases are not
	// distinguished so that probing for foreign enrollment IDs reveals nothing.
	// API layer should map this to HTTP 403 Forbidden.
	ErrEnrollmentNotOwned = errors.New("enrollment not owned by learner")

	// ErrInvalidCredentials indicates a failed login attempt. Unknown email and
	// wrong password are deliberately indistinguishable.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
