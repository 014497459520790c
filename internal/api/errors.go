package api

import (
	"errors"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/service"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// Error codes returned in the body of every error response. Clients branch on
// these, not on HTTP status or message text.
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeConflict      = "CONFLICT"
	CodeDBError       = "DB_ERROR"
	CodeExternalAPI   = "EXTERNAL_API_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// isValidationError reports whether the error is one of the domain or service
// validation sentinels that should surface as a 400.
func isValidationError(err error) bool {
	validationErrs := []error{
		domain.ErrValidation,
		domain.ErrInvalidID,
		domain.ErrInvalidRole,
		domain.ErrInvalidEmail,
		domain.ErrEnrollmentUserIDInvalid,
		domain.ErrEnrollmentCourseIDInvalid,
		domain.ErrEnrollmentStatusInvalid,
		domain.ErrProgressEnrollmentIDInvalid,
		domain.ErrProgressLessonIDInvalid,
		domain.ErrProgressPercentOutOfRange,
		domain.ErrUserEmailEmpty,
		domain.ErrUserPasswordTooShort,
		domain.ErrUserNameEmpty,
		domain.ErrCourseTitleEmpty,
		domain.ErrLessonTitleEmpty,
		domain.ErrLessonCourseIDInvalid,
		domain.ErrBoardTitleEmpty,
		service.ErrTextRequired,
		store.ErrInvalidEntity,
	}
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrAdminOnly),
		errors.Is(err, service.ErrLearnerOnly),
		errors.Is(err, service.ErrEnrollmentNotOwned):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate email surfaces as a validation failure on signup
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case isValidationError(err):
		return http.StatusBadRequest

	// Upstream AI failure
	case errors.Is(err, service.ErrExternalAPI):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCode maps internal errors to the stable error code carried in the
// response body.
func MapErrorToCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		return CodeUnauthorized

	case errors.Is(err, service.ErrAdminOnly),
		errors.Is(err, service.ErrLearnerOnly),
		errors.Is(err, service.ErrEnrollmentNotOwned):
		return CodeForbidden

	case store.IsNotFoundError(err):
		return CodeNotFound

	case errors.Is(err, store.ErrEmailExists):
		return CodeValidation

	case store.IsDuplicateError(err):
		return CodeConflict

	case isValidationError(err):
		return CodeValidation

	case errors.Is(err, service.ErrExternalAPI):
		return CodeExternalAPI

	case errors.Is(err, store.ErrTransactionFailed):
		return CodeDBError

	default:
		return CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, service.ErrAdminOnly):
		return "Admin role required"

	case errors.Is(err, service.ErrLearnerOnly):
		return "Learner role required"

	case errors.Is(err, service.ErrEnrollmentNotOwned):
		return "Enrollment does not belong to user"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"

	case errors.Is(err, store.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, store.ErrEnrollmentNotFound):
		return "Enrollment not found"

	case errors.Is(err, store.ErrBoardNotFound):
		return "Post not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, service.ErrExternalAPI):
		return "External AI service request failed"

	case isValidationError(err):
		// Domain validation sentinels carry no internal detail.
		return err.Error()

	case errors.Is(err, store.ErrTransactionFailed):
		return "Database error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the standard error response for an error returned
// by a service call: mapped status, stable code, and a sanitized message,
// with the full error logged.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	code := MapErrorToCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, code, message, err)
}
