package store

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// EnrollmentStore defines the interface for enrollment ledger persistence.
type EnrollmentStore interface {
	// Enroll records the learner's enrollment in the course and returns the
	// resulting row. The operation is idempotent per (userID, courseID): if
	// an enrollment already exists it is returned unchanged, with no new row
	// and no status change. Implementations must make the insert atomic
	// against concurrent enroll calls for the same pair, backed by a unique
	// constraint on (user_id, course_id).
	Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error)

	// GetByID retrieves an enrollment by its unique ID.
	// Returns ErrEnrollmentNotFound if the enrollment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Enrollment, error)

	// OwnedByUser reports whether the enrollment with the given ID belongs to
	// the given user. A missing enrollment reports false, not an error.
	OwnedByUser(ctx context.Context, enrollmentID, userID int64) (bool, error)

	// UpdateStatus transitions an enrollment's status unconditionally.
	// Returns ErrEnrollmentNotFound if no row was affected.
	UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error

	// ListPending returns pending enrollments joined with learner and course
	// display fields, ordered most-recent-first.
	ListPending(ctx context.Context) ([]*domain.PendingEnrollment, error)
}
