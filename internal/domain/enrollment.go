package domain

import (
	"errors"
	"fmt"
	"time"
)

// EnrollmentStatus represents the approval state of an enrollment.
type EnrollmentStatus string

// Possible enrollment status values. A new enrollment starts PENDING and is
// moved to ENROLLED or REJECTED by an administrator. No transition out of
// REJECTED is defined, but none is blocked either.
const (
	EnrollmentPending  EnrollmentStatus = "PENDING"
	EnrollmentEnrolled EnrollmentStatus = "ENROLLED"
	EnrollmentRejected EnrollmentStatus = "REJECTED"
)

// Enrollment-specific validation errors.
var (
	// ErrEnrollmentUserIDInvalid is returned when the learner reference is not positive.
	ErrEnrollmentUserIDInvalid = errors.New("enrollment user ID must be positive")

	// ErrEnrollmentCourseIDInvalid is returned when the course reference is not positive.
	ErrEnrollmentCourseIDInvalid = errors.New("enrollment course ID must be positive")

	// ErrEnrollmentStatusInvalid is returned when the status is not a member of
	// the closed status set.
	ErrEnrollmentStatusInvalid = errors.New("invalid enrollment status")
)

// Enrollment records a learner's intent to take a course and its approval
// state. At most one enrollment exists per (learner, course) pair; EnrolledAt
// is set once at creation and never changes.
type Enrollment struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"user_id"`
	CourseID   int64            `json:"course_id"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolled_at"`
}

// NewEnrollment creates a pending enrollment for the given learner and course
// with the current timestamp. Returns an error if validation fails.
func NewEnrollment(userID, courseID int64) (*Enrollment, error) {
	enrollment := &Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     EnrollmentPending,
		EnrolledAt: time.Now().UTC(),
	}

	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// ParseEnrollmentStatus maps a status name onto the closed status set.
func ParseEnrollmentStatus(value string) (EnrollmentStatus, error) {
	switch EnrollmentStatus(value) {
	case EnrollmentPending, EnrollmentEnrolled, EnrollmentRejected:
		return EnrollmentStatus(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrEnrollmentStatusInvalid, value)
	}
}

// Validate checks if the Enrollment has valid data.
func (e *Enrollment) Validate() error {
	if e.UserID <= 0 {
		return ErrEnrollmentUserIDInvalid
	}

	if e.CourseID <= 0 {
		return ErrEnrollmentCourseIDInvalid
	}

	if _, err := ParseEnrollmentStatus(string(e.Status)); err != nil {
		return err
	}

	return nil
}

// PendingEnrollment is an enrollment joined with learner and course display
// fields, as shown on the administrator approval queue.
type PendingEnrollment struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	UserEmail   string           `json:"user_email"`
	UserName    string           `json:"user_name"`
	CourseID    int64            `json:"course_id"`
	CourseTitle string           `json:"course_title"`
	Status      EnrollmentStatus `json:"status"`
	EnrolledAt  time.Time        `json:"enrolled_at"`
}
