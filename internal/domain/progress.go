package domain

import (
	"errors"
	"time"
)

// CompletionThreshold is the progress percentage at which a lesson counts as
// completed.
const CompletionThreshold = 100.0

// Progress-specific validation errors.
var (
	// ErrProgressEnrollmentIDInvalid is returned when the owning enrollment
	// reference is not positive.
	ErrProgressEnrollmentIDInvalid = errors.New("progress enrollment ID must be positive")

	// ErrProgressLessonIDInvalid is returned when the lesson reference is not positive.
	ErrProgressLessonIDInvalid = errors.New("progress lesson ID must be positive")

	// ErrProgressPercentOutOfRange is returned when the percentage falls
	// outside [0, 100].
	ErrProgressPercentOutOfRange = errors.New("progress percent must be between 0 and 100")
)

// Progress is the most recent completion percentage a learner has reported
// for one lesson within one enrollment. Exactly one record exists per
// (enrollment, lesson) pair. CompletedAt tracks the latest report: it is set
// when the percentage reaches the completion threshold and cleared again if a
// later report drops below it.
type Progress struct {
	ID              int64      `json:"id"`
	EnrollmentID    int64      `json:"enrollment_id"`
	LessonID        int64      `json:"lesson_id"`
	ProgressPercent float64    `json:"progress_percent"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// Completed reports whether the record's percentage has reached the
// completion threshold.
func (p *Progress) Completed() bool {
	return p.ProgressPercent >= CompletionThreshold
}

// Validate checks if the Progress record has valid data.
func (p *Progress) Validate() error {
	if p.EnrollmentID <= 0 {
		return ErrProgressEnrollmentIDInvalid
	}

	if p.LessonID <= 0 {
		return ErrProgressLessonIDInvalid
	}

	if p.ProgressPercent < 0 || p.ProgressPercent > 100 {
		return ErrProgressPercentOutOfRange
	}

	return nil
}

// WatchedLesson is a lesson a learner has reported positive progress on,
// aggregated across all of the learner's enrollments using the maximum
// observed percentage per lesson.
type WatchedLesson struct {
	LessonID        int64   `json:"lesson_id"`
	CourseID        int64   `json:"course_id"`
	CourseTitle     string  `json:"course_title"`
	LessonTitle     string  `json:"lesson_title"`
	LessonContent   string  `json:"lesson_content"`
	ProgressPercent float64 `json:"progress_percent"`
}
