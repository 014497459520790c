package store

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// ProgressStore defines the interface for progress ledger persistence.
type ProgressStore interface {
	// Upsert records a progress report for the (enrollmentID, lessonID) pair
	// and returns the resulting row. If no record exists one is created;
	// otherwise the existing record's percentage and completion time are
	// overwritten. The completion time is set to now when completed and
	// cleared otherwise. Implementations must perform the insert-or-update as
	// a single atomic statement backed by a unique constraint on
	// (enrollment_id, lesson_id).
	Upsert(ctx context.Context, enrollmentID, lessonID int64, percent float64, completed bool) (*domain.Progress, error)

	// ListByEnrollment returns all progress records for the enrollment,
	// ordered by record ID.
	ListByEnrollment(ctx context.Context, enrollmentID int64) ([]*domain.Progress, error)

	// ListWatchedByUser returns, for each lesson the user has ever reported
	// positive progress on, the maximum observed percentage together with
	// course and lesson display fields, ordered by course title then lesson
	// order.
	ListWatchedByUser(ctx context.Context, userID int64) ([]*domain.WatchedLesson, error)
}
