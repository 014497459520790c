package store

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// ReportStore defines the read-only aggregate queries behind the report
// engine. All rows are computed on demand from current ledger state; nothing
// is cached or persisted.
type ReportStore interface {
	// CoursePeriod returns, for each course with at least one enrollment in
	// [from, to] (calendar days, inclusive), the distinct learner count and
	// the average of all associated progress percentages coalesced to zero.
	// A non-nil courseID restricts the result to that course. Rows are
	// ordered by course ID ascending.
	CoursePeriod(ctx context.Context, from, to time.Time, courseID *int64) ([]*domain.CoursePeriodRow, error)

	// CourseCompletion returns, for each course in range, the count of
	// distinct learners having at least one progress record at exactly 100
	// percent. Rows are ordered by course ID ascending.
	CourseCompletion(ctx context.Context, from, to time.Time, courseID *int64) ([]*domain.CourseCompletionRow, error)

	// LearnerProgress returns, per (learner, course) pair for learner-role
	// users, the coalesced average progress and completed/total lesson
	// counts. A non-nil userID restricts the result to that learner. Rows are
	// ordered by user ID then course ID.
	LearnerProgress(ctx context.Context, userID *int64) ([]*domain.LearnerProgressRow, error)
}
