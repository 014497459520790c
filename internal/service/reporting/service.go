// Package reporting implements the administrative report engine: period
// summaries over the enrollment ledger and per-learner progress detail, plus
// CSV rendering for export endpoints. All reports are computed on demand from
// current ledger state; nothing is cached or persisted.
package reporting

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// Service provides the report queries. Period reports are bounded by
// enrollment date: a row participates when its enrolled_at falls within
// [from, to] measured in whole calendar days, inclusive on both ends.
type Service interface {
	// CoursePeriod returns, per course with at least one enrollment in the
	// period, the distinct learner count and the average progress percentage
	// coalesced to zero. A non-nil courseID restricts the report to one
	// course. Rows are ordered by course ID. Admin-only.
	CoursePeriod(ctx context.Context, actor domain.Actor, from, to time.Time, courseID *int64) ([]*domain.CoursePeriodRow, error)

	// CourseCompletion returns, per course in the period, the count of
	// distinct learners with at least one lesson at exactly 100 percent.
	// Rows are ordered by course ID. Admin-only.
	CourseCompletion(ctx context.Context, actor domain.Actor, from, to time.Time, courseID *int64) ([]*domain.CourseCompletionRow, error)

	// LearnerProgress returns per-(learner, course) detail rows.
	// Administrators see every learner, or one when userID is non-nil;
	// learners always see only themselves regardless of userID.
	LearnerProgress(ctx context.Context, actor domain.Actor, userID *int64) ([]*domain.LearnerProgressRow, error)
}
