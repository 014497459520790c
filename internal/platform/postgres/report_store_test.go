package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/testdb"
)

func TestReportStoreCoursePeriodZeroFill(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		learner := seedLearner(t, tx, "report-zero-fill")
		course := seedCourse(t, tx, "Go Basics")
		_, err := NewEnrollmentStore(tx, nil).Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)

		from := time.Now().UTC().Add(-24 * time.Hour)
		to := time.Now().UTC()

		rows, err := NewReportStore(tx, nil).CoursePeriod(ctx, from, to, &course.ID)
		require.NoError(t, err)

		// An enrollment with no progress rows still produces a report row,
		// with the average coalesced to zero.
		require.Len(t, rows, 1)
		assert.Equal(t, course.ID, rows[0].CourseID)
		assert.Equal(t, "Go Basics", rows[0].CourseTitle)
		assert.Equal(t, int64(1), rows[0].LearnerCount)
		assert.Zero(t, rows[0].AvgProgress)
	})
}

func TestReportStoreCoursePeriodBounds(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		course := seedCourse(t, tx, "Bounded Course")
		enrollments := NewEnrollmentStore(tx, nil)

		enrollAt := func(slug string, at time.Time) {
			learner := seedLearner(t, tx, slug)
			enrollment, err := enrollments.Enroll(ctx, learner.ID, course.ID)
			require.NoError(t, err)
			setEnrolledAt(t, tx, enrollment.ID, at)
		}

		enrollAt("bounds-first-day", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		enrollAt("bounds-last-day", time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC))
		enrollAt("bounds-day-after", time.Date(2026, 7, 1, 0, 30, 0, 0, time.UTC))

		reports := NewReportStore(tx, nil)
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

		// The upper bound covers the whole `to` calendar day but not the
		// next one.
		rows, err := reports.CoursePeriod(ctx, from, to, &course.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2), rows[0].LearnerCount)

		rows, err = reports.CoursePeriod(ctx, from, to.AddDate(0, 0, 1), &course.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(3), rows[0].LearnerCount)

		// The lower bound is a plain inclusive comparison.
		rows, err = reports.CoursePeriod(ctx, from.AddDate(0, 0, 1), to, &course.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1), rows[0].LearnerCount)
	})
}

func TestReportStoreCoursePeriodOrdering(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		// Titles sort against creation order on purpose: the report orders
		// by course ID, not title.
		zed := seedCourse(t, tx, "Zed")
		alpha := seedCourse(t, tx, "Alpha")

		learner := seedLearner(t, tx, "report-ordering")
		enrollments := NewEnrollmentStore(tx, nil)

		// A far-past window keeps unrelated rows out of the unfiltered report.
		at := time.Date(2001, 5, 1, 12, 0, 0, 0, time.UTC)
		for _, courseID := range []int64{zed.ID, alpha.ID} {
			enrollment, err := enrollments.Enroll(ctx, learner.ID, courseID)
			require.NoError(t, err)
			setEnrolledAt(t, tx, enrollment.ID, at)
		}

		from := time.Date(2001, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2001, 5, 2, 0, 0, 0, 0, time.UTC)

		rows, err := NewReportStore(tx, nil).CoursePeriod(ctx, from, to, nil)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, zed.ID, rows[0].CourseID)
		assert.Equal(t, alpha.ID, rows[1].CourseID)
		assert.Less(t, rows[0].CourseID, rows[1].CourseID)
	})
}

func TestReportStoreCourseCompletion(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		course := seedCourse(t, tx, "Completion Course")
		lesson := seedLesson(t, tx, course.ID, "Finale", 1)

		finished := seedLearner(t, tx, "completion-finished")
		almost := seedLearner(t, tx, "completion-almost")

		enrollments := NewEnrollmentStore(tx, nil)
		progress := NewProgressStore(tx, nil)

		finishedEnrollment, err := enrollments.Enroll(ctx, finished.ID, course.ID)
		require.NoError(t, err)
		_, err = progress.Upsert(ctx, finishedEnrollment.ID, lesson.ID, 100, true)
		require.NoError(t, err)

		almostEnrollment, err := enrollments.Enroll(ctx, almost.ID, course.ID)
		require.NoError(t, err)
		_, err = progress.Upsert(ctx, almostEnrollment.ID, lesson.ID, 99.5, false)
		require.NoError(t, err)

		from := time.Now().UTC().Add(-24 * time.Hour)
		to := time.Now().UTC()

		rows, err := NewReportStore(tx, nil).CourseCompletion(ctx, from, to, &course.ID)
		require.NoError(t, err)

		// Only a lesson at exactly 100 percent counts its learner.
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1), rows[0].CompletedLearners)
	})
}

func TestReportStoreLearnerProgressZeroFill(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		learner := seedLearner(t, tx, "learner-progress-zero")
		course := seedCourse(t, tx, "Untouched Course")
		seedLesson(t, tx, course.ID, "One", 1)
		seedLesson(t, tx, course.ID, "Two", 2)

		_, err := NewEnrollmentStore(tx, nil).Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)

		rows, err := NewReportStore(tx, nil).LearnerProgress(ctx, &learner.ID)
		require.NoError(t, err)

		require.Len(t, rows, 1)
		assert.Equal(t, learner.ID, rows[0].UserID)
		assert.Zero(t, rows[0].AvgProgress)
		assert.Equal(t, int64(0), rows[0].CompletedLessons)
		assert.Equal(t, int64(2), rows[0].TotalLessons)
	})
}

func TestReportStoreAggregatesEndToEnd(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		learner := seedLearner(t, tx, "report-end-to-end")
		course := seedCourse(t, tx, "Full Flow")
		intro := seedLesson(t, tx, course.ID, "Intro", 1)
		outro := seedLesson(t, tx, course.ID, "Outro", 2)

		enrollments := NewEnrollmentStore(tx, nil)
		enrollment, err := enrollments.Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)
		require.NoError(t, enrollments.UpdateStatus(ctx, enrollment.ID, domain.EnrollmentEnrolled))

		progress := NewProgressStore(tx, nil)
		_, err = progress.Upsert(ctx, enrollment.ID, intro.ID, 100, true)
		require.NoError(t, err)
		_, err = progress.Upsert(ctx, enrollment.ID, outro.ID, 50, false)
		require.NoError(t, err)

		reports := NewReportStore(tx, nil)
		from := time.Now().UTC().Add(-24 * time.Hour)
		to := time.Now().UTC()

		period, err := reports.CoursePeriod(ctx, from, to, &course.ID)
		require.NoError(t, err)
		require.Len(t, period, 1)
		assert.Equal(t, int64(1), period[0].LearnerCount)
		assert.InDelta(t, 75.0, period[0].AvgProgress, 0.001)

		completion, err := reports.CourseCompletion(ctx, from, to, &course.ID)
		require.NoError(t, err)
		require.Len(t, completion, 1)
		assert.Equal(t, int64(1), completion[0].CompletedLearners)

		detail, err := reports.LearnerProgress(ctx, &learner.ID)
		require.NoError(t, err)
		require.Len(t, detail, 1)
		assert.InDelta(t, 75.0, detail[0].AvgProgress, 0.001)
		assert.Equal(t, int64(1), detail[0].CompletedLessons)
		assert.Equal(t, int64(2), detail[0].TotalLessons)
	})
}
