package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
	"github.com/coursetrack/coursetrack-api/internal/testdb"
)

func TestEnrollmentStoreEnroll(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		enrollments := NewEnrollmentStore(tx, nil)

		learner := seedLearner(t, tx, "enroll-idempotent")
		course := seedCourse(t, tx, "Go Basics")

		first, err := enrollments.Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentPending, first.Status)

		// A repeated enroll after a decision must return the decided row,
		// not reset it or create a duplicate.
		require.NoError(t, enrollments.UpdateStatus(ctx, first.ID, domain.EnrollmentEnrolled))

		second, err := enrollments.Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, domain.EnrollmentEnrolled, second.Status)

		count := countRows(t, tx,
			"SELECT COUNT(*) FROM enrollments WHERE user_id = $1 AND course_id = $2",
			learner.ID, course.ID)
		assert.Equal(t, 1, count)
	})
}

func TestEnrollmentStoreEnrollConcurrent(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)
	ctx := context.Background()

	learner := seedLearner(t, db, "enroll-concurrent")
	course := seedCourse(t, db, "Concurrent Enrollment")
	t.Cleanup(func() {
		// FK cascades remove the enrollments with their owners.
		_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", learner.ID)
		_, _ = db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", course.ID)
	})

	enrollments := NewEnrollmentStore(db, nil)

	const workers = 8
	results := make([]*domain.Enrollment, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = enrollments.Enroll(ctx, learner.ID, course.ID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
		require.NotNil(t, results[i], "worker %d", i)
		assert.Equal(t, results[0].ID, results[i].ID, "worker %d saw a different row", i)
	}

	count := countRows(t, db,
		"SELECT COUNT(*) FROM enrollments WHERE user_id = $1 AND course_id = $2",
		learner.ID, course.ID)
	assert.Equal(t, 1, count, "unique index must collapse concurrent enrolls to one row")
}

func TestEnrollmentStoreGetByIDNotFound(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := NewEnrollmentStore(tx, nil).GetByID(context.Background(), 999999999)
		assert.ErrorIs(t, err, store.ErrEnrollmentNotFound)
	})
}
