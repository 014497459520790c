package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/testdb"
)

func TestProgressStoreUpsert(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		learner := seedLearner(t, tx, "progress-upsert")
		course := seedCourse(t, tx, "Go Basics")
		lesson := seedLesson(t, tx, course.ID, "Slices", 1)

		enrollment, err := NewEnrollmentStore(tx, nil).Enroll(ctx, learner.ID, course.ID)
		require.NoError(t, err)

		progress := NewProgressStore(tx, nil)

		first, err := progress.Upsert(ctx, enrollment.ID, lesson.ID, 40, false)
		require.NoError(t, err)
		assert.Equal(t, 40.0, first.ProgressPercent)
		assert.Nil(t, first.CompletedAt)

		completed, err := progress.Upsert(ctx, enrollment.ID, lesson.ID, 100, true)
		require.NoError(t, err)
		assert.Equal(t, first.ID, completed.ID, "upsert must update the existing row")
		assert.Equal(t, 100.0, completed.ProgressPercent)
		assert.NotNil(t, completed.CompletedAt)

		// Completion follows the latest report: a lower percentage clears it.
		rewound, err := progress.Upsert(ctx, enrollment.ID, lesson.ID, 50, false)
		require.NoError(t, err)
		assert.Equal(t, first.ID, rewound.ID)
		assert.Equal(t, 50.0, rewound.ProgressPercent)
		assert.Nil(t, rewound.CompletedAt)

		count := countRows(t, tx,
			"SELECT COUNT(*) FROM progress WHERE enrollment_id = $1 AND lesson_id = $2",
			enrollment.ID, lesson.ID)
		assert.Equal(t, 1, count)
	})
}

func TestProgressStoreUpsertConcurrent(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)
	ctx := context.Background()

	learner := seedLearner(t, db, "progress-concurrent")
	course := seedCourse(t, db, "Concurrent Progress")
	lesson := seedLesson(t, db, course.ID, "Goroutines", 1)
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", learner.ID)
		_, _ = db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", course.ID)
	})

	enrollment, err := NewEnrollmentStore(db, nil).Enroll(ctx, learner.ID, course.ID)
	require.NoError(t, err)

	progress := NewProgressStore(db, nil)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			percent := float64((i + 1) * 10)
			_, errs[i] = progress.Upsert(ctx, enrollment.ID, lesson.ID, percent, percent >= 100)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "worker %d", i)
	}

	count := countRows(t, db,
		"SELECT COUNT(*) FROM progress WHERE enrollment_id = $1 AND lesson_id = $2",
		enrollment.ID, lesson.ID)
	assert.Equal(t, 1, count, "unique index must collapse concurrent reports to one row")
}

func TestProgressStoreListWatchedByUser(t *testing.T) {
	if !testdb.Available() {
		t.Skip("DATABASE_URL not set - skipping database test")
	}
	t.Parallel()

	db := dbForTest(t)

	testdb.WithRollback(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()

		learner := seedLearner(t, tx, "watched-lessons")
		algebra := seedCourse(t, tx, "Algebra")
		biology := seedCourse(t, tx, "Biology")
		slopes := seedLesson(t, tx, algebra.ID, "Slopes", 1)
		vectors := seedLesson(t, tx, algebra.ID, "Vectors", 2)
		cells := seedLesson(t, tx, biology.ID, "Cells", 1)

		enrollments := NewEnrollmentStore(tx, nil)
		algebraEnrollment, err := enrollments.Enroll(ctx, learner.ID, algebra.ID)
		require.NoError(t, err)
		biologyEnrollment, err := enrollments.Enroll(ctx, learner.ID, biology.ID)
		require.NoError(t, err)

		progress := NewProgressStore(tx, nil)
		_, err = progress.Upsert(ctx, algebraEnrollment.ID, slopes.ID, 80, false)
		require.NoError(t, err)
		_, err = progress.Upsert(ctx, algebraEnrollment.ID, vectors.ID, 0, false)
		require.NoError(t, err)
		_, err = progress.Upsert(ctx, biologyEnrollment.ID, cells.ID, 60, false)
		require.NoError(t, err)

		watched, err := progress.ListWatchedByUser(ctx, learner.ID)
		require.NoError(t, err)

		// Zero-percent rows are excluded; ordering is course title then
		// lesson order.
		require.Len(t, watched, 2)
		assert.Equal(t, slopes.ID, watched[0].LessonID)
		assert.Equal(t, 80.0, watched[0].ProgressPercent)
		assert.Equal(t, cells.ID, watched[1].LessonID)
		assert.Equal(t, 60.0, watched[1].ProgressPercent)
	})
}
