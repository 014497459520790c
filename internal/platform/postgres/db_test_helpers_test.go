package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
	"github.com/coursetrack/coursetrack-api/internal/testdb"
)

// dbForTest connects to the configured test database and ensures the schema
// is migrated. The test is skipped when no database is configured.
func dbForTest(t *testing.T) *sql.DB {
	t.Helper()

	db := testdb.Connect(t)
	testdb.MigrateSchema(t, db)
	return db
}

// seedLearner inserts a learner account with a unique email derived from the
// slug, so concurrent tests against a shared database never collide.
func seedLearner(t *testing.T, db store.DBTX, slug string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:          fmt.Sprintf("%s-%d@example.com", slug, time.Now().UnixNano()),
		HashedPassword: "not-a-real-hash",
		Role:           domain.RoleLearner,
		Name:           slug,
	}
	require.NoError(t, NewUserStore(db, nil).Create(context.Background(), user))
	return user
}

// seedCourse inserts a catalog course.
func seedCourse(t *testing.T, db store.DBTX, title string) *domain.Course {
	t.Helper()

	course := &domain.Course{Title: title}
	require.NoError(t, NewCourseStore(db, nil).Create(context.Background(), course))
	return course
}

// seedLesson inserts a lesson into the course.
func seedLesson(t *testing.T, db store.DBTX, courseID int64, title string, orderNo int) *domain.Lesson {
	t.Helper()

	lesson := &domain.Lesson{CourseID: courseID, Title: title, OrderNo: orderNo}
	require.NoError(t, NewLessonStore(db, nil).Create(context.Background(), lesson))
	return lesson
}

// setEnrolledAt rewrites an enrollment's timestamp so period-bounded report
// queries can be exercised deterministically.
func setEnrolledAt(t *testing.T, db store.DBTX, enrollmentID int64, at time.Time) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		"UPDATE enrollments SET enrolled_at = $1 WHERE id = $2", at, enrollmentID)
	require.NoError(t, err)
}

// countRows returns the result of a single-value COUNT query.
func countRows(t *testing.T, db store.DBTX, query string, args ...any) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&count))
	return count
}
