package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// ProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type ProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewProgressStore(db store.DBTX, logger *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure ProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*ProgressStore)(nil)

// Upsert implements store.ProgressStore.Upsert.
// A single INSERT ... ON CONFLICT DO UPDATE keyed on the
// (enrollment_id, lesson_id) unique index keeps concurrent reports for the
// same pair from ever producing a duplicate row. The completion timestamp
// follows the latest report: now() when completed, NULL otherwise.
func (s *ProgressStore) Upsert(
	ctx context.Context,
	enrollmentID, lessonID int64,
	percent float64,
	completed bool,
) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	query := `
		INSERT INTO progress (enrollment_id, lesson_id, progress_percent, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (enrollment_id, lesson_id)
		DO UPDATE SET progress_percent = EXCLUDED.progress_percent,
		              completed_at = EXCLUDED.completed_at
		RETURNING id, enrollment_id, lesson_id, progress_percent, completed_at
	`

	var record domain.Progress
	var storedCompletedAt sql.NullTime

	err := s.db.QueryRowContext(
		ctx,
		query,
		enrollmentID,
		lessonID,
		percent,
		completedAt,
	).Scan(
		&record.ID,
		&record.EnrollmentID,
		&record.LessonID,
		&record.ProgressPercent,
		&storedCompletedAt,
	)
	if err != nil {
		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID),
			slog.Int64("lesson_id", lessonID))
		return nil, MapError(err)
	}

	if storedCompletedAt.Valid {
		t := storedCompletedAt.Time
		record.CompletedAt = &t
	}

	log.Info("progress recorded",
		slog.Int64("progress_id", record.ID),
		slog.Int64("enrollment_id", enrollmentID),
		slog.Int64("lesson_id", lessonID),
		slog.Float64("percent", percent),
		slog.Bool("completed", completed))
	return &record, nil
}

// ListByEnrollment implements store.ProgressStore.ListByEnrollment.
func (s *ProgressStore) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, enrollment_id, lesson_id, progress_percent, completed_at
		FROM progress
		WHERE enrollment_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, enrollmentID)
	if err != nil {
		log.Error("failed to query progress by enrollment",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID))
		return nil, err
	}
	defer closeRows(rows, log)

	records := []*domain.Progress{}
	for rows.Next() {
		var record domain.Progress
		var completedAt sql.NullTime

		if err := rows.Scan(
			&record.ID,
			&record.EnrollmentID,
			&record.LessonID,
			&record.ProgressPercent,
			&completedAt,
		); err != nil {
			log.Error("failed to scan progress row",
				slog.String("error", err.Error()))
			return nil, err
		}

		if completedAt.Valid {
			t := completedAt.Time
			record.CompletedAt = &t
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning progress rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// ListWatchedByUser implements store.ProgressStore.ListWatchedByUser.
// One row per lesson with positive progress across all of the user's
// enrollments, using the maximum observed percentage, ordered by course
// title then lesson order.
func (s *ProgressStore) ListWatchedByUser(ctx context.Context, userID int64) ([]*domain.WatchedLesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			l.id AS lesson_id,
			l.course_id,
			c.title AS course_title,
			l.title AS lesson_title,
			l.content AS lesson_content,
			MAX(p.progress_percent) AS progress_percent
		FROM progress p
		JOIN enrollments e ON e.id = p.enrollment_id
		JOIN lessons l ON l.id = p.lesson_id
		JOIN courses c ON c.id = l.course_id
		WHERE e.user_id = $1 AND p.progress_percent > 0
		GROUP BY l.id, l.course_id, c.title, l.title, l.content, l.order_no
		ORDER BY c.title, l.order_no
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query watched lessons",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}
	defer closeRows(rows, log)

	watched := []*domain.WatchedLesson{}
	for rows.Next() {
		var row domain.WatchedLesson
		var content sql.NullString

		if err := rows.Scan(
			&row.LessonID,
			&row.CourseID,
			&row.CourseTitle,
			&row.LessonTitle,
			&content,
			&row.ProgressPercent,
		); err != nil {
			log.Error("failed to scan watched lesson row",
				slog.String("error", err.Error()))
			return nil, err
		}

		row.LessonContent = content.String
		watched = append(watched, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning watched lesson rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return watched, nil
}
