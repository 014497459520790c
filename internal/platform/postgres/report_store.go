package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// ReportStore implements the store.ReportStore interface using a PostgreSQL
// database. All three aggregates are computed on demand from the enrollment
// and progress ledgers joined with the catalog; nothing is cached.
type ReportStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReportStore creates a new PostgreSQL implementation of the ReportStore
// interface. If logger is nil, a default logger will be used.
func NewReportStore(db store.DBTX, logger *slog.Logger) *ReportStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReportStore{
		db:     db,
		logger: logger.With(slog.String("component", "report_store")),
	}
}

// Ensure ReportStore implements store.ReportStore interface
var _ store.ReportStore = (*ReportStore)(nil)

// CoursePeriod implements store.ReportStore.CoursePeriod.
// The upper bound is inclusive of the whole calendar day:
// enrolled_at < to + 1 day.
func (s *ReportStore) CoursePeriod(
	ctx context.Context,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CoursePeriodRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			c.id AS course_id,
			c.title AS course_title,
			COUNT(DISTINCT e.user_id) AS learner_count,
			COALESCE(AVG(p.progress_percent), 0) AS avg_progress
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		LEFT JOIN progress p ON p.enrollment_id = e.id
		WHERE e.enrolled_at >= $1 AND e.enrolled_at < $2 + INTERVAL '1 day'
	`
	args := []any{from, to}

	if courseID != nil {
		query += " AND c.id = $3"
		args = append(args, *courseID)
	}

	query += " GROUP BY c.id, c.title ORDER BY c.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query course period report",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	report := []*domain.CoursePeriodRow{}
	for rows.Next() {
		var row domain.CoursePeriodRow
		if err := rows.Scan(
			&row.CourseID,
			&row.CourseTitle,
			&row.LearnerCount,
			&row.AvgProgress,
		); err != nil {
			log.Error("failed to scan course period row",
				slog.String("error", err.Error()))
			return nil, err
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning course period rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return report, nil
}

// CourseCompletion implements store.ReportStore.CourseCompletion.
func (s *ReportStore) CourseCompletion(
	ctx context.Context,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CourseCompletionRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			c.id AS course_id,
			c.title AS course_title,
			COUNT(DISTINCT CASE WHEN p.progress_percent = 100 THEN e.user_id END) AS completed_learners
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		LEFT JOIN progress p ON p.enrollment_id = e.id
		WHERE e.enrolled_at >= $1 AND e.enrolled_at < $2 + INTERVAL '1 day'
	`
	args := []any{from, to}

	if courseID != nil {
		query += " AND c.id = $3"
		args = append(args, *courseID)
	}

	query += " GROUP BY c.id, c.title ORDER BY c.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query course completion report",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	report := []*domain.CourseCompletionRow{}
	for rows.Next() {
		var row domain.CourseCompletionRow
		if err := rows.Scan(
			&row.CourseID,
			&row.CourseTitle,
			&row.CompletedLearners,
		); err != nil {
			log.Error("failed to scan course completion row",
				slog.String("error", err.Error()))
			return nil, err
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning course completion rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return report, nil
}

// LearnerProgress implements store.ReportStore.LearnerProgress.
// The outer join from lessons keeps total lesson counts correct for courses
// with zero progress rows.
func (s *ReportStore) LearnerProgress(ctx context.Context, userID *int64) ([]*domain.LearnerProgressRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			u.id AS user_id,
			u.name AS user_name,
			c.id AS course_id,
			c.title AS course_title,
			COALESCE(AVG(p.progress_percent), 0) AS avg_progress,
			COALESCE(SUM(CASE WHEN p.progress_percent = 100 THEN 1 ELSE 0 END), 0) AS completed_lessons,
			COUNT(l.id) AS total_lessons
		FROM users u
		JOIN enrollments e ON e.user_id = u.id
		JOIN courses c ON c.id = e.course_id
		JOIN lessons l ON l.course_id = c.id
		LEFT JOIN progress p ON p.enrollment_id = e.id AND p.lesson_id = l.id
		WHERE u.role = $1
	`
	args := []any{domain.RoleLearner}

	if userID != nil {
		query += " AND u.id = $2"
		args = append(args, *userID)
	}

	query += " GROUP BY u.id, u.name, c.id, c.title ORDER BY u.id, c.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query learner progress report",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	report := []*domain.LearnerProgressRow{}
	for rows.Next() {
		var row domain.LearnerProgressRow
		if err := rows.Scan(
			&row.UserID,
			&row.UserName,
			&row.CourseID,
			&row.CourseTitle,
			&row.AvgProgress,
			&row.CompletedLessons,
			&row.TotalLessons,
		); err != nil {
			log.Error("failed to scan learner progress row",
				slog.String("error", err.Error()))
			return nil, err
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning learner progress rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return report, nil
}
