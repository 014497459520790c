package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// CourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type CourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCourseStore creates a new PostgreSQL implementation of the CourseStore
// interface. If logger is nil, a default logger will be used.
func NewCourseStore(db store.DBTX, logger *slog.Logger) *CourseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Ensure CourseStore implements store.CourseStore interface
var _ store.CourseStore = (*CourseStore)(nil)

// Create implements store.CourseStore.Create.
func (s *CourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO courses (title, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := s.db.QueryRowContext(
		ctx,
		query,
		course.Title,
		course.Description,
		course.CreatedAt,
	).Scan(&course.ID); err != nil {
		log.Error("failed to create course",
			slog.String("error", err.Error()),
			slog.String("title", course.Title))
		return MapError(err)
	}

	log.Info("course created", slog.Int64("course_id", course.ID))
	return nil
}

// GetByID implements store.CourseStore.GetByID.
func (s *CourseStore) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, created_at
		FROM courses
		WHERE id = $1
	`

	var course domain.Course
	var description sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&description,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.Int64("course_id", id))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course by ID",
			slog.String("error", err.Error()),
			slog.Int64("course_id", id))
		return nil, err
	}

	course.Description = description.String
	return &course, nil
}

// List implements store.CourseStore.List.
func (s *CourseStore) List(ctx context.Context) ([]*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, created_at
		FROM courses
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query courses", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	courses := []*domain.Course{}
	for rows.Next() {
		var course domain.Course
		var description sql.NullString

		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&description,
			&course.CreatedAt,
		); err != nil {
			log.Error("failed to scan course row", slog.String("error", err.Error()))
			return nil, err
		}

		course.Description = description.String
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning course rows", slog.String("error", err.Error()))
		return nil, err
	}

	return courses, nil
}

// Exists implements store.CourseStore.Exists.
func (s *CourseStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM courses WHERE id = $1",
		id,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements store.CourseStore.Update.
func (s *CourseStore) Update(ctx context.Context, id int64, title, description string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"UPDATE courses SET title = $1, description = $2 WHERE id = $3",
		title,
		description,
		id,
	)
	if err != nil {
		log.Error("failed to update course",
			slog.String("error", err.Error()),
			slog.Int64("course_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCourseNotFound)
}

// Delete implements store.CourseStore.Delete.
func (s *CourseStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete course",
			slog.String("error", err.Error()),
			slog.Int64("course_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCourseNotFound)
}
