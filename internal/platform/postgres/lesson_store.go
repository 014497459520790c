package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// LessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type LessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLessonStore creates a new PostgreSQL implementation of the LessonStore
// interface. If logger is nil, a default logger will be used.
func NewLessonStore(db store.DBTX, logger *slog.Logger) *LessonStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
	}
}

// Ensure LessonStore implements store.LessonStore interface
var _ store.LessonStore = (*LessonStore)(nil)

const lessonColumns = "id, course_id, title, content, order_no, video_url, start_sec, end_sec"

// Create implements store.LessonStore.Create.
// Returns store.ErrCourseNotFound if the owning course does not exist.
func (s *LessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO lessons (course_id, title, content, order_no, video_url, start_sec, end_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		lesson.CourseID,
		lesson.Title,
		lesson.Content,
		lesson.OrderNo,
		lesson.VideoURL,
		lesson.StartSec,
		lesson.EndSec,
	).Scan(&lesson.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("course not found for lesson create",
				slog.Int64("course_id", lesson.CourseID))
			return store.ErrCourseNotFound
		}
		log.Error("failed to create lesson",
			slog.String("error", err.Error()),
			slog.Int64("course_id", lesson.CourseID))
		return MapError(err)
	}

	log.Info("lesson created",
		slog.Int64("lesson_id", lesson.ID),
		slog.Int64("course_id", lesson.CourseID))
	return nil
}

// GetByID implements store.LessonStore.GetByID.
func (s *LessonStore) GetByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lesson, err := scanLesson(s.db.QueryRowContext(
		ctx,
		"SELECT "+lessonColumns+" FROM lessons WHERE id = $1",
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.Int64("lesson_id", id))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson by ID",
			slog.String("error", err.Error()),
			slog.Int64("lesson_id", id))
		return nil, err
	}

	return lesson, nil
}

// List implements store.LessonStore.List.
func (s *LessonStore) List(ctx context.Context) ([]*domain.Lesson, error) {
	return s.queryLessons(ctx, "SELECT "+lessonColumns+" FROM lessons ORDER BY id")
}

// ListByCourse implements store.LessonStore.ListByCourse.
func (s *LessonStore) ListByCourse(ctx context.Context, courseID int64) ([]*domain.Lesson, error) {
	return s.queryLessons(
		ctx,
		"SELECT "+lessonColumns+" FROM lessons WHERE course_id = $1 ORDER BY order_no",
		courseID,
	)
}

// Update implements store.LessonStore.Update.
func (s *LessonStore) Update(ctx context.Context, id int64, title, content string, orderNo int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"UPDATE lessons SET title = $1, content = $2, order_no = $3 WHERE id = $4",
		title,
		content,
		orderNo,
		id,
	)
	if err != nil {
		log.Error("failed to update lesson",
			slog.String("error", err.Error()),
			slog.Int64("lesson_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrLessonNotFound)
}

// Delete implements store.LessonStore.Delete.
func (s *LessonStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete lesson",
			slog.String("error", err.Error()),
			slog.Int64("lesson_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrLessonNotFound)
}

func (s *LessonStore) queryLessons(ctx context.Context, query string, args ...any) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query lessons", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	lessons := []*domain.Lesson{}
	for rows.Next() {
		lesson, err := scanLessonRow(rows)
		if err != nil {
			log.Error("failed to scan lesson row", slog.String("error", err.Error()))
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning lesson rows", slog.String("error", err.Error()))
		return nil, err
	}

	return lessons, nil
}

func scanLesson(row *sql.Row) (*domain.Lesson, error) {
	var lesson domain.Lesson
	var content, videoURL sql.NullString
	var startSec, endSec sql.NullInt64

	if err := row.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&content,
		&lesson.OrderNo,
		&videoURL,
		&startSec,
		&endSec,
	); err != nil {
		return nil, err
	}

	lesson.Content = content.String
	lesson.VideoURL = videoURL.String
	lesson.StartSec = int(startSec.Int64)
	lesson.EndSec = int(endSec.Int64)
	return &lesson, nil
}

func scanLessonRow(rows *sql.Rows) (*domain.Lesson, error) {
	var lesson domain.Lesson
	var content, videoURL sql.NullString
	var startSec, endSec sql.NullInt64

	if err := rows.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&content,
		&lesson.OrderNo,
		&videoURL,
		&startSec,
		&endSec,
	); err != nil {
		return nil, err
	}

	lesson.Content = content.String
	lesson.VideoURL = videoURL.String
	lesson.StartSec = int(startSec.Int64)
	lesson.EndSec = int(endSec.Int64)
	return &lesson, nil
}
