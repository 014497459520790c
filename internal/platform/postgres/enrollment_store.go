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

// EnrollmentStore implements the store.EnrollmentStore interface
// using a PostgreSQL database as the storage backend.
type EnrollmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewEnrollmentStore creates a new PostgreSQL implementation of the
// EnrollmentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewEnrollmentStore(db store.DBTX, logger *slog.Logger) *EnrollmentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &EnrollmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "enrollment_store")),
	}
}

// Ensure EnrollmentStore implements store.EnrollmentStore interface
var _ store.EnrollmentStore = (*EnrollmentStore)(nil)

// Enroll implements store.EnrollmentStore.Enroll.
// The insert races with concurrent enrolls for the same (user, course) pair;
// ON CONFLICT DO NOTHING plus the unique index makes the race harmless, and
// the follow-up select returns whichever row won.
func (s *EnrollmentStore) Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO enrollments (user_id, course_id, status, enrolled_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(
		ctx,
		query,
		userID,
		courseID,
		domain.EnrollmentPending,
		time.Now().UTC(),
	); err != nil {
		log.Error("failed to insert enrollment",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("course_id", courseID))
		return nil, MapError(err)
	}

	enrollment, err := s.getByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		log.Error("failed to fetch enrollment after insert",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("course_id", courseID))
		return nil, err
	}

	log.Info("enrollment recorded",
		slog.Int64("enrollment_id", enrollment.ID),
		slog.Int64("user_id", userID),
		slog.Int64("course_id", courseID),
		slog.String("status", string(enrollment.Status)))
	return enrollment, nil
}

// GetByID implements store.EnrollmentStore.GetByID.
// Returns store.ErrEnrollmentNotFound if the enrollment does not exist.
func (s *EnrollmentStore) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, course_id, status, enrolled_at
		FROM enrollments
		WHERE id = $1
	`

	enrollment, err := scanEnrollment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("enrollment not found", slog.Int64("enrollment_id", id))
			return nil, store.ErrEnrollmentNotFound
		}
		log.Error("failed to get enrollment by ID",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", id))
		return nil, err
	}

	return enrollment, nil
}

// OwnedByUser implements store.EnrollmentStore.OwnedByUser.
func (s *EnrollmentStore) OwnedByUser(ctx context.Context, enrollmentID, userID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM enrollments
		WHERE id = $1 AND user_id = $2
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, enrollmentID, userID).Scan(&count); err != nil {
		log.Error("failed to check enrollment ownership",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID),
			slog.Int64("user_id", userID))
		return false, err
	}

	return count > 0, nil
}

// UpdateStatus implements store.EnrollmentStore.UpdateStatus.
// Returns store.ErrEnrollmentNotFound if no row was affected.
func (s *EnrollmentStore) UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE enrollments
		SET status = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error("failed to update enrollment status",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", id),
			slog.String("status", string(status)))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrEnrollmentNotFound); err != nil {
		log.Debug("enrollment not found for status update",
			slog.Int64("enrollment_id", id))
		return err
	}

	log.Info("enrollment status updated",
		slog.Int64("enrollment_id", id),
		slog.String("status", string(status)))
	return nil
}

// ListPending implements store.EnrollmentStore.ListPending.
func (s *EnrollmentStore) ListPending(ctx context.Context) ([]*domain.PendingEnrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			e.id,
			e.user_id,
			u.email AS user_email,
			u.name AS user_name,
			e.course_id,
			c.title AS course_title,
			e.status,
			e.enrolled_at
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		JOIN courses c ON c.id = e.course_id
		WHERE e.status = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, domain.EnrollmentPending)
	if err != nil {
		log.Error("failed to query pending enrollments",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	pending := []*domain.PendingEnrollment{}
	for rows.Next() {
		var row domain.PendingEnrollment
		var status string

		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.UserEmail,
			&row.UserName,
			&row.CourseID,
			&row.CourseTitle,
			&status,
			&row.EnrolledAt,
		); err != nil {
			log.Error("failed to scan pending enrollment row",
				slog.String("error", err.Error()))
			return nil, err
		}

		row.Status = domain.EnrollmentStatus(status)
		pending = append(pending, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning pending enrollment rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return pending, nil
}

// getByUserAndCourse fetches the single enrollment for the (user, course)
// pair; the unique index guarantees at most one row.
func (s *EnrollmentStore) getByUserAndCourse(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, status, enrolled_at
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`

	enrollment, err := scanEnrollment(s.db.QueryRowContext(ctx, query, userID, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEnrollmentNotFound
		}
		return nil, err
	}

	return enrollment, nil
}

// scanEnrollment constructs a typed enrollment record from a single-row result.
func scanEnrollment(row *sql.Row) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	var status string

	if err := row.Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&status,
		&enrollment.EnrolledAt,
	); err != nil {
		return nil, err
	}

	enrollment.Status = domain.EnrollmentStatus(status)
	return &enrollment, nil
}

// closeRows closes rows and logs a failure instead of returning it.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
