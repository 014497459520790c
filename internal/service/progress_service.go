package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// ProgressService provides operations on the per-lesson progress ledger.
// Every operation that touches a specific enrollment verifies ownership
// through the enrollment service first.
type ProgressService interface {
	// Report records the acting learner's progress on a lesson within one of
	// their enrollments and returns the resulting record. Reports are
	// last-write-wins per (enrollment, lesson): a later lower percentage
	// overwrites an earlier higher one, and the completion timestamp follows
	// the latest report.
	//
	// Returns ErrLearnerOnly for non-learner actors, a validation error for a
	// percentage outside [0, 100] or non-positive IDs, and
	// ErrEnrollmentNotOwned when the enrollment is missing or foreign.
	Report(ctx context.Context, actor domain.Actor, enrollmentID, lessonID int64, percent float64) (*domain.Progress, error)

	// ListByEnrollment returns all progress records for the enrollment,
	// ordered by record ID. Owner-only; admins go through the report engine
	// instead.
	ListByEnrollment(ctx context.Context, actor domain.Actor, enrollmentID int64) ([]*domain.Progress, error)

	// ListWatched returns the lessons a learner has ever reported positive
	// progress on, one row per lesson with the maximum observed percentage,
	// ordered by course title then lesson order. Learners see only themselves;
	// administrators may pass a userID to inspect any learner.
	ListWatched(ctx context.Context, actor domain.Actor, userID *int64) ([]*domain.WatchedLesson, error)
}

// Verify interface compliance at compile time
var _ ProgressService = (*progressServiceImpl)(nil)

// progressServiceImpl implements the ProgressService interface.
type progressServiceImpl struct {
	progress    store.ProgressStore
	enrollments EnrollmentService
	logger      *slog.Logger
}

// NewProgressService creates a new ProgressService implementation.
func NewProgressService(
	progress store.ProgressStore,
	enrollments EnrollmentService,
	logger *slog.Logger,
) ProgressService {
	if progress == nil {
		panic("progress cannot be nil")
	}
	if enrollments == nil {
		panic("enrollments cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &progressServiceImpl{
		progress:    progress,
		enrollments: enrollments,
		logger:      logger.With(slog.String("component", "progress_service")),
	}
}

// Report implements ProgressService.Report.
func (s *progressServiceImpl) Report(
	ctx context.Context,
	actor domain.Actor,
	enrollmentID, lessonID int64,
	percent float64,
) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsLearner() {
		log.Warn("non-learner attempted progress report",
			slog.Int64("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return nil, ErrLearnerOnly
	}

	candidate := domain.Progress{
		EnrollmentID:    enrollmentID,
		LessonID:        lessonID,
		ProgressPercent: percent,
	}
	if err := candidate.Validate(); err != nil {
		log.Warn("invalid progress report",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.UserID))
		return nil, err
	}

	if err := s.enrollments.RequireOwnedByLearner(ctx, enrollmentID, actor.UserID); err != nil {
		return nil, err
	}

	record, err := s.progress.Upsert(ctx, enrollmentID, lessonID, percent, candidate.Completed())
	if err != nil {
		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID),
			slog.Int64("lesson_id", lessonID))
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	log.Info("progress recorded",
		slog.Int64("enrollment_id", enrollmentID),
		slog.Int64("lesson_id", lessonID),
		slog.Float64("percent", percent),
		slog.Bool("completed", record.CompletedAt != nil))
	return record, nil
}

// ListByEnrollment implements ProgressService.ListByEnrollment.
func (s *progressServiceImpl) ListByEnrollment(
	ctx context.Context,
	actor domain.Actor,
	enrollmentID int64,
) ([]*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsLearner() {
		return nil, ErrLearnerOnly
	}

	if err := s.enrollments.RequireOwnedByLearner(ctx, enrollmentID, actor.UserID); err != nil {
		return nil, err
	}

	records, err := s.progress.ListByEnrollment(ctx, enrollmentID)
	if err != nil {
		log.Error("failed to list progress",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID))
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	return records, nil
}

// ListWatched implements ProgressService.ListWatched.
func (s *progressServiceImpl) ListWatched(
	ctx context.Context,
	actor domain.Actor,
	userID *int64,
) ([]*domain.WatchedLesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	target := actor.UserID
	if userID != nil && *userID != actor.UserID {
		if !actor.IsAdmin() {
			log.Warn("learner attempted to read another learner's watched lessons",
				slog.Int64("user_id", actor.UserID),
				slog.Int64("target_user_id", *userID))
			return nil, ErrAdminOnly
		}
		target = *userID
	}

	watched, err := s.progress.ListWatchedByUser(ctx, target)
	if err != nil {
		log.Error("failed to list watched lessons",
			slog.String("error", err.Error()),
			slog.Int64("target_user_id", target))
		return nil, fmt.Errorf("failed to list watched lessons: %w", err)
	}

	return watched, nil
}
