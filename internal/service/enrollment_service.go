package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// EnrollmentService provides operations on the enrollment ledger: a learner
// asking to join a course and an administrator deciding on that request.
type EnrollmentService interface {
	// Enroll records the acting learner's enrollment in the course and returns
	// the resulting row. The operation is idempotent per (learner, course):
	// repeating it returns the existing enrollment unchanged, whatever its
	// status. New enrollments start PENDING.
	//
	// Returns ErrLearnerOnly for non-learner actors and store.ErrCourseNotFound
	// if the course does not exist.
	Enroll(ctx context.Context, actor domain.Actor, courseID int64) (*domain.Enrollment, error)

	// SetStatus transitions an enrollment to the given status. Transitions are
	// permissive: any status may be set regardless of the current one.
	//
	// Returns ErrAdminOnly for non-admin actors and store.ErrEnrollmentNotFound
	// if the enrollment does not exist.
	SetStatus(ctx context.Context, actor domain.Actor, enrollmentID int64, status domain.EnrollmentStatus) error

	// ListPending returns the administrator approval queue: pending enrollments
	// with learner and course display fields, newest first.
	//
	// Returns ErrAdminOnly for non-admin actors.
	ListPending(ctx context.Context, actor domain.Actor) ([]*domain.PendingEnrollment, error)

	// RequireOwnedByLearner verifies that the enrollment exists and belongs to
	// the given learner. Returns ErrEnrollmentNotOwned otherwise; a missing
	// enrollment is not distinguished from a foreign one.
	RequireOwnedByLearner(ctx context.Context, enrollmentID, learnerID int64) error
}

// Verify interface compliance at compile time
var _ EnrollmentService = (*enrollmentServiceImpl)(nil)

// enrollmentServiceImpl implements the EnrollmentService interface.
type enrollmentServiceImpl struct {
	enrollments store.EnrollmentStore
	courses     store.CourseStore
	logger      *slog.Logger
}

// NewEnrollmentService creates a new EnrollmentService implementation.
func NewEnrollmentService(
	enrollments store.EnrollmentStore,
	courses store.CourseStore,
	logger *slog.Logger,
) EnrollmentService {
	if enrollments == nil {
		panic("enrollments cannot be nil")
	}
	if courses == nil {
		panic("courses cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &enrollmentServiceImpl{
		enrollments: enrollments,
		courses:     courses,
		logger:      logger.With(slog.String("component", "enrollment_service")),
	}
}

// Enroll implements EnrollmentService.Enroll.
func (s *enrollmentServiceImpl) Enroll(
	ctx context.Context,
	actor domain.Actor,
	courseID int64,
) (*domain.Enrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsLearner() {
		log.Warn("non-learner attempted to enroll",
			slog.Int64("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return nil, ErrLearnerOnly
	}

	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", domain.ErrInvalidID)
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		log.Error("failed to check course existence",
			slog.String("error", err.Error()),
			slog.Int64("course_id", courseID))
		return nil, fmt.Errorf("failed to check course existence: %w", err)
	}
	if !exists {
		log.Debug("enroll requested for missing course",
			slog.Int64("user_id", actor.UserID),
			slog.Int64("course_id", courseID))
		return nil, store.ErrCourseNotFound
	}

	enrollment, err := s.enrollments.Enroll(ctx, actor.UserID, courseID)
	if err != nil {
		log.Error("failed to enroll learner",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.UserID),
			slog.Int64("course_id", courseID))
		return nil, fmt.Errorf("failed to enroll learner: %w", err)
	}

	log.Info("enrollment recorded",
		slog.Int64("enrollment_id", enrollment.ID),
		slog.Int64("user_id", actor.UserID),
		slog.Int64("course_id", courseID),
		slog.String("status", string(enrollment.Status)))
	return enrollment, nil
}

// SetStatus implements EnrollmentService.SetStatus.
func (s *enrollmentServiceImpl) SetStatus(
	ctx context.Context,
	actor domain.Actor,
	enrollmentID int64,
	status domain.EnrollmentStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsAdmin() {
		log.Warn("non-admin attempted enrollment status change",
			slog.Int64("user_id", actor.UserID),
			slog.Int64("enrollment_id", enrollmentID))
		return ErrAdminOnly
	}

	if enrollmentID <= 0 {
		return fmt.Errorf("%w: enrollment ID must be positive", domain.ErrInvalidID)
	}

	if _, err := domain.ParseEnrollmentStatus(string(status)); err != nil {
		return err
	}

	if err := s.enrollments.UpdateStatus(ctx, enrollmentID, status); err != nil {
		if errors.Is(err, store.ErrEnrollmentNotFound) {
			return store.ErrEnrollmentNotFound
		}
		log.Error("failed to update enrollment status",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID),
			slog.String("status", string(status)))
		return fmt.Errorf("failed to update enrollment status: %w", err)
	}

	log.Info("enrollment status updated",
		slog.Int64("enrollment_id", enrollmentID),
		slog.String("status", string(status)),
		slog.Int64("admin_id", actor.UserID))
	return nil
}

// ListPending implements EnrollmentService.ListPending.
func (s *enrollmentServiceImpl) ListPending(
	ctx context.Context,
	actor domain.Actor,
) ([]*domain.PendingEnrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	pending, err := s.enrollments.ListPending(ctx)
	if err != nil {
		log.Error("failed to list pending enrollments",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list pending enrollments: %w", err)
	}

	return pending, nil
}

// RequireOwnedByLearner implements EnrollmentService.RequireOwnedByLearner.
func (s *enrollmentServiceImpl) RequireOwnedByLearner(
	ctx context.Context,
	enrollmentID, learnerID int64,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if enrollmentID <= 0 {
		return fmt.Errorf("%w: enrollment ID must be positive", domain.ErrInvalidID)
	}

	owned, err := s.enrollments.OwnedByUser(ctx, enrollmentID, learnerID)
	if err != nil {
		log.Error("failed to check enrollment ownership",
			slog.String("error", err.Error()),
			slog.Int64("enrollment_id", enrollmentID),
			slog.Int64("user_id", learnerID))
		return fmt.Errorf("failed to check enrollment ownership: %w", err)
	}
	if !owned {
		log.Warn("enrollment ownership check failed",
			slog.Int64("enrollment_id", enrollmentID),
			slog.Int64("user_id", learnerID))
		return ErrEnrollmentNotOwned
	}

	return nil
}
