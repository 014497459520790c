package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/service"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	reports store.ReportStore
	logger  *slog.Logger
}

// NewService creates a new report Service implementation.
func NewService(reports store.ReportStore, logger *slog.Logger) Service {
	if reports == nil {
		panic("reports cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		reports: reports,
		logger:  logger.With(slog.String("component", "reporting_service")),
	}
}

// CoursePeriod implements Service.CoursePeriod.
func (s *serviceImpl) CoursePeriod(
	ctx context.Context,
	actor domain.Actor,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CoursePeriodRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsAdmin() {
		return nil, service.ErrAdminOnly
	}

	rows, err := s.reports.CoursePeriod(ctx, from, to, courseID)
	if err != nil {
		log.Error("failed to build course period report",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build course period report: %w", err)
	}

	log.Debug("course period report built",
		slog.Int("rows", len(rows)),
		slog.Time("from", from),
		slog.Time("to", to))
	return rows, nil
}

// CourseCompletion implements Service.CourseCompletion.
func (s *serviceImpl) CourseCompletion(
	ctx context.Context,
	actor domain.Actor,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CourseCompletionRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsAdmin() {
		return nil, service.ErrAdminOnly
	}

	rows, err := s.reports.CourseCompletion(ctx, from, to, courseID)
	if err != nil {
		log.Error("failed to build course completion report",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build course completion report: %w", err)
	}

	log.Debug("course completion report built",
		slog.Int("rows", len(rows)),
		slog.Time("from", from),
		slog.Time("to", to))
	return rows, nil
}

// LearnerProgress implements Service.LearnerProgress. Learners are always
// scoped to themselves; a userID filter from a learner is ignored rather than
// rejected.
func (s *serviceImpl) LearnerProgress(
	ctx context.Context,
	actor domain.Actor,
	userID *int64,
) ([]*domain.LearnerProgressRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := userID
	if !actor.IsAdmin() {
		own := actor.UserID
		filter = &own
	}

	rows, err := s.reports.LearnerProgress(ctx, filter)
	if err != nil {
		log.Error("failed to build learner progress report",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build learner progress report: %w", err)
	}

	return rows, nil
}
