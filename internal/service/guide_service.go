package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// GuideService provides read access to learner study guides.
type GuideService interface {
	// List returns guides visible to the actor. Administrators see every
	// learner's guides, or one learner's when userID is non-nil; learners
	// always see only their own regardless of userID.
	List(ctx context.Context, actor domain.Actor, userID *int64) ([]*domain.Guide, error)
}

// guideServiceImpl implements the GuideService interface.
type guideServiceImpl struct {
	guides store.GuideStore
	logger *slog.Logger
}

// Verify interface compliance at compile time
var _ GuideService = (*guideServiceImpl)(nil)

// NewGuideService creates a new GuideService implementation.
func NewGuideService(guides store.GuideStore, logger *slog.Logger) GuideService {
	if guides == nil {
		panic("guides cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &guideServiceImpl{
		guides: guides,
		logger: logger.With(slog.String("component", "guide_service")),
	}
}

// List implements GuideService.List. Learners are always scoped to
// themselves; a userID filter from a learner is ignored rather than rejected.
func (s *guideServiceImpl) List(
	ctx context.Context,
	actor domain.Actor,
	userID *int64,
) ([]*domain.Guide, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := userID
	if !actor.IsAdmin() {
		own := actor.UserID
		filter = &own
	}

	guides, err := s.guides.List(ctx, filter)
	if err != nil {
		log.Error("failed to list guides",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}

	return guides, nil
}
