package store

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// GuideStore defines read access to learner study guides. The guides table
// has no write path in this service; rows are produced out of band.
type GuideStore interface {
	// List returns guides for learner accounts joined with learner and
	// course data, newest first. A non-nil userID restricts the listing to
	// one learner.
	List(ctx context.Context, userID *int64) ([]*domain.Guide, error)
}
