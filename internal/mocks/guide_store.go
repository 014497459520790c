package mocks

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockGuideStore implements store.GuideStore for testing.
type MockGuideStore struct {
	// Function fields for customizable behavior
	ListFn func(ctx context.Context, userID *int64) ([]*domain.Guide, error)

	// Default response values
	Guides []*domain.Guide
}

// NewMockGuideStore creates a new mock store with initialized defaults.
func NewMockGuideStore() *MockGuideStore {
	return &MockGuideStore{}
}

// List implements the GuideStore interface. The default filters the Guides
// slice by user ID the way the real query does.
func (m *MockGuideStore) List(ctx context.Context, userID *int64) ([]*domain.Guide, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}

	if userID == nil {
		return m.Guides, nil
	}

	filtered := []*domain.Guide{}
	for _, guide := range m.Guides {
		if guide.UserID == *userID {
			filtered = append(filtered, guide)
		}
	}
	return filtered, nil
}

var _ store.GuideStore = (*MockGuideStore)(nil)
