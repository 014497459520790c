package mocks

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockProgressStore implements store.ProgressStore for testing.
type MockProgressStore struct {
	// Function fields for customizable behavior
	UpsertFn            func(ctx context.Context, enrollmentID, lessonID int64, percent float64, completed bool) (*domain.Progress, error)
	ListByEnrollmentFn  func(ctx context.Context, enrollmentID int64) ([]*domain.Progress, error)
	ListWatchedByUserFn func(ctx context.Context, userID int64) ([]*domain.WatchedLesson, error)

	// Data for the default implementation
	Records []*domain.Progress
	Watched []*domain.WatchedLesson
	nextID  int64
}

// NewMockProgressStore creates a new mock store with initialized defaults.
func NewMockProgressStore() *MockProgressStore {
	return &MockProgressStore{}
}

// Upsert implements the ProgressStore interface. The default implementation
// keeps one record per (enrollmentID, lessonID) pair, matching the store
// contract.
func (m *MockProgressStore) Upsert(
	ctx context.Context,
	enrollmentID, lessonID int64,
	percent float64,
	completed bool,
) (*domain.Progress, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, enrollmentID, lessonID, percent, completed)
	}

	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}

	for _, record := range m.Records {
		if record.EnrollmentID == enrollmentID && record.LessonID == lessonID {
			record.ProgressPercent = percent
			record.CompletedAt = completedAt
			return record, nil
		}
	}

	m.nextID++
	record := &domain.Progress{
		ID:              m.nextID,
		EnrollmentID:    enrollmentID,
		LessonID:        lessonID,
		ProgressPercent: percent,
		CompletedAt:     completedAt,
	}
	m.Records = append(m.Records, record)
	return record, nil
}

// ListByEnrollment implements the ProgressStore interface.
func (m *MockProgressStore) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]*domain.Progress, error) {
	if m.ListByEnrollmentFn != nil {
		return m.ListByEnrollmentFn(ctx, enrollmentID)
	}

	var records []*domain.Progress
	for _, record := range m.Records {
		if record.EnrollmentID == enrollmentID {
			records = append(records, record)
		}
	}
	return records, nil
}

// ListWatchedByUser implements the ProgressStore interface.
func (m *MockProgressStore) ListWatchedByUser(ctx context.Context, userID int64) ([]*domain.WatchedLesson, error) {
	if m.ListWatchedByUserFn != nil {
		return m.ListWatchedByUserFn(ctx, userID)
	}
	return m.Watched, nil
}

var _ store.ProgressStore = (*MockProgressStore)(nil)
