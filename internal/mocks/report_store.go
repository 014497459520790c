package mocks

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockReportStore implements store.ReportStore for testing.
type MockReportStore struct {
	// Function fields for customizable behavior
	CoursePeriodFn     func(ctx context.Context, from, to time.Time, courseID *int64) ([]*domain.CoursePeriodRow, error)
	CourseCompletionFn func(ctx context.Context, from, to time.Time, courseID *int64) ([]*domain.CourseCompletionRow, error)
	LearnerProgressFn  func(ctx context.Context, userID *int64) ([]*domain.LearnerProgressRow, error)

	// Default response values
	PeriodRows     []*domain.CoursePeriodRow
	CompletionRows []*domain.CourseCompletionRow
	ProgressRows   []*domain.LearnerProgressRow
}

// NewMockReportStore creates a new mock store with initialized defaults.
func NewMockReportStore() *MockReportStore {
	return &MockReportStore{}
}

// CoursePeriod implements the ReportStore interface.
func (m *MockReportStore) CoursePeriod(
	ctx context.Context,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CoursePeriodRow, error) {
	if m.CoursePeriodFn != nil {
		return m.CoursePeriodFn(ctx, from, to, courseID)
	}
	return m.PeriodRows, nil
}

// CourseCompletion implements the ReportStore interface.
func (m *MockReportStore) CourseCompletion(
	ctx context.Context,
	from, to time.Time,
	courseID *int64,
) ([]*domain.CourseCompletionRow, error) {
	if m.CourseCompletionFn != nil {
		return m.CourseCompletionFn(ctx, from, to, courseID)
	}
	return m.CompletionRows, nil
}

// LearnerProgress implements the ReportStore interface.
func (m *MockReportStore) LearnerProgress(ctx context.Context, userID *int64) ([]*domain.LearnerProgressRow, error) {
	if m.LearnerProgressFn != nil {
		return m.LearnerProgressFn(ctx, userID)
	}
	return m.ProgressRows, nil
}

var _ store.ReportStore = (*MockReportStore)(nil)
