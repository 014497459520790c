package mocks

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockEnrollmentStore implements store.EnrollmentStore for testing.
type MockEnrollmentStore struct {
	// Function fields for customizable behavior
	EnrollFn       func(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Enrollment, error)
	OwnedByUserFn  func(ctx context.Context, enrollmentID, userID int64) (bool, error)
	UpdateStatusFn func(ctx context.Context, id int64, status domain.EnrollmentStatus) error
	ListPendingFn  func(ctx context.Context) ([]*domain.PendingEnrollment, error)

	// Data for the default implementation
	Enrollments []*domain.Enrollment
	nextID      int64
}

// NewMockEnrollmentStore creates a new mock store with initialized defaults.
func NewMockEnrollmentStore() *MockEnrollmentStore {
	return &MockEnrollmentStore{}
}

// Enroll implements the EnrollmentStore interface. The default implementation
// is idempotent per (userID, courseID), matching the store contract.
func (m *MockEnrollmentStore) Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	if m.EnrollFn != nil {
		return m.EnrollFn(ctx, userID, courseID)
	}

	for _, e := range m.Enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}

	m.nextID++
	enrollment := &domain.Enrollment{
		ID:         m.nextID,
		UserID:     userID,
		CourseID:   courseID,
		Status:     domain.EnrollmentPending,
		EnrolledAt: time.Now().UTC(),
	}
	m.Enrollments = append(m.Enrollments, enrollment)
	return enrollment, nil
}

// GetByID implements the EnrollmentStore interface.
func (m *MockEnrollmentStore) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, e := range m.Enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, store.ErrEnrollmentNotFound
}

// OwnedByUser implements the EnrollmentStore interface.
func (m *MockEnrollmentStore) OwnedByUser(ctx context.Context, enrollmentID, userID int64) (bool, error) {
	if m.OwnedByUserFn != nil {
		return m.OwnedByUserFn(ctx, enrollmentID, userID)
	}

	for _, e := range m.Enrollments {
		if e.ID == enrollmentID {
			return e.UserID == userID, nil
		}
	}
	return false, nil
}

// UpdateStatus implements the EnrollmentStore interface.
func (m *MockEnrollmentStore) UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}

	for _, e := range m.Enrollments {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return store.ErrEnrollmentNotFound
}

// ListPending implements the EnrollmentStore interface.
func (m *MockEnrollmentStore) ListPending(ctx context.Context) ([]*domain.PendingEnrollment, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}

	var pending []*domain.PendingEnrollment
	for _, e := range m.Enrollments {
		if e.Status == domain.EnrollmentPending {
			pending = append(pending, &domain.PendingEnrollment{
				ID:         e.ID,
				UserID:     e.UserID,
				CourseID:   e.CourseID,
				Status:     e.Status,
				EnrolledAt: e.EnrolledAt,
			})
		}
	}
	return pending, nil
}

var _ store.EnrollmentStore = (*MockEnrollmentStore)(nil)
