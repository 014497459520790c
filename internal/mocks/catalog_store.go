package mocks

import (
	"context"
	"sort"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockCourseStore implements store.CourseStore for testing.
type MockCourseStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, course *domain.Course) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Course, error)
	ListFn    func(ctx context.Context) ([]*domain.Course, error)
	ExistsFn  func(ctx context.Context, id int64) (bool, error)
	UpdateFn  func(ctx context.Context, id int64, title, description string) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for the default implementation
	Courses []*domain.Course
	nextID  int64
}

// NewMockCourseStore creates a new mock store with initialized defaults.
func NewMockCourseStore() *MockCourseStore {
	return &MockCourseStore{}
}

// Create implements the CourseStore interface.
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, course)
	}

	m.nextID++
	course.ID = m.nextID
	m.Courses = append(m.Courses, course)
	return nil
}

// GetByID implements the CourseStore interface.
func (m *MockCourseStore) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, course := range m.Courses {
		if course.ID == id {
			return course, nil
		}
	}
	return nil, store.ErrCourseNotFound
}

// List implements the CourseStore interface.
func (m *MockCourseStore) List(ctx context.Context) ([]*domain.Course, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Courses, nil
}

// Exists implements the CourseStore interface.
func (m *MockCourseStore) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	for _, course := range m.Courses {
		if course.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Update implements the CourseStore interface.
func (m *MockCourseStore) Update(ctx context.Context, id int64, title, description string) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, description)
	}

	for _, course := range m.Courses {
		if course.ID == id {
			course.Title = title
			course.Description = description
			return nil
		}
	}
	return store.ErrCourseNotFound
}

// Delete implements the CourseStore interface.
func (m *MockCourseStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for i, course := range m.Courses {
		if course.ID == id {
			m.Courses = append(m.Courses[:i], m.Courses[i+1:]...)
			return nil
		}
	}
	return store.ErrCourseNotFound
}

var _ store.CourseStore = (*MockCourseStore)(nil)

// MockLessonStore implements store.LessonStore for testing.
type MockLessonStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, lesson *domain.Lesson) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Lesson, error)
	ListFn         func(ctx context.Context) ([]*domain.Lesson, error)
	ListByCourseFn func(ctx context.Context, courseID int64) ([]*domain.Lesson, error)
	UpdateFn       func(ctx context.Context, id int64, title, content string, orderNo int) error
	DeleteFn       func(ctx context.Context, id int64) error

	// Data for the default implementation
	Lessons []*domain.Lesson
	nextID  int64
}

// NewMockLessonStore creates a new mock store with initialized defaults.
func NewMockLessonStore() *MockLessonStore {
	return &MockLessonStore{}
}

// Create implements the LessonStore interface.
func (m *MockLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lesson)
	}

	m.nextID++
	lesson.ID = m.nextID
	m.Lessons = append(m.Lessons, lesson)
	return nil
}

// GetByID implements the LessonStore interface.
func (m *MockLessonStore) GetByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, lesson := range m.Lessons {
		if lesson.ID == id {
			return lesson, nil
		}
	}
	return nil, store.ErrLessonNotFound
}

// List implements the LessonStore interface.
func (m *MockLessonStore) List(ctx context.Context) ([]*domain.Lesson, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Lessons, nil
}

// ListByCourse implements the LessonStore interface.
func (m *MockLessonStore) ListByCourse(ctx context.Context, courseID int64) ([]*domain.Lesson, error) {
	if m.ListByCourseFn != nil {
		return m.ListByCourseFn(ctx, courseID)
	}

	var lessons []*domain.Lesson
	for _, lesson := range m.Lessons {
		if lesson.CourseID == courseID {
			lessons = append(lessons, lesson)
		}
	}
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].OrderNo < lessons[j].OrderNo
	})
	return lessons, nil
}

// Update implements the LessonStore interface.
func (m *MockLessonStore) Update(ctx context.Context, id int64, title, content string, orderNo int) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, content, orderNo)
	}

	for _, lesson := range m.Lessons {
		if lesson.ID == id {
			lesson.Title = title
			lesson.Content = content
			lesson.OrderNo = orderNo
			return nil
		}
	}
	return store.ErrLessonNotFound
}

// Delete implements the LessonStore interface.
func (m *MockLessonStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for i, lesson := range m.Lessons {
		if lesson.ID == id {
			m.Lessons = append(m.Lessons[:i], m.Lessons[i+1:]...)
			return nil
		}
	}
	return store.ErrLessonNotFound
}

var _ store.LessonStore = (*MockLessonStore)(nil)
