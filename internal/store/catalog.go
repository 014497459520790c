package store

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// CourseStore defines the interface for course catalog persistence.
type CourseStore interface {
	// Create saves a new course and populates its generated ID.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Course, error)

	// List returns all courses ordered by ID.
	List(ctx context.Context) ([]*domain.Course, error)

	// Exists reports whether a course with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update modifies a course's title and description.
	// Returns ErrCourseNotFound if no row was affected.
	Update(ctx context.Context, id int64, title, description string) error

	// Delete removes a course. Returns ErrCourseNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error
}

// LessonStore defines the interface for lesson catalog persistence.
type LessonStore interface {
	// Create saves a new lesson and populates its generated ID.
	// Returns ErrCourseNotFound if the owning course does not exist.
	Create(ctx context.Context, lesson *domain.Lesson) error

	// GetByID retrieves a lesson by its unique ID.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)

	// List returns all lessons ordered by ID.
	List(ctx context.Context) ([]*domain.Lesson, error)

	// ListByCourse returns the course's lessons ordered by their order number.
	ListByCourse(ctx context.Context, courseID int64) ([]*domain.Lesson, error)

	// Update modifies a lesson's title, content and order number.
	// Returns ErrLessonNotFound if no row was affected.
	Update(ctx context.Context, id int64, title, content string, orderNo int) error

	// Delete removes a lesson. Returns ErrLessonNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error
}
