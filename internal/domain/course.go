package domain

import (
	"errors"
	"strings"
	"time"
)

// Catalog validation errors.
var (
	// ErrCourseTitleEmpty is returned when a course title is empty or blank.
	ErrCourseTitleEmpty = errors.New("course title cannot be empty")

	// ErrLessonTitleEmpty is returned when a lesson title is empty or blank.
	ErrLessonTitleEmpty = errors.New("lesson title cannot be empty")

	// ErrLessonCourseIDInvalid is returned when a lesson's course reference is
	// not positive.
	ErrLessonCourseIDInvalid = errors.New("lesson course ID must be positive")
)

// Course is a catalog entry learners enroll into.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrCourseTitleEmpty
	}
	return nil
}

// Lesson is a unit of course content, ordered within its course by OrderNo.
// The video fields are optional playback hints.
type Lesson struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	OrderNo  int    `json:"order_no"`
	VideoURL string `json:"video_url,omitempty"`
	StartSec int    `json:"start_sec,omitempty"`
	EndSec   int    `json:"end_sec,omitempty"`
}

// Validate checks if the Lesson has valid data.
func (l *Lesson) Validate() error {
	if l.CourseID <= 0 {
		return ErrLessonCourseIDInvalid
	}

	if strings.TrimSpace(l.Title) == "" {
		return ErrLessonTitleEmpty
	}

	return nil
}
