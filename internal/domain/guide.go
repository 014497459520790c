package domain

import "time"

// Guide is a learner study guide joined with its learner and course for
// display. Guides are produced out of band; this service only reads them.
type Guide struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	CourseID    int64     `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	GuideText   string    `json:"guide_text"`
	CreatedAt   time.Time `json:"created_at"`
}
