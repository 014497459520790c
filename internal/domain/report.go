package domain

// Report rows are derived on demand from the enrollment and progress ledgers
// joined with the catalog; they are never persisted or cached.

// CoursePeriodRow summarizes one course over an enrollment period: the number
// of distinct enrolled learners and the average of all associated progress
// percentages. Courses whose enrollments carry no progress rows report an
// average of zero.
type CoursePeriodRow struct {
	CourseID     int64   `json:"course_id"`
	CourseTitle  string  `json:"course_title"`
	LearnerCount int64   `json:"learner_count"`
	AvgProgress  float64 `json:"avg_progress"`
}

// CourseCompletionRow counts, per course in the period, the distinct learners
// holding at least one progress record at exactly 100 percent.
type CourseCompletionRow struct {
	CourseID          int64  `json:"course_id"`
	CourseTitle       string `json:"course_title"`
	CompletedLearners int64  `json:"completed_learners"`
}

// LearnerProgressRow details one (learner, course) pair: average progress
// across the course's lessons, the number of completed lessons, and the total
// lesson count. Totals come from an outer join on lessons so courses with
// zero progress still report correct counts.
type LearnerProgressRow struct {
	UserID           int64   `json:"user_id"`
	UserName         string  `json:"user_name"`
	CourseID         int64   `json:"course_id"`
	CourseTitle      string  `json:"course_title"`
	AvgProgress      float64 `json:"avg_progress"`
	CompletedLessons int64   `json:"completed_lessons"`
	TotalLessons     int64   `json:"total_lessons"`
}
