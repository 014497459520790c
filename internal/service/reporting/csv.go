package reporting

import (
	"strconv"
	"strings"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// CSV rendering for the export endpoints. The format is fixed: a declared
// header row, one line per row terminated by "\n", fields joined by commas.
// A field is wrapped in double quotes only when it contains a comma, quote,
// or newline; embedded quotes are doubled.

// CoursePeriodCSV renders course period report rows as CSV.
func CoursePeriodCSV(rows []*domain.CoursePeriodRow) string {
	var sb strings.Builder
	sb.WriteString("course_id,course_title,learner_count,avg_progress\n")
	for _, row := range rows {
		sb.WriteString(strconv.FormatInt(row.CourseID, 10))
		sb.WriteByte(',')
		sb.WriteString(escapeField(row.CourseTitle))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatInt(row.LearnerCount, 10))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(row.AvgProgress, 'f', -1, 64))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CourseCompletionCSV renders course completion report rows as CSV.
func CourseCompletionCSV(rows []*domain.CourseCompletionRow) string {
	var sb strings.Builder
	sb.WriteString("course_id,course_title,completed_learners\n")
	for _, row := range rows {
		sb.WriteString(strconv.FormatInt(row.CourseID, 10))
		sb.WriteByte(',')
		sb.WriteString(escapeField(row.CourseTitle))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatInt(row.CompletedLearners, 10))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func escapeField(value string) string {
	escaped := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(escaped, ",\"\n") {
		return `"` + escaped + `"`
	}
	return escaped
}
