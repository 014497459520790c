package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/service/reporting"
)

// ReportHandler handles the administrative report endpoints, including the
// CSV export variants.
type ReportHandler struct {
	reports reporting.Service
	logger  *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports reporting.Service, logger *slog.Logger) *ReportHandler {
	if reports == nil {
		panic("reports cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReportHandler{
		reports: reports,
		logger:  logger.With(slog.String("component", "report_handler")),
	}
}

// periodParams extracts the from/to/courseId report parameters. It writes a
// 400 response and returns false when any is invalid.
func (h *ReportHandler) periodParams(
	w http.ResponseWriter,
	r *http.Request,
) (from, to time.Time, courseID *int64, ok bool) {
	var err error

	from, err = queryDate(r, "from")
	if err != nil {
		HandleServiceError(w, r, err)
		return from, to, nil, false
	}

	to, err = queryDate(r, "to")
	if err != nil {
		HandleServiceError(w, r, err)
		return from, to, nil, false
	}

	courseID, err = queryInt64(r, "courseId")
	if err != nil {
		HandleServiceError(w, r, err)
		return from, to, nil, false
	}

	return from, to, courseID, true
}

// CoursePeriod handles GET /api/reports/course-period requests.
func (h *ReportHandler) CoursePeriod(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	from, to, courseID, ok := h.periodParams(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.CoursePeriod(r.Context(), actor, from, to, courseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// CoursePeriodCSV handles GET /api/reports/course-period.csv requests.
func (h *ReportHandler) CoursePeriodCSV(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	from, to, courseID, ok := h.periodParams(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.CoursePeriod(r.Context(), actor, from, to, courseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	h.writeCSV(w, r, "course-period.csv", reporting.CoursePeriodCSV(rows))
}

// CourseCompletion handles GET /api/reports/course-completion requests.
func (h *ReportHandler) CourseCompletion(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	from, to, courseID, ok := h.periodParams(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.CourseCompletion(r.Context(), actor, from, to, courseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// CourseCompletionCSV handles GET /api/reports/course-completion.csv requests.
func (h *ReportHandler) CourseCompletionCSV(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	from, to, courseID, ok := h.periodParams(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.CourseCompletion(r.Context(), actor, from, to, courseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	h.writeCSV(w, r, "course-completion.csv", reporting.CourseCompletionCSV(rows))
}

// LearnerProgress handles GET /api/reports/learner-progress requests.
func (h *ReportHandler) LearnerProgress(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	userID, err := queryInt64(r, "userId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	rows, err := h.reports.LearnerProgress(r.Context(), actor, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

func (h *ReportHandler) writeCSV(w http.ResponseWriter, r *http.Request, filename, body string) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error("failed to write CSV response",
			slog.String("error", err.Error()),
			slog.String("filename", filename))
	}
}
