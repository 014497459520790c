package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

// ProgressUpdateRequest is the request body for a learner's progress report.
// Percent zero is meaningful, so it carries no required tag.
type ProgressUpdateRequest struct {
	EnrollmentID    int64   `json:"enrollment_id" validate:"required,gt=0"`
	LessonID        int64   `json:"lesson_id" validate:"required,gt=0"`
	ProgressPercent float64 `json:"progress_percent" validate:"gte=0,lte=100"`
}

// ProgressHandler handles progress ledger HTTP requests.
type ProgressHandler struct {
	progress service.ProgressService
	logger   *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if progress == nil {
		panic("progress cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressHandler{
		progress: progress,
		logger:   logger.With(slog.String("component", "progress_handler")),
	}
}

// Report handles POST /api/progress requests.
func (h *ProgressHandler) Report(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req ProgressUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.progress.Report(r.Context(), actor, req.EnrollmentID, req.LessonID, req.ProgressPercent)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// List handles GET /api/progress?enrollmentId= requests.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	enrollmentID, err := queryInt64(r, "enrollmentId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if enrollmentID == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidation, "enrollmentId is required")
		return
	}

	records, err := h.progress.ListByEnrollment(r.Context(), actor, *enrollmentID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("progress listed",
		slog.Int64("enrollment_id", *enrollmentID),
		slog.Int("count", len(records)))
	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// ListWatched handles GET /api/lessons/watched requests: the lessons the
// learner has reported positive progress on, best percentage per lesson.
func (h *ProgressHandler) ListWatched(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	userID, err := queryInt64(r, "userId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	watched, err := h.progress.ListWatched(r.Context(), actor, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, watched)
}
