package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

// EnrollRequest is the request body for a learner's enrollment request.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" validate:"required,gt=0"`
}

// EnrollmentHandler handles enrollment lifecycle HTTP requests.
type EnrollmentHandler struct {
	enrollments service.EnrollmentService
	logger      *slog.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollments service.EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	if enrollments == nil {
		panic("enrollments cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EnrollmentHandler{
		enrollments: enrollments,
		logger:      logger.With(slog.String("component", "enrollment_handler")),
	}
}

// Enroll handles POST /api/enroll requests. Repeating the request for the
// same course returns the existing enrollment unchanged.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req EnrollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	enrollment, err := h.enrollments.Enroll(r.Context(), actor, req.CourseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, enrollment)
}

// ListPending handles GET /api/enroll/pending requests.
func (h *EnrollmentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	pending, err := h.enrollments.ListPending(r.Context(), actor)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pending)
}

// Approve handles POST /api/enroll/{id}/approve requests.
func (h *EnrollmentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.EnrollmentEnrolled)
}

// Reject handles POST /api/enroll/{id}/reject requests.
func (h *EnrollmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.EnrollmentRejected)
}

func (h *EnrollmentHandler) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	status domain.EnrollmentStatus,
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	enrollmentID, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.enrollments.SetStatus(r.Context(), actor, enrollmentID, status); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("enrollment decision applied",
		slog.Int64("enrollment_id", enrollmentID),
		slog.String("status", string(status)))
	w.WriteHeader(http.StatusNoContent)
}
