package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// CourseCreateRequest is the request body for creating a course.
type CourseCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CourseUpdateRequest is the request body for updating a course.
type CourseUpdateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CourseHandler handles course catalog HTTP requests. Mutations are guarded
// by the admin middleware at the router.
type CourseHandler struct {
	courses store.CourseStore
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses store.CourseStore, logger *slog.Logger) *CourseHandler {
	if courses == nil {
		panic("courses cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CourseHandler{
		courses: courses,
		logger:  logger.With(slog.String("component", "course_handler")),
	}
}

// List handles GET /api/courses requests. The catalog is public.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, courses)
}

// Detail handles GET /api/courses/{id} requests.
func (h *CourseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	course, err := h.courses.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Create handles POST /api/courses requests.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CourseCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course := &domain.Course{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.courses.Create(r.Context(), course); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Info("course created via API", slog.Int64("course_id", course.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, course)
}

// Update handles PUT /api/courses/{id} requests.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req CourseUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.courses.Update(r.Context(), id, req.Title, req.Description); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	course, err := h.courses.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Delete handles DELETE /api/courses/{id} requests.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.courses.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
