package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// LessonCreateRequest is the request body for creating a lesson.
type LessonCreateRequest struct {
	CourseID int64  `json:"course_id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	OrderNo  int    `json:"order_no" validate:"gte=0"`
	VideoURL string `json:"video_url"`
	StartSec int    `json:"start_sec" validate:"gte=0"`
	EndSec   int    `json:"end_sec" validate:"gte=0"`
}

// LessonUpdateRequest is the request body for updating a lesson.
type LessonUpdateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	OrderNo int    `json:"order_no" validate:"gte=0"`
}

// LessonHandler handles lesson catalog HTTP requests. Admin routes are
// guarded at the router; the public listing requires no identity.
type LessonHandler struct {
	lessons store.LessonStore
	logger  *slog.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessons store.LessonStore, logger *slog.Logger) *LessonHandler {
	if lessons == nil {
		panic("lessons cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LessonHandler{
		lessons: lessons,
		logger:  logger.With(slog.String("component", "lesson_handler")),
	}
}

// List handles GET /api/lessons requests. With a courseId filter it returns
// that course's lessons in order; without, every lesson by ID.
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := queryInt64(r, "courseId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var lessons []*domain.Lesson
	if courseID != nil {
		lessons, err = h.lessons.ListByCourse(r.Context(), *courseID)
	} else {
		lessons, err = h.lessons.List(r.Context())
	}
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessons)
}

// ListPublic handles GET /api/lessons/public?courseId= requests.
func (h *LessonHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	courseID, err := queryInt64(r, "courseId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if courseID == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidation, "courseId is required")
		return
	}

	lessons, err := h.lessons.ListByCourse(r.Context(), *courseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessons)
}

// Detail handles GET /api/lessons/{id} requests.
func (h *LessonHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	lesson, err := h.lessons.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// Create handles POST /api/lessons requests.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LessonCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lesson := &domain.Lesson{
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
		OrderNo:  req.OrderNo,
		VideoURL: req.VideoURL,
		StartSec: req.StartSec,
		EndSec:   req.EndSec,
	}
	if err := h.lessons.Create(r.Context(), lesson); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Info("lesson created via API",
		slog.Int64("lesson_id", lesson.ID),
		slog.Int64("course_id", lesson.CourseID))
	shared.RespondWithJSON(w, r, http.StatusCreated, lesson)
}

// Update handles PUT /api/lessons/{id} requests.
func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req LessonUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.lessons.Update(r.Context(), id, req.Title, req.Content, req.OrderNo); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	lesson, err := h.lessons.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// Delete handles DELETE /api/lessons/{id} requests.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.lessons.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
