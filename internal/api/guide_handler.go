package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

// GuideHandler handles learner study guide HTTP requests.
type GuideHandler struct {
	guides service.GuideService
	logger *slog.Logger
}

// NewGuideHandler creates a new GuideHandler.
func NewGuideHandler(guides service.GuideService, logger *slog.Logger) *GuideHandler {
	if guides == nil {
		panic("guides cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GuideHandler{
		guides: guides,
		logger: logger.With(slog.String("component", "guide_handler")),
	}
}

// List handles GET /api/guides?userId= requests.
func (h *GuideHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	userID, err := queryInt64(r, "userId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	guides, err := h.guides.List(r.Context(), actor, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, guides)
}
