package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

// AIRequest is the request body for the AI generation endpoints.
type AIRequest struct {
	Text string `json:"text" validate:"required"`
}

// AIHandler handles the AI text-generation proxy endpoints.
type AIHandler struct {
	ai     service.AIService
	logger *slog.Logger
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(ai service.AIService, logger *slog.Logger) *AIHandler {
	if ai == nil {
		panic("ai cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AIHandler{
		ai:     ai,
		logger: logger.With(slog.String("component", "ai_handler")),
	}
}

// Summary handles POST /api/ai/summary requests.
func (h *AIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req AIRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.ai.GenerateSummary(r.Context(), actor, req.Text)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Quiz handles POST /api/ai/quiz requests.
func (h *AIHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActor(w, r)
	if !ok {
		return
	}

	var req AIRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.ai.GenerateQuiz(r.Context(), actor, req.Text)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
