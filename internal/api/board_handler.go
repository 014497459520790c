package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack-api/internal/api/shared"
	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// BoardRequest is the request body for creating or updating a board post.
type BoardRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// BoardHandler handles board post HTTP requests. Reads require identity;
// mutations are guarded by the admin middleware at the router.
type BoardHandler struct {
	boards store.BoardStore
	logger *slog.Logger
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boards store.BoardStore, logger *slog.Logger) *BoardHandler {
	if boards == nil {
		panic("boards cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardHandler{
		boards: boards,
		logger: logger.With(slog.String("component", "board_handler")),
	}
}

// List handles GET /api/boards requests, newest first.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boards.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, boards)
}

// Detail handles GET /api/boards/{id} requests.
func (h *BoardHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	board, err := h.boards.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// Create handles POST /api/boards requests.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	board := &domain.Board{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.boards.Create(r.Context(), board); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, board)
}

// Update handles PUT /api/boards/{id} requests.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req BoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.boards.Update(r.Context(), id, req.Title, req.Content); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	board, err := h.boards.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, board)
}

// Delete handles DELETE /api/boards/{id} requests.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.boards.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
