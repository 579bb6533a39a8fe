package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/fishing"
)

// DebugCategoryRequest sets or clears the category a player's debug rod forces
type DebugCategoryRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Category string `json:"category" validate:"max=64,category"`
}

// DebugRodRequest asks for a debug rod item
type DebugRodRequest struct {
	Category string `json:"category" validate:"required,max=64,category"`
}

// DebugHandler serves the admin debug-rod commands
type DebugHandler struct {
	service fishing.Service
}

func NewDebugHandler(service fishing.Service) *DebugHandler {
	return &DebugHandler{service: service}
}

// HandleSetCategory forces a category for the player's debug rod
func (h *DebugHandler) HandleSetCategory(w http.ResponseWriter, r *http.Request) {
	var req DebugCategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set debug category"); err != nil {
		return
	}
	if err := h.service.SetDebugCategory(r.Context(), req.PlayerID, req.Category); err != nil {
		h.respondCategoryError(w, r, req.Category, err)
		return
	}
	msg := MsgDebugCategorySet
	if req.Category == "" {
		msg = MsgDebugCategoryCleared
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// HandleCreateRod returns the rod item the host should hand to the player
func (h *DebugHandler) HandleCreateRod(w http.ResponseWriter, r *http.Request) {
	var req DebugRodRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create debug rod"); err != nil {
		return
	}
	rod, err := h.service.NewDebugRod(req.Category)
	if err != nil {
		h.respondCategoryError(w, r, req.Category, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Data: rod})
}

// respondCategoryError adds "did you mean" suggestions to unknown-category errors
func (h *DebugHandler) respondCategoryError(w http.ResponseWriter, r *http.Request, category string, err error) {
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		respondServiceError(w, r, "Debug category", err)
		return
	}
	suggestions, _ := h.service.ValidateDebugCategory(category)
	respondJSON(w, http.StatusNotFound, ErrorResponse{
		Error:       ErrMsgCategoryNotFoundError,
		Suggestions: suggestions,
	})
}
