package handler

import (
	"net/http"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/environment"
	"github.com/osse101/CustomizeFishing_Go/internal/fishing"
)

// StartRequest is sent when a player casts
type StartRequest struct {
	Player domain.PlayerState `json:"player" validate:"required"`
}

// PlayerRequest identifies the player of a bite or cancel
type PlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// BlockSample is one block the host captured around the hook
type BlockSample struct {
	environment.Offset
	Block string `json:"block" validate:"required"`
}

// CatchRequest carries everything the host knows at reel-in
type CatchRequest struct {
	Player       domain.PlayerState `json:"player" validate:"required"`
	Hook         domain.Location    `json:"hook" validate:"required"`
	World        domain.WorldState  `json:"world"`
	Caught       *domain.Item       `json:"caught,omitempty"`
	Blocks       []BlockSample      `json:"blocks,omitempty" validate:"max=4096,dive"`
	DefaultBlock string             `json:"default_block,omitempty"`
}

// CatchResponse is the outcome plus the timing line shown to the player
type CatchResponse struct {
	domain.CatchOutcome
	TimingLabel string `json:"timing_label,omitempty"`
}

// SessionResponse reports a player's session
type SessionResponse struct {
	PlayerID string `json:"player_id"`
	Active   bool   `json:"active"`
	State    string `json:"state,omitempty"`
}

// FishingHandler exposes the fishing session lifecycle to the host bridge
type FishingHandler struct {
	service fishing.Service
}

func NewFishingHandler(service fishing.Service) *FishingHandler {
	return &FishingHandler{service: service}
}

// HandleStart opens a session
func (h *FishingHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start fishing"); err != nil {
		return
	}
	if err := h.service.Start(r.Context(), req.Player); err != nil {
		respondServiceError(w, r, "Start fishing", err)
		return
	}
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgSessionStarted})
}

// HandleBite records the bite moment
func (h *FishingHandler) HandleBite(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bite"); err != nil {
		return
	}
	if err := h.service.Bite(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Bite", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBiteRecorded})
}

// HandleCatch resolves the reel-in
func (h *FishingHandler) HandleCatch(w http.ResponseWriter, r *http.Request) {
	var req CatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Catch"); err != nil {
		return
	}

	snapshot := environment.NewSnapshot(req.Hook, req.DefaultBlock)
	for _, b := range req.Blocks {
		snapshot.Set(b.DX, b.DY, b.DZ, b.Block)
	}

	outcome, err := h.service.Catch(r.Context(), domain.CatchContext{
		Player: req.Player,
		Hook:   req.Hook,
		World:  req.World,
		Blocks: snapshot,
		Caught: req.Caught,
	})
	if err != nil {
		respondServiceError(w, r, "Catch", err)
		return
	}

	respondJSON(w, http.StatusOK, CatchResponse{
		CatchOutcome: outcome,
		TimingLabel:  fishing.TimingLabel(outcome.Timing),
	})
}

// HandleCancel drops a session that ended without a catch
func (h *FishingHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel fishing"); err != nil {
		return
	}
	if err := h.service.Cancel(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Cancel fishing", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionCancelled})
}

// HandleGetSession reports the state of a player's session
func (h *FishingHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, "playerID")
	if !ok {
		return
	}
	resp := SessionResponse{PlayerID: playerID}
	if state, active := h.service.SessionState(playerID); active {
		resp.Active = true
		resp.State = state.String()
	}
	respondJSON(w, http.StatusOK, resp)
}
