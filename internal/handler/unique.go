package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// UniqueStatsProvider reads per-world claim statistics
type UniqueStatsProvider interface {
	Stats(ctx context.Context, world string, known int) (domain.WorldUniqueStats, error)
}

// UniqueCatalog lists every unique id declared in the loot tables
type UniqueCatalog interface {
	UniqueIDs() []string
}

// UniqueHandler serves unique-item statistics
type UniqueHandler struct {
	stats   UniqueStatsProvider
	catalog UniqueCatalog
}

func NewUniqueHandler(stats UniqueStatsProvider, catalog UniqueCatalog) *UniqueHandler {
	return &UniqueHandler{stats: stats, catalog: catalog}
}

// HandleGetWorldStats returns how many declared unique items have been claimed in a world
func (h *UniqueHandler) HandleGetWorldStats(w http.ResponseWriter, r *http.Request) {
	world, ok := GetPathParam(r, w, "world")
	if !ok {
		return
	}

	stats, err := h.stats.Stats(r.Context(), world, len(h.catalog.UniqueIDs()))
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgUniqueStatsFailed, "world", world, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgUniqueStatsFailed)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
