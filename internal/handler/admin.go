package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// ConfigReloader re-reads the fishing config, the loot tables and the unique store
type ConfigReloader interface {
	Reload(ctx context.Context) (domain.ConfigReloadedPayload, error)
}

// HandleReloadConfig reloads configuration. On failure the previous configuration stays active.
func HandleReloadConfig(reloader ConfigReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		summary, err := reloader.Reload(r.Context())
		if err != nil {
			log.Error(LogMsgReloadFailed, "error", err)
			status, msg := mapServiceErrorToStatus(err)
			if status == http.StatusInternalServerError {
				msg = ErrMsgReloadConfigFailed
			}
			respondError(w, status, msg)
			return
		}

		log.Info(LogMsgReloadSucceeded,
			"categories", summary.CategoryCount,
			"loot_tables", summary.LootTables,
			"known_uniques", summary.KnownUniques)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgConfigReloaded, Data: summary})
	}
}
