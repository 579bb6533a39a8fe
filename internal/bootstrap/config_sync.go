package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// LootTables is the part of the loot resolver the reload cycle drives
type LootTables interface {
	Reload(ctx context.Context) error
	Tables() []string
	UniqueIDs() []string
}

// UniqueReloader re-reads the unique item store
type UniqueReloader interface {
	Reload(ctx context.Context) error
}

// ConfigSync reloads the fishing configuration, the loot tables and the unique store as one step
// and announces the result on the bus.
type ConfigSync struct {
	store   *config.Store
	loot    LootTables
	uniques UniqueReloader
	bus     event.Bus
}

// NewConfigSync wires the reload cycle
func NewConfigSync(store *config.Store, loot LootTables, uniques UniqueReloader, bus event.Bus) *ConfigSync {
	return &ConfigSync{store: store, loot: loot, uniques: uniques, bus: bus}
}

// Reload swaps in the new snapshot. A failure at any step leaves the earlier steps applied
// and the remaining components on their previous state.
func (c *ConfigSync) Reload(ctx context.Context) (domain.ConfigReloadedPayload, error) {
	log := logger.FromContext(ctx)

	cfg, err := c.store.Reload(ctx)
	if err != nil {
		return domain.ConfigReloadedPayload{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadFishing, err)
	}

	if err := c.loot.Reload(ctx); err != nil {
		log.Error(LogMsgConfigReloadFailed, "error", err)
		return domain.ConfigReloadedPayload{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadLoot, err)
	}

	if c.uniques != nil {
		if err := c.uniques.Reload(ctx); err != nil {
			log.Error(LogMsgConfigReloadFailed, "error", err)
			return domain.ConfigReloadedPayload{}, fmt.Errorf("%s: %w", ErrMsgFailedReloadUnique, err)
		}
	}

	known := len(c.loot.UniqueIDs())
	log.Info(LogMsgLootTablesLoaded, "tables", len(c.loot.Tables()), "known_uniques", known)

	evt := event.NewConfigReloadedEvent(c.store.Path(), len(cfg.Categories), len(c.loot.Tables()), known)
	if c.bus != nil {
		if err := c.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgReloadEventFailed, "error", err)
		}
	}

	payload, _ := evt.Payload.(domain.ConfigReloadedPayload)
	return payload, nil
}
