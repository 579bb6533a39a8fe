package fishing

import (
	"context"
	"fmt"

	"github.com/osse101/CustomizeFishing_Go/internal/category"
	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/loot"
)

// attemptDrawer re-fishes with the conditions cached for one attempt. It is what the
// unique-item protocol calls when a drawn unique item was already claimed.
type attemptDrawer struct {
	cfg      *config.FishingConfig
	selector *category.Selector
	resolver loot.Resolver
	player   domain.PlayerState
	catCtx   category.Context
	lootLuck float64
}

func (d *attemptDrawer) Draw(ctx context.Context) (string, *domain.Item, error) {
	sel := d.selector.Select(d.cfg, d.player.ID, d.catCtx)
	item, err := d.DrawFrom(ctx, sel.Category)
	return sel.Category, item, err
}

func (d *attemptDrawer) DrawFrom(ctx context.Context, categoryName string) (*domain.Item, error) {
	item, err := d.resolver.Resolve(ctx, categoryName, d.lootLuck)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Material == "" || item.Amount <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyLoot, categoryName)
	}
	return ApplyPlayerHead(item, categoryName, d.cfg.PlayerHead.Category, d.player), nil
}
