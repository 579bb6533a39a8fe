package loot

import (
	"math"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/utils"
)

// Entry is one weighted row of a loot table file
type Entry struct {
	Item         string   `json:"item"`
	Weight       float64  `json:"weight"`
	Quality      float64  `json:"quality,omitempty"`
	Count        int      `json:"count,omitempty"`
	Name         string   `json:"name,omitempty"`
	Lore         []string `json:"lore,omitempty"`
	UniqueID     string   `json:"unique_id,omitempty"`
	BindingCurse bool     `json:"binding_curse,omitempty"`
}

// Table is the decoded content of <dir>/<category>.json
type Table struct {
	Name        string  `json:"-"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"entries"`
}

// EffectiveWeight is max(0, floor(weight + quality*luck))
func EffectiveWeight(e Entry, luck float64) float64 {
	return math.Max(0, math.Floor(e.Weight+e.Quality*luck))
}

// ScaleLuck converts total luck into the resolver's luck range
func ScaleLuck(totalLuck float64, cfg config.LootConfig) float64 {
	if math.IsNaN(totalLuck) {
		return 0
	}
	return utils.Clamp(totalLuck*cfg.LuckScale, cfg.MinLuck, cfg.MaxLuck)
}

// ToItem builds a fresh item for the entry
func (e Entry) ToItem() *domain.Item {
	count := e.Count
	if count <= 0 {
		count = 1
	}
	item := domain.NewItem(e.Item, count)
	item.DisplayName = e.Name
	if len(e.Lore) > 0 {
		item.Lore = append([]string(nil), e.Lore...)
	}
	item.UniqueID = e.UniqueID
	item.BindingCurse = e.BindingCurse
	return item
}
