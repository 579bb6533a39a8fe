package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func TestApplyPlayerHead(t *testing.T) {
	player := domain.PlayerState{ID: "uuid-a", Name: "Alice"}

	tests := []struct {
		name     string
		item     *domain.Item
		category string
		wantHead bool
	}{
		{"head from head category", domain.NewItem(domain.MaterialPlayerHead, 1), domain.DefaultPlayerHeadCategory, true},
		{"head from another category", domain.NewItem(domain.MaterialPlayerHead, 1), "rare", false},
		{"other item from head category", domain.NewItem(domain.MaterialCod, 1), domain.DefaultPlayerHeadCategory, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPlayerHead(tt.item, tt.category, domain.DefaultPlayerHeadCategory, player)
			if !tt.wantHead {
				assert.Same(t, tt.item, got)
				assert.Nil(t, got.SkullOwner)
				return
			}
			require.NotNil(t, got.SkullOwner)
			assert.Equal(t, player.Claimant(), *got.SkullOwner)
			assert.Equal(t, "Aliceの頭", got.DisplayName)
			assert.Equal(t, []string{PlayerHeadLore}, got.Lore)
			assert.Nil(t, tt.item.SkullOwner, "the drawn item is not mutated")
		})
	}

	assert.Nil(t, ApplyPlayerHead(nil, domain.DefaultPlayerHeadCategory, domain.DefaultPlayerHeadCategory, player))
}

func TestApplyBindingCurse(t *testing.T) {
	owner := domain.Claimant{ID: "uuid-a", Name: "Alice"}

	cursed := domain.NewItem("DIAMOND_SWORD", 1)
	cursed.BindingCurse = true
	cursed.Lore = []string{"sharp"}

	bound := ApplyBindingCurse(cursed, owner)
	require.NotNil(t, bound.Owner)
	assert.Equal(t, owner, *bound.Owner)
	assert.Equal(t, []string{"所有者: Alice", "sharp"}, bound.Lore)
	assert.Equal(t, []string{"sharp"}, cursed.Lore, "the input keeps its lore")

	plain := domain.NewItem(domain.MaterialCod, 1)
	assert.Same(t, plain, ApplyBindingCurse(plain, owner))
	assert.Nil(t, plain.Owner)
}
