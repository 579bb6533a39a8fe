package fishing

import (
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// ApplyPlayerHead turns a PLAYER_HEAD drawn from the head category into the catcher's own head.
// Any other item is returned unchanged.
func ApplyPlayerHead(item *domain.Item, category, headCategory string, player domain.PlayerState) *domain.Item {
	if item == nil || category != headCategory || item.Material != domain.MaterialPlayerHead {
		return item
	}
	head := item.Clone()
	owner := player.Claimant()
	head.SkullOwner = &owner
	head.DisplayName = player.Name + PlayerHeadNameSuffix
	head.Lore = []string{PlayerHeadLore}
	return head
}

// ApplyBindingCurse binds a cursed item to the catcher: owner tags plus an owner lore line
func ApplyBindingCurse(item *domain.Item, owner domain.Claimant) *domain.Item {
	if item == nil || !item.BindingCurse {
		return item
	}
	bound := item.Clone()
	bound.Owner = &owner
	bound.PrependLore(domain.LorePrefixOwner + owner.Name)
	return bound
}
