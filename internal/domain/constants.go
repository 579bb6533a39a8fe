package domain

// Category names with special handling
const (
	// DefaultCategory is returned whenever selection cannot produce a winner
	DefaultCategory = "common"

	// DefaultPlayerHeadCategory is the category whose PLAYER_HEAD drops become the catcher's head
	DefaultPlayerHeadCategory = "dolphins_grace"

	// DefaultPriority applies to categories that do not declare one
	DefaultPriority = 999
)

// Material identifiers used by the core
const (
	MaterialCod        = "COD"
	MaterialPlayerHead = "PLAYER_HEAD"
	MaterialFishingRod = "FISHING_ROD"
	MaterialAir        = "minecraft:air"
)

// Status effect identifiers read from the player snapshot
const (
	EffectLuck          = "LUCK"
	EffectUnluck        = "UNLUCK"
	EffectConduitPower  = "CONDUIT_POWER"
	EffectDolphinsGrace = "DOLPHINS_GRACE"
)

// Lore prefixes written onto items
const (
	LorePrefixFirstFinder = "先駆者: "
	LorePrefixOwner       = "所有者: "
)
