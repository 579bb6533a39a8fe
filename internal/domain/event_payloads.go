package domain

// FishingCaughtPayload is the event payload for fishing.caught events
type FishingCaughtPayload struct {
	AttemptID  string  `json:"attempt_id"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	World      string  `json:"world"`
	Category   string  `json:"category"`
	Item       string  `json:"item"`
	TimingTier string  `json:"timing_tier,omitempty"`
	TotalLuck  float64 `json:"total_luck"`
	Rerolls    int     `json:"rerolls"`
	Fallback   bool    `json:"fallback"`
	Forced     bool    `json:"forced"`
	Bonus      bool    `json:"bonus"`
	Timestamp  int64   `json:"timestamp"`
}

// UniqueClaimedPayload is the event payload for unique.claimed events
type UniqueClaimedPayload struct {
	World        string `json:"world"`
	UniqueID     string `json:"unique_id"`
	ItemName     string `json:"item_name"`
	Category     string `json:"category"`
	ClaimantID   string `json:"claimant_id"`
	ClaimantName string `json:"claimant_name"`
	Timestamp    int64  `json:"timestamp"`
}

// UniqueCollisionPayload is the event payload for unique.collision events
type UniqueCollisionPayload struct {
	World         string `json:"world"`
	UniqueID      string `json:"unique_id"`
	PlayerID      string `json:"player_id"`
	OriginalOwner string `json:"original_owner"`
	Attempt       int    `json:"attempt"`
	Timestamp     int64  `json:"timestamp"`
}

// ConfigReloadedPayload is the event payload for config.reloaded events
type ConfigReloadedPayload struct {
	Path          string `json:"path"`
	CategoryCount int    `json:"category_count"`
	LootTables    int    `json:"loot_tables"`
	KnownUniques  int    `json:"known_uniques"`
	Timestamp     int64  `json:"timestamp"`
}
