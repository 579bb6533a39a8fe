package sse

// CatchPayload is the live-feed view of a resolved catch
type CatchPayload struct {
	PlayerName string  `json:"player_name"`
	World      string  `json:"world"`
	Category   string  `json:"category"`
	Item       string  `json:"item"`
	TimingTier string  `json:"timing_tier,omitempty"`
	TotalLuck  float64 `json:"total_luck"`
	Bonus      bool    `json:"bonus,omitempty"`
}

// UniqueClaimedPayload announces a first finder
type UniqueClaimedPayload struct {
	World      string `json:"world"`
	UniqueID   string `json:"unique_id"`
	ItemName   string `json:"item_name"`
	Category   string `json:"category"`
	FinderName string `json:"finder_name"`
}

// UniqueCollisionPayload reports a draw of an already claimed unique item
type UniqueCollisionPayload struct {
	World         string `json:"world"`
	UniqueID      string `json:"unique_id"`
	OriginalOwner string `json:"original_owner"`
	Attempt       int    `json:"attempt"`
}

// ConfigReloadedPayload summarises the configuration now in effect
type ConfigReloadedPayload struct {
	Categories   int `json:"categories"`
	LootTables   int `json:"loot_tables"`
	KnownUniques int `json:"known_uniques"`
}

// ConnectedPayload is sent once when a stream opens
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
	World    string   `json:"world,omitempty"`
}
