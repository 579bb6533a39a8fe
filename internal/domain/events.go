package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "fishing.caught")
const (
	// EventTypeFishingCaught is published once per resolved attempt (twice for double fishing)
	EventTypeFishingCaught = "fishing.caught"

	// EventTypeUniqueClaimed is published when a unique item is claimed for the first time in a world
	EventTypeUniqueClaimed = "unique.claimed"

	// EventTypeUniqueCollision is published when a drawn unique item was already claimed
	EventTypeUniqueCollision = "unique.collision"

	// EventTypeConfigReloaded is published after the fishing configuration is swapped
	EventTypeConfigReloaded = "config.reloaded"
)
