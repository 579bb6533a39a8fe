package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Fishing event types
const (
	FishingCaught   Type = domain.EventTypeFishingCaught
	UniqueClaimed   Type = domain.EventTypeUniqueClaimed
	UniqueCollision Type = domain.EventTypeUniqueCollision
	ConfigReloaded  Type = domain.EventTypeConfigReloaded
)

// AllTypes lists every type the fishing core publishes
var AllTypes = []Type{FishingCaught, UniqueClaimed, UniqueCollision, ConfigReloaded}

// Type-safe event constructors

// NewFishingCaughtEvent creates the event published for every resolved attempt
func NewFishingCaughtEvent(playerName string, r domain.FishingAttemptResult) Event {
	payload := domain.FishingCaughtPayload{
		AttemptID:  r.AttemptID,
		PlayerID:   r.PlayerID,
		PlayerName: playerName,
		World:      r.World,
		Category:   r.Category,
		Item:       r.Item.Label(),
		TotalLuck:  r.TotalLuck,
		Rerolls:    r.Rerolls,
		Fallback:   r.Fallback,
		Forced:     r.Forced,
		Bonus:      r.Bonus,
		Timestamp:  time.Now().Unix(),
	}
	if hit, ok := r.Timing.(domain.TimingHit); ok {
		payload.TimingTier = hit.Tier.Name
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     FishingCaught,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyAttemptID: r.AttemptID},
	}
}

// NewUniqueClaimedEvent creates the event published when a unique item gets its first finder
func NewUniqueClaimedEvent(rec domain.UniqueItemRecord, itemName, category string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UniqueClaimed,
		Payload: domain.UniqueClaimedPayload{
			World:        rec.World,
			UniqueID:     rec.UniqueID,
			ItemName:     itemName,
			Category:     category,
			ClaimantID:   rec.CaughtBy,
			ClaimantName: rec.CaughtByName,
			Timestamp:    rec.CaughtAt.Unix(),
		},
	}
}

// NewUniqueCollisionEvent creates the event published when a drawn unique item was already claimed
func NewUniqueCollisionEvent(world, uniqueID, playerID, originalOwner string, attempt int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UniqueCollision,
		Payload: domain.UniqueCollisionPayload{
			World:         world,
			UniqueID:      uniqueID,
			PlayerID:      playerID,
			OriginalOwner: originalOwner,
			Attempt:       attempt,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewConfigReloadedEvent creates the event published after a successful reload
func NewConfigReloadedEvent(path string, categories, lootTables, knownUniques int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ConfigReloaded,
		Payload: domain.ConfigReloadedPayload{
			Path:          path,
			CategoryCount: categories,
			LootTables:    lootTables,
			KnownUniques:  knownUniques,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
