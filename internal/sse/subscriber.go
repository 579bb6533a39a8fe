package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.FishingCaught, s.handleCatch)
	s.bus.Subscribe(event.UniqueClaimed, s.handleUniqueClaimed)
	s.bus.Subscribe(event.UniqueCollision, s.handleUniqueCollision)
	s.bus.Subscribe(event.ConfigReloaded, s.handleConfigReloaded)

	slog.Info(LogMsgSubscribed, "types", []string{
		EventTypeCatch,
		EventTypeUniqueClaimed,
		EventTypeUniqueCollision,
		EventTypeConfigReloaded,
	})
}

func (s *Subscriber) handleCatch(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.FishingCaughtPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeCatch, p.World, CatchPayload{
		PlayerName: p.PlayerName,
		World:      p.World,
		Category:   p.Category,
		Item:       p.Item,
		TimingTier: p.TimingTier,
		TotalLuck:  p.TotalLuck,
		Bonus:      p.Bonus,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeCatch, "category", p.Category)
	return nil
}

func (s *Subscriber) handleUniqueClaimed(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.UniqueClaimedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeUniqueClaimed, p.World, UniqueClaimedPayload{
		World:      p.World,
		UniqueID:   p.UniqueID,
		ItemName:   p.ItemName,
		Category:   p.Category,
		FinderName: p.ClaimantName,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeUniqueClaimed, "unique_id", p.UniqueID)
	return nil
}

func (s *Subscriber) handleUniqueCollision(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.UniqueCollisionPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeUniqueCollision, p.World, UniqueCollisionPayload{
		World:         p.World,
		UniqueID:      p.UniqueID,
		OriginalOwner: p.OriginalOwner,
		Attempt:       p.Attempt,
	})
	return nil
}

func (s *Subscriber) handleConfigReloaded(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.ConfigReloadedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeConfigReloaded, "", ConfigReloadedPayload{
		Categories:   p.CategoryCount,
		LootTables:   p.LootTables,
		KnownUniques: p.KnownUniques,
	})
	return nil
}
