package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(FishingCaught, func(ctx context.Context, event Event) error {
		if event.Type != FishingCaught {
			t.Errorf("Expected event type %s, got %s", FishingCaught, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: FishingCaught, Payload: "payload"})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(UniqueClaimed, handler)
	bus.Subscribe(UniqueClaimed, handler)

	if err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: UniqueClaimed}); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ConfigReloaded, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	if err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ConfigReloaded}); err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	if err := NewMemoryBus().Publish(context.Background(), Event{Type: UniqueCollision}); err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestNewFishingCaughtEvent(t *testing.T) {
	result := domain.FishingAttemptResult{
		AttemptID: "a1",
		PlayerID:  "uuid-a",
		World:     "world",
		Category:  "rare",
		Item:      &domain.Item{Material: "NAUTILUS_SHELL", Amount: 1},
		Timing:    domain.TimingHit{Tier: domain.TimingTier{Name: "just"}, Bonus: 3},
		TotalLuck: 4.5,
	}

	evt := NewFishingCaughtEvent("Alice", result)
	if evt.Type != FishingCaught {
		t.Fatalf("Expected %s, got %s", FishingCaught, evt.Type)
	}
	payload, err := DecodePayload[domain.FishingCaughtPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.TimingTier != "just" || payload.Item != "NAUTILUS_SHELL" || payload.PlayerName != "Alice" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
	if evt.GetMetadataValue(MetadataKeyAttemptID) != "a1" {
		t.Errorf("Expected attempt id metadata, got %v", evt.Metadata)
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"world": "world", "unique_id": "X", "claimant_name": "Alice"}

	payload, err := DecodePayload[domain.UniqueClaimedPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.UniqueID != "X" || payload.ClaimantName != "Alice" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestNewUniqueClaimedEvent(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	evt := NewUniqueClaimedEvent(domain.UniqueItemRecord{
		World: "world", UniqueID: "X", CaughtBy: "uuid-a", CaughtByName: "Alice", CaughtAt: at,
	}, "Sea King", "legendary")

	payload := evt.Payload.(domain.UniqueClaimedPayload)
	if payload.Timestamp != at.Unix() || payload.Category != "legendary" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "first", attempt: 1, want: 2 * time.Second},
		{name: "third", attempt: 3, want: 8 * time.Second},
		{name: "zero clamps to first", attempt: 0, want: 2 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateRetryDelay(RetryInitialDelay, tt.attempt); got != tt.want {
				t.Errorf("CalculateRetryDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
			}
		})
	}
}
