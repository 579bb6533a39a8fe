package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every fishing event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.FishingCaught:
		err = recordCatch(evt.Payload)
	case event.UniqueClaimed:
		var p domain.UniqueClaimedPayload
		if p, err = event.DecodePayload[domain.UniqueClaimedPayload](evt.Payload); err == nil {
			UniqueClaims.WithLabelValues(p.World).Inc()
			ClaimedUniques.WithLabelValues(p.World).Inc()
		}
	case event.UniqueCollision:
		var p domain.UniqueCollisionPayload
		if p, err = event.DecodePayload[domain.UniqueCollisionPayload](evt.Payload); err == nil {
			UniqueCollisions.WithLabelValues(p.World).Inc()
		}
	case event.ConfigReloaded:
		var p domain.ConfigReloadedPayload
		if p, err = event.DecodePayload[domain.ConfigReloadedPayload](evt.Payload); err == nil {
			ConfigReloads.Inc()
			KnownUniques.Set(float64(p.KnownUniques))
		}
	}

	if err != nil {
		// a payload we cannot read is not worth failing the publish over
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordCatch(payload interface{}) error {
	p, err := event.DecodePayload[domain.FishingCaughtPayload](payload)
	if err != nil {
		return err
	}
	Catches.WithLabelValues(p.Category, strconv.FormatBool(p.Bonus), strconv.FormatBool(p.Forced)).Inc()
	TotalLuck.Observe(p.TotalLuck)
	if p.TimingTier != "" {
		TimingHits.WithLabelValues(p.TimingTier).Inc()
	}
	if p.Rerolls > 0 {
		Rerolls.Add(float64(p.Rerolls))
	}
	if p.Fallback {
		Fallbacks.Inc()
	}
	return nil
}

// SetClaimedUniques seeds the per-world claimed gauge from the unique store
func SetClaimedUniques(stats []domain.WorldUniqueStats) {
	for _, s := range stats {
		ClaimedUniques.WithLabelValues(s.World).Set(float64(s.ClaimedCount))
	}
}
