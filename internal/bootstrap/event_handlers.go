package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/discord"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/metrics"
	"github.com/osse101/CustomizeFishing_Go/internal/sse"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Pool     *worker.Pool
	Config   *config.Config
}

// RegisterEventHandlers sets up every subscriber of the fishing events:
// the metrics collector, the SSE live feed and, when configured, the Discord announcer.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if !deps.Config.DiscordEnabled() {
		slog.Info(LogMsgDiscordAnnouncerDisabled)
		return nil
	}

	session, err := discord.NewWebhookSession()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateWebhookClient, err)
	}
	discord.NewAnnouncer(session, deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken, deps.Pool).
		Register(deps.EventBus)
	slog.Info(LogMsgDiscordAnnouncerEnabled, "webhook_id", deps.Config.DiscordWebhookID)

	return nil
}
