package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
)

func TestEventMetricsCollector_FishingCaught(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	catches := Catches.WithLabelValues("metrics_test", "false", "false")
	before := testutil.ToFloat64(catches)
	rerollsBefore := testutil.ToFloat64(Rerolls)
	fallbacksBefore := testutil.ToFloat64(Fallbacks)
	tierBefore := testutil.ToFloat64(TimingHits.WithLabelValues("metrics_tier"))

	result := domain.FishingAttemptResult{
		AttemptID: "a1",
		Category:  "metrics_test",
		Item:      domain.NewItem(domain.MaterialCod, 1),
		Timing:    domain.TimingHit{Tier: domain.TimingTier{Name: "metrics_tier"}, ReactionTimeMs: 90},
		TotalLuck: 2.5,
		Rerolls:   2,
		Fallback:  true,
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewFishingCaughtEvent("Alice", result)))

	assert.Equal(t, before+1, testutil.ToFloat64(catches))
	assert.Equal(t, rerollsBefore+2, testutil.ToFloat64(Rerolls))
	assert.Equal(t, fallbacksBefore+1, testutil.ToFloat64(Fallbacks))
	assert.Equal(t, tierBefore+1, testutil.ToFloat64(TimingHits.WithLabelValues("metrics_tier")))
}

func TestEventMetricsCollector_Unique(t *testing.T) {
	c := NewEventMetricsCollector()
	ctx := context.Background()

	claimsBefore := testutil.ToFloat64(UniqueClaims.WithLabelValues("metrics_world"))
	collisionsBefore := testutil.ToFloat64(UniqueCollisions.WithLabelValues("metrics_world"))

	rec := domain.UniqueItemRecord{World: "metrics_world", UniqueID: "sea_king", CaughtBy: "a", CaughtByName: "Alice"}
	require.NoError(t, c.HandleEvent(ctx, event.NewUniqueClaimedEvent(rec, "Sea King", "legendary")))
	require.NoError(t, c.HandleEvent(ctx, event.NewUniqueCollisionEvent("metrics_world", "sea_king", "b", "Alice", 1)))

	assert.Equal(t, claimsBefore+1, testutil.ToFloat64(UniqueClaims.WithLabelValues("metrics_world")))
	assert.Equal(t, collisionsBefore+1, testutil.ToFloat64(UniqueCollisions.WithLabelValues("metrics_world")))
}

func TestEventMetricsCollector_ConfigReloaded(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(ConfigReloads)

	require.NoError(t, c.HandleEvent(context.Background(), event.NewConfigReloadedEvent("configs/fishing.yaml", 6, 6, 3)))

	assert.Equal(t, before+1, testutil.ToFloat64(ConfigReloads))
	assert.Equal(t, 3.0, testutil.ToFloat64(KnownUniques))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.FishingCaught)))

	err := c.HandleEvent(context.Background(), event.Event{Type: event.FishingCaught, Payload: 42})

	assert.NoError(t, err, "undecodable payloads never fail the publisher")
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.FishingCaught))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/unique/{world}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/unique/{world}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unique/world_nether", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
