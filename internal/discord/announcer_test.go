package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

type mockWebhook struct {
	mu    sync.Mutex
	calls []*discordgo.WebhookParams
	ids   []string
	err   error
	sent  chan struct{}
}

func newMockWebhook() *mockWebhook {
	return &mockWebhook{sent: make(chan struct{}, 10)}
}

func (m *mockWebhook) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	m.calls = append(m.calls, data)
	m.ids = append(m.ids, webhookID+"/"+token)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil, m.err
}

func claimRecord() domain.UniqueItemRecord {
	return domain.UniqueItemRecord{
		World:        "world",
		UniqueID:     "sea_king",
		CaughtBy:     "uuid-a",
		CaughtByName: "Alice",
		CaughtAt:     time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestAnnouncer_SendsClaimEmbed(t *testing.T) {
	hook := newMockWebhook()
	a := NewAnnouncer(hook, "123", "secret", nil)
	bus := event.NewMemoryBus()
	a.Register(bus)

	err := bus.Publish(context.Background(), event.NewUniqueClaimedEvent(claimRecord(), "Sea King", "deep_sea"))
	require.NoError(t, err)

	require.Len(t, hook.calls, 1)
	assert.Equal(t, "123/secret", hook.ids[0])
	params := hook.calls[0]
	assert.Equal(t, WebhookUsername, params.Username)
	require.Len(t, params.Embeds, 1)

	embed := params.Embeds[0]
	assert.Equal(t, EmbedTitle, embed.Title)
	assert.Equal(t, "**Alice** が **Sea King** を初めて釣り上げました", embed.Description)
	assert.Equal(t, "2025-07-14T12:00:00Z", embed.Timestamp)
	assert.Equal(t, "sea_king", embed.Footer.Text)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Deep Sea", embed.Fields[1].Value)
}

func TestAnnouncer_IgnoresOtherEvents(t *testing.T) {
	hook := newMockWebhook()
	a := NewAnnouncer(hook, "123", "secret", nil)
	bus := event.NewMemoryBus()
	a.Register(bus)

	err := bus.Publish(context.Background(), event.NewUniqueCollisionEvent("world", "sea_king", "uuid-b", "Alice", 1))
	require.NoError(t, err)
	assert.Empty(t, hook.calls)
}

func TestAnnouncer_InvalidPayloadIsDropped(t *testing.T) {
	hook := newMockWebhook()
	a := NewAnnouncer(hook, "123", "secret", nil)

	err := a.HandleEvent(context.Background(), event.Event{Type: event.UniqueClaimed, Payload: "not a payload"})
	assert.NoError(t, err)
	assert.Empty(t, hook.calls)
}

func TestAnnouncer_SendFailureIsReturnedInline(t *testing.T) {
	hook := newMockWebhook()
	hook.err = errors.New("rate limited")
	a := NewAnnouncer(hook, "123", "secret", nil)

	err := a.HandleEvent(context.Background(), event.NewUniqueClaimedEvent(claimRecord(), "Sea King", "rare"))
	assert.ErrorContains(t, err, "rate limited")
}

func TestAnnouncer_SendsThroughPool(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	hook := newMockWebhook()
	a := NewAnnouncer(hook, "123", "secret", pool)

	err := a.HandleEvent(context.Background(), event.NewUniqueClaimedEvent(claimRecord(), "Sea King", "rare"))
	require.NoError(t, err)

	select {
	case <-hook.sent:
	case <-time.After(time.Second):
		t.Fatal("announcement was not sent")
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "rare", "Rare"},
		{"underscores", "dolphins_grace", "Dolphins Grace"},
		{"empty", "", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryLabel(tt.in))
		})
	}
}
