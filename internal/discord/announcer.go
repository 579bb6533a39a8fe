// Package discord posts unique-item announcements to a Discord channel webhook.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// WebhookExecutor is the part of *discordgo.Session the announcer uses
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer turns unique.claimed events into webhook embeds
type Announcer struct {
	session   WebhookExecutor
	webhookID string
	token     string
	pool      *worker.Pool
}

// NewAnnouncer creates an announcer. With a nil pool messages are sent inline.
func NewAnnouncer(session WebhookExecutor, webhookID, token string, pool *worker.Pool) *Announcer {
	return &Announcer{
		session:   session,
		webhookID: webhookID,
		token:     token,
		pool:      pool,
	}
}

// NewWebhookSession creates a token-less session; webhook calls authenticate through the webhook token
func NewWebhookSession() (*discordgo.Session, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Client.Timeout = RequestTimeout
	return s, nil
}

// Register subscribes the announcer to the bus
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.UniqueClaimed, a.HandleEvent)
	slog.Info(LogMsgRegistered, "event_type", event.UniqueClaimed)
}

// HandleEvent builds the embed for a claim and sends it
func (a *Announcer) HandleEvent(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.UniqueClaimedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	params := &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{ClaimEmbed(p)},
	}

	if a.pool == nil {
		return a.send(ctx, params)
	}
	if !a.pool.TryEnqueue(worker.JobFunc(func(ctx context.Context) error {
		return a.send(ctx, params)
	})) {
		slog.Warn(LogMsgQueueFull, "unique_id", p.UniqueID)
	}
	return nil
}

func (a *Announcer) send(_ context.Context, params *discordgo.WebhookParams) error {
	if _, err := a.session.WebhookExecute(a.webhookID, a.token, false, params); err != nil {
		slog.Warn(LogMsgSendFailed, "error", err)
		return fmt.Errorf("failed to execute webhook: %w", err)
	}
	return nil
}

// ClaimEmbed renders the announcement for a first catch
func ClaimEmbed(p domain.UniqueClaimedPayload) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       EmbedTitle,
		Description: fmt.Sprintf(EmbedDescriptionFmt, p.ClaimantName, p.ItemName),
		Color:       ColorUnique,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldItem, Value: p.ItemName, Inline: true},
			{Name: FieldCategory, Value: categoryLabel(p.Category), Inline: true},
			{Name: FieldWorld, Value: p.World, Inline: true},
			{Name: FieldFinder, Value: p.ClaimantName, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: p.UniqueID},
	}
	if p.Timestamp > 0 {
		embed.Timestamp = time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339)
	}
	return embed
}

// categoryLabel turns "deep_sea" into "Deep Sea"
func categoryLabel(category string) string {
	if category == "" {
		return "-"
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(category, "_", " "))
}
