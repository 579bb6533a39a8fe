package discord

import "time"

// RequestTimeout bounds one webhook call
const RequestTimeout = 10 * time.Second

// Embed layout
const (
	WebhookUsername     = "Fishing"
	EmbedTitle          = "ユニークアイテム発見!"
	EmbedDescriptionFmt = "**%s** が **%s** を初めて釣り上げました"
	ColorUnique         = 0xF1C40F

	FieldItem     = "アイテム"
	FieldCategory = "カテゴリ"
	FieldWorld    = "ワールド"
	FieldFinder   = "先駆者"
)

// Log messages
const (
	LogMsgRegistered     = "Discord announcer registered"
	LogMsgInvalidPayload = "Discord announcer received invalid payload"
	LogMsgQueueFull      = "Discord announcement dropped, worker queue full"
	LogMsgSendFailed     = "Discord webhook failed"
)
