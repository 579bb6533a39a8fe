package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeCatch is sent for every resolved catch
	EventTypeCatch = "fishing.caught"

	// EventTypeUniqueClaimed is sent when a unique item finds its first finder
	EventTypeUniqueClaimed = "unique.claimed"

	// EventTypeUniqueCollision is sent when someone draws an already claimed unique item
	EventTypeUniqueCollision = "unique.collision"

	// EventTypeConfigReloaded is sent after the fishing configuration is swapped
	EventTypeConfigReloaded = "config.reloaded"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by Handler
const (
	QueryParamTypes = "types"
	QueryParamWorld = "world"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
