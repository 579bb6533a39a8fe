package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one message on the live feed. World is empty for events that are not tied to a world.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	World     string `json:"world,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Filter narrows a stream. The zero value receives every event.
type Filter struct {
	Types []string
	World string
}

// Client is one open stream
type Client struct {
	ID           string
	EventChannel chan Event

	types   map[string]struct{}
	world   string
	dropped atomic.Int64
}

func newClient(f Filter) *Client {
	c := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
		world:        f.World,
	}
	if len(f.Types) > 0 {
		c.types = make(map[string]struct{}, len(f.Types))
		for _, t := range f.Types {
			c.types[t] = struct{}{}
		}
	}
	return c
}

// Wants reports whether evt passes the client's filter. World-less events reach world-scoped clients.
func (c *Client) Wants(evt Event) bool {
	if c.types != nil {
		if _, ok := c.types[evt.Type]; !ok {
			return false
		}
	}
	return c.world == "" || evt.World == "" || evt.World == c.world
}

// Dropped is the number of events skipped because the client was not reading fast enough
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans events out to connected clients from a single loop goroutine
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	broadcast  chan Event
	register   chan *Client
	unregister chan string

	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub. Call Start before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) loop() {
	defer h.wg.Done()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			h.mu.Unlock()

		case id := <-h.unregister:
			h.remove(id)

		case evt := <-h.broadcast:
			h.fanOut(evt)

		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.EventChannel)
		delete(h.clients, id)
	}
}

func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.Wants(evt) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
		}
	}
}

// Register opens a stream for f. Returns nil once the hub is stopped.
func (h *Hub) Register(f Filter) *Client {
	c := newClient(f)
	select {
	case h.register <- c:
		return c
	case <-h.shutdown:
		return nil
	}
}

// Unregister closes the client's stream
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event without blocking. A full queue drops it and returns false.
func (h *Hub) Broadcast(eventType, world string, payload any) bool {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		World:     world,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
		return true
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType, "world", world)
		return false
	}
}

// ClientCount returns the number of open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders one event in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data), nil
}
