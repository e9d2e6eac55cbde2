// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Mukesh-ghildiyal/real-time-pollling/models"
)

// Client is one websocket connection's outbound queue.
// The hub closes Send when the client is dropped or unregistered.
type Client struct {
	ID   string
	Send chan []byte
}

func NewClient(id string, buffer int) *Client {
	if buffer < 1 {
		buffer = 1
	}
	return &Client{ID: id, Send: make(chan []byte, buffer)}
}

// Hub fans notifications out to registered clients. It implements
// session.Broadcaster: delivery never blocks, and a client whose queue is
// full is dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*Client
	dropped int
}

func New() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.clients[c.ID]; ok && old != c {
		close(old.Send)
	}
	h.clients[c.ID] = c
	slog.Debug("client registered", "conn_id", c.ID, "clients", len(h.clients))
}

// Unregister removes c and closes its queue. It reports false when c was
// already gone, for example after being dropped as a slow consumer.
func (h *Hub) Unregister(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cur, ok := h.clients[c.ID]; !ok || cur != c {
		return false
	}
	delete(h.clients, c.ID)
	close(c.Send)
	slog.Debug("client unregistered", "conn_id", c.ID, "clients", len(h.clients))
	return true
}

// Broadcast sends n to every client.
func (h *Hub) Broadcast(n models.Notification) {
	frame, ok := encode(n)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		h.deliver(c, frame)
	}
}

// Send delivers n to one client. Unknown ids are ignored.
func (h *Hub) Send(connID string, n models.Notification) {
	frame, ok := encode(n)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[connID]; ok {
		h.deliver(c, frame)
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped counts clients removed for falling behind.
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// deliver must be called with mu held.
func (h *Hub) deliver(c *Client, frame []byte) {
	select {
	case c.Send <- frame:
	default:
		delete(h.clients, c.ID)
		close(c.Send)
		h.dropped++
		slog.Warn("slow client dropped", "conn_id", c.ID, "queued", len(c.Send))
	}
}

func encode(n models.Notification) ([]byte, bool) {
	frame, err := json.Marshal(models.Wrap(n))
	if err != nil {
		slog.Error("failed to encode notification", "event", n.Event(), "error", err)
		return nil, false
	}
	return frame, true
}
