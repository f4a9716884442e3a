// Package feed streams session snapshots and events to external renderers
// over WebSocket and accepts their input.
package feed

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/game"
)

// Controller is the part of a session the feed drives.
type Controller interface {
	Rotate(m neoncube.Move) (bool, error)
	Hint() (int, error)
	AcceptUpgrade() (game.UpgradeKind, error)
	Prestige() error
	Size() int
	Snapshot() game.Snapshot
}

// Message is one frame sent to a renderer.
type Message struct {
	Type     string         `json:"type"` // "snapshot", "event" or "error"
	Event    *game.Event    `json:"event,omitempty"`
	Snapshot *game.Snapshot `json:"snapshot,omitempty"`
	Error    string         `json:"error,omitempty"`
}

type unicast struct {
	client  *Client
	payload []byte
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	ctrl       Controller
	clients    map[*Client]bool
	broadcast  chan []byte
	direct     chan unicast
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns
	stop       sync.Once
	mu         sync.Mutex
	logger     logrus.FieldLogger
}

// NewHub creates a hub serving ctrl.
func NewHub(ctrl Controller, logger logrus.FieldLogger) *Hub {
	if logger == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		logger = quiet
	}
	return &Hub{
		ctrl:       ctrl,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		direct:     make(chan unicast, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("feed hub shutting down")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.WithField("remote", client.remote).Info("renderer connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.WithField("remote", client.remote).Info("renderer disconnected")
			}
			h.mu.Unlock()
		case u := <-h.direct:
			h.mu.Lock()
			if h.clients[u.client] {
				h.deliver(u.client, u.payload)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				h.deliver(client, message)
			}
			h.mu.Unlock()
		}
	}
}

// attach registers client unless the hub has stopped.
func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// detach unregisters client; after shutdown Run has already closed it.
func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// deliver drops clients that cannot keep up. Caller holds h.mu.
func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		close(client.send)
		delete(h.clients, client)
		h.logger.WithField("remote", client.remote).Warn("dropping slow renderer")
	}
}

// Clients returns the number of connected renderers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) encode(msg Message) []byte {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.WithError(err).Error("failed to encode feed message")
		return nil
	}
	return payload
}

// Broadcast queues msg for every client. A full queue drops the message.
func (h *Hub) Broadcast(msg Message) {
	payload := h.encode(msg)
	if payload == nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.WithField("type", msg.Type).Warn("feed queue full, dropping message")
	}
}

func (h *Hub) send(client *Client, msg Message) {
	payload := h.encode(msg)
	if payload == nil {
		return
	}
	select {
	case h.direct <- unicast{client: client, payload: payload}:
	default:
		h.logger.WithField("type", msg.Type).Warn("feed queue full, dropping reply")
	}
}

// Handle forwards session events, followed by a fresh snapshot when the
// cube changed. Pass it to Session.Subscribe.
func (h *Hub) Handle(e game.Event) {
	h.Broadcast(Message{Type: "event", Event: &e})

	switch e.Type {
	case game.EventMoveApplied, game.EventReset, game.EventThemeChanged, game.EventHintShown:
		snap := h.ctrl.Snapshot()
		h.Broadcast(Message{Type: "snapshot", Snapshot: &snap})
	}
}
