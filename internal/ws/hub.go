package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/metrics"

	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // 64KB
	sendQueueSize  = 256
)

// Event types on the wire.
const (
	EventTypeSendMessage = "sendMessage"
	EventTypeNewMessage  = "newMessage"
	EventTypeError       = "error"
)

// InEvent is a client frame.
type InEvent struct {
	Type string `json:"type"`
	To   string `json:"to,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// OutEvent is a server frame.
type OutEvent struct {
	Type      string    `json:"type"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Msg       string    `json:"msg,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Presence mirrors connection state into shared storage. May be nil.
type Presence interface {
	Add(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
}

// Hub holds one connection per username. A new connection for a username
// replaces the previous one. Delivery is directed: a message reaches only the
// sender's and recipient's connections.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	shutdown   chan struct{}
	presence   Presence

	messagesSent atomic.Int64
	connections  atomic.Int64
}

func NewHub(presence Presence) *Hub {
	hub := &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client, sendQueueSize),
		unregister: make(chan *Client, sendQueueSize),
		shutdown:   make(chan struct{}),
		presence:   presence,
	}

	go hub.run()

	return hub
}

func (h *Hub) run() {
	for {
		select {
		case <-h.shutdown:
			return
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	if existing, ok := h.clients[client.Username]; ok {
		// Same username reconnected, drop the stale connection.
		existing.Close()
		h.connections.Dec()
		metrics.WsConnections.Dec()
	}
	h.clients[client.Username] = client
	h.mu.Unlock()

	h.connections.Inc()
	metrics.WsConnections.Inc()
	h.presenceAdd(client.Username)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	stored, ok := h.clients[client.Username]
	if ok && stored == client {
		delete(h.clients, client.Username)
	}
	h.mu.Unlock()

	if ok && stored == client {
		client.Close()
		h.connections.Dec()
		metrics.WsConnections.Dec()
		h.presenceRemove(client.Username)
	}
}

// Register queues a client for registration.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.shutdown:
	}
}

// Unregister queues a client for removal.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.shutdown:
	}
}

// Deliver implements service.Deliverer: fan out a persisted message to the
// two participants. Everyone else never sees the frame.
func (h *Hub) Deliver(msg *model.Message) {
	ev := OutEvent{
		Type:      EventTypeNewMessage,
		From:      msg.FromUsername,
		To:        msg.ToUsername,
		Msg:       msg.Content,
		Timestamp: msg.SentAt,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("hub: marshal newMessage event")
		return
	}

	h.SendToUser(msg.FromUsername, data)
	if msg.ToUsername != msg.FromUsername {
		h.SendToUser(msg.ToUsername, data)
	}

	h.messagesSent.Inc()
	metrics.WsMessagesTotal.Inc()
}

// SendToUser pushes raw bytes to a user's connection if one exists.
func (h *Hub) SendToUser(username string, data []byte) bool {
	h.mu.RLock()
	client, ok := h.clients[username]
	h.mu.RUnlock()

	if !ok {
		return false
	}

	client.SendRaw(data)
	return true
}

// Online returns the usernames with a live connection on this instance.
func (h *Hub) Online() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.clients))
	for name := range h.clients {
		names = append(names, name)
	}
	return names
}

// MessagesSent reports the relayed message count since start.
func (h *Hub) MessagesSent() int64 {
	return h.messagesSent.Load()
}

// Shutdown closes every connection and stops the run loop.
func (h *Hub) Shutdown() {
	close(h.shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		client.Close()
	}
	h.clients = make(map[string]*Client)
}

func (h *Hub) presenceAdd(username string) {
	if h.presence == nil {
		return
	}
	if err := h.presence.Add(context.Background(), username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("hub: presence add")
	}
}

func (h *Hub) presenceRemove(username string) {
	if h.presence == nil {
		return
	}
	if err := h.presence.Remove(context.Background(), username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("hub: presence remove")
	}
}
