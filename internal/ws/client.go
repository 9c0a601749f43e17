package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Relay accepts an incoming chat message. Implemented by the message service.
type Relay interface {
	Send(from, to, content string) (*model.Message, error)
}

// Client is one websocket connection tied to a username for its lifetime.
type Client struct {
	Username string

	hub      *Hub
	conn     *websocket.Conn
	relay    Relay
	send     chan []byte
	mu       sync.RWMutex
	isClosed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, username string, relay Relay) *Client {
	return &Client{
		Username: username,
		hub:      hub,
		conn:     conn,
		relay:    relay,
		send:     make(chan []byte, sendQueueSize),
	}
}

// Start registers the client and runs both pumps.
func (c *Client) Start() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

// SendRaw queues bytes for the write pump, dropping the frame if the client
// cannot keep up. The read lock is held across the send so Close cannot
// shut the channel mid-send.
func (c *Client) SendRaw(data []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isClosed {
		return
	}

	select {
	case c.send <- data:
	default:
		log.Warn().Str("username", c.Username).Msg("ws: send queue full, dropping frame")
	}
}

// SendJSON marshals and queues an event.
func (c *Client) SendJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("ws: marshal event")
		return
	}
	c.SendRaw(data)
}

// Close makes the write pump drain and close the connection. Safe to call
// more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isClosed {
		return
	}

	c.isClosed = true
	close(c.send)
}

// IsClosed reports whether the send channel has been shut.
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isClosed
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("username", c.Username).Msg("ws: read")
			}
			return
		}

		var ev InEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			c.SendJSON(OutEvent{Type: EventTypeError, Msg: "invalid event", Timestamp: time.Now()})
			continue
		}

		c.handleEvent(ev)
	}
}

func (c *Client) handleEvent(ev InEvent) {
	switch ev.Type {
	case EventTypeSendMessage:
		// The sender is always the connection's username, whatever the
		// payload claims.
		if _, err := c.relay.Send(c.Username, ev.To, ev.Msg); err != nil {
			c.SendJSON(OutEvent{Type: EventTypeError, Msg: err.Error(), Timestamp: time.Now()})
		}
	default:
		c.SendJSON(OutEvent{Type: EventTypeError, Msg: "unknown event type", Timestamp: time.Now()})
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
