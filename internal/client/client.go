// Package client is a Go client for the chat server: username login, the
// websocket message stream, and conversation views over it. It mirrors what
// the web frontend does, with the logged-in identity held in an explicit
// Session instead of global state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/ws"

	"github.com/gorilla/websocket"
)

type ChatClient struct {
	baseURL string
	httpc   *http.Client

	mu       sync.RWMutex
	session  *Session
	conn     *websocket.Conn
	messages []ws.OutEvent
}

func New(baseURL string) *ChatClient {
	return &ChatClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Login creates or fetches the user, resolves the premium flag and opens the
// websocket. A premium lookup failure is treated as not premium.
func (c *ChatClient) Login(ctx context.Context, username string) (*model.User, error) {
	body, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("login failed: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	premium, err := c.premiumStatus(ctx, user.Username)
	if err != nil {
		premium = false
	}

	conn, err := c.dial(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// A re-login without Logout drops the previous socket, its listen
	// goroutine exits on the read error.
	if c.conn != nil {
		c.conn.Close()
	}
	c.session = &Session{Username: user.Username, Premium: premium}
	c.conn = conn
	c.messages = nil
	c.mu.Unlock()

	go c.listen(conn)

	return &user, nil
}

// Logout tears the session down: close the socket, forget the identity and
// the accumulated message list.
func (c *ChatClient) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.session = nil
	c.messages = nil
}

// Session returns a copy of the current session, or nil when logged out.
func (c *ChatClient) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// SendMessage emits a sendMessage event. Sticker gating happens here, on the
// sending side: the server relays content as-is.
func (c *ChatClient) SendMessage(to, content string) error {
	c.mu.RLock()
	session, conn := c.session, c.conn
	c.mu.RUnlock()

	if session == nil || conn == nil {
		return fmt.Errorf("not logged in")
	}
	if !session.CanSend(content) {
		return ErrPremiumRequired
	}

	return conn.WriteJSON(ws.InEvent{
		Type: ws.EventTypeSendMessage,
		To:   to,
		Msg:  content,
	})
}

// Messages returns every event received this session, arrival order.
func (c *ChatClient) Messages() []ws.OutEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ws.OutEvent, len(c.messages))
	copy(out, c.messages)
	return out
}

// Conversation returns the messages of this session visible in the thread
// with other: from us to them or from them to us.
func (c *ChatClient) Conversation(other string) []ws.OutEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return nil
	}
	return FilterConversation(c.messages, c.session.Username, other)
}

// Users fetches all users, excluding ourselves, filtered by the search query.
func (c *ChatClient) Users(ctx context.Context, query string) ([]model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list users: status %d", resp.StatusCode)
	}

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}

	self := ""
	if s := c.Session(); s != nil {
		self = s.Username
	}
	return FilterUsers(users, self, query), nil
}

// PollUsers emits the user list every interval until ctx is done. The
// frontend refreshes its sidebar the same way.
func (c *ChatClient) PollUsers(ctx context.Context, interval time.Duration) <-chan []model.User {
	out := make(chan []model.User)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				users, err := c.Users(ctx, "")
				if err != nil {
					continue
				}
				select {
				case out <- users:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (c *ChatClient) premiumStatus(ctx context.Context, username string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/users/"+username+"/premium", nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("premium status: status %d", resp.StatusCode)
	}

	var out struct {
		Premium bool `json:"premium"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Premium, nil
}

func (c *ChatClient) dial(ctx context.Context, username string) (*websocket.Conn, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws?username=" + username
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial chat socket: %w", err)
	}
	return conn, nil
}

func (c *ChatClient) listen(conn *websocket.Conn) {
	for {
		var ev ws.OutEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		if ev.Type != ws.EventTypeNewMessage {
			continue
		}

		c.mu.Lock()
		// Only append while this conn is still the session's conn, a logout
		// may have raced the read.
		if c.conn == conn {
			c.messages = append(c.messages, ev)
		}
		c.mu.Unlock()
	}
}

// FilterConversation keeps the messages belonging to the (self, other) pair,
// in both directions, preserving arrival order.
func FilterConversation(msgs []ws.OutEvent, self, other string) []ws.OutEvent {
	var out []ws.OutEvent
	for _, m := range msgs {
		if (m.From == self && m.To == other) || (m.From == other && m.To == self) {
			out = append(out, m)
		}
	}
	return out
}

// FilterUsers drops self and applies a case-insensitive username search.
func FilterUsers(users []model.User, self, query string) []model.User {
	query = strings.ToLower(query)
	var out []model.User
	for _, u := range users {
		if u.Username == self {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Username), query) {
			continue
		}
		out = append(out, u)
	}
	return out
}
