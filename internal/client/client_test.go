package client

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/handler"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/ws"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	next  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	user.ID = r.next
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindAll() ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) SetPremium(username string, premium bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsPremium = premium
	return nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []model.Message
}

func (r *memMessageRepo) Create(message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, *message)
	return nil
}

func (r *memMessageRepo) GetConversation(userA, userB string) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Message
	for _, m := range r.messages {
		if (m.FromUsername == userA && m.ToUsername == userB) ||
			(m.FromUsername == userB && m.ToUsername == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func startChatServer(t *testing.T) (*httptest.Server, *ws.Hub) {
	t.Helper()

	hub := ws.NewHub(nil)
	t.Cleanup(hub.Shutdown)

	userRepo := newMemUserRepo()
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(&memMessageRepo{}, hub)

	router := mux.NewRouter()
	handler.NewUserHandler(userService, noPresence{}).RegisterRoutes(router)
	handler.NewMessageHandler(messageService).RegisterRoutes(router)
	handler.NewWSHandler(hub, messageService, ws.NewUpgrader("development")).RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, hub
}

type noPresence struct{}

func (noPresence) List(ctx context.Context) ([]string, error) { return nil, nil }

func TestChatRoundTrip(t *testing.T) {
	srv, _ := startChatServer(t)
	ctx := context.Background()

	alice := New(srv.URL)
	bob := New(srv.URL)
	carol := New(srv.URL)

	_, err := alice.Login(ctx, "alice")
	require.NoError(t, err)
	defer alice.Logout()
	_, err = bob.Login(ctx, "bob")
	require.NoError(t, err)
	defer bob.Logout()
	_, err = carol.Login(ctx, "carol")
	require.NoError(t, err)
	defer carol.Logout()

	require.NoError(t, alice.SendMessage("bob", "hello"))

	// Both participants see the message in their alice/bob thread.
	assert.Eventually(t, func() bool {
		return len(alice.Conversation("bob")) == 1 && len(bob.Conversation("alice")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	got := bob.Conversation("alice")[0]
	assert.Equal(t, "alice", got.From)
	assert.Equal(t, "bob", got.To)
	assert.Equal(t, "hello", got.Msg)

	// Carol's threads with either of them stay empty.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, carol.Conversation("alice"))
	assert.Empty(t, carol.Conversation("bob"))
	assert.Empty(t, carol.Messages())
}

func TestLoginTwiceKeepsSameID(t *testing.T) {
	srv, _ := startChatServer(t)
	ctx := context.Background()

	c1 := New(srv.URL)
	u1, err := c1.Login(ctx, "alice")
	require.NoError(t, err)
	c1.Logout()

	c2 := New(srv.URL)
	u2, err := c2.Login(ctx, "alice")
	require.NoError(t, err)
	c2.Logout()

	assert.Equal(t, u1.ID, u2.ID)
}

func TestReloginDropsPreviousConnection(t *testing.T) {
	srv, hub := startChatServer(t)
	ctx := context.Background()

	c := New(srv.URL)
	_, err := c.Login(ctx, "alice")
	require.NoError(t, err)

	// Second login on the same client without Logout: the alice socket is
	// closed, the server unregisters it, and only bob stays online.
	_, err = c.Login(ctx, "bob")
	require.NoError(t, err)
	defer c.Logout()

	require.Equal(t, "bob", c.Session().Username)

	assert.Eventually(t, func() bool {
		online := hub.Online()
		return len(online) == 1 && online[0] == "bob"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, c.SendMessage("alice", "hello"))
	assert.Eventually(t, func() bool {
		return len(c.Conversation("alice")) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLoginRejectsBlankUsername(t *testing.T) {
	srv, _ := startChatServer(t)

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "  ")
	assert.Error(t, err)
	assert.Nil(t, c.Session())
}

func TestLogoutTearsDownSession(t *testing.T) {
	srv, _ := startChatServer(t)

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, c.Session())

	c.Logout()

	assert.Nil(t, c.Session())
	assert.Empty(t, c.Messages())
	assert.Error(t, c.SendMessage("bob", "hello"))
}

func TestCrownStickerGatedBySession(t *testing.T) {
	srv, _ := startChatServer(t)
	ctx := context.Background()

	c := New(srv.URL)
	_, err := c.Login(ctx, "alice")
	require.NoError(t, err)
	defer c.Logout()

	// Fire always passes, crown needs premium.
	assert.NoError(t, c.SendMessage("bob", model.StickerFire))
	assert.ErrorIs(t, c.SendMessage("bob", model.StickerCrown), ErrPremiumRequired)
}

func TestUsersExcludesSelfAndSearches(t *testing.T) {
	srv, _ := startChatServer(t)
	ctx := context.Background()

	alice := New(srv.URL)
	_, err := alice.Login(ctx, "alice")
	require.NoError(t, err)
	defer alice.Logout()

	for _, name := range []string{"bob", "bobby", "carol"} {
		other := New(srv.URL)
		_, err := other.Login(ctx, name)
		require.NoError(t, err)
		other.Logout()
	}

	all, err := alice.Users(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, u := range all {
		assert.NotEqual(t, "alice", u.Username)
	}

	bobs, err := alice.Users(ctx, "BOB")
	require.NoError(t, err)
	assert.Len(t, bobs, 2)
}

func TestFilterConversation(t *testing.T) {
	msgs := []ws.OutEvent{
		{From: "alice", To: "bob", Msg: "1"},
		{From: "bob", To: "alice", Msg: "2"},
		{From: "alice", To: "carol", Msg: "3"},
		{From: "carol", To: "bob", Msg: "4"},
	}

	got := FilterConversation(msgs, "alice", "bob")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Msg)
	assert.Equal(t, "2", got[1].Msg)

	assert.Empty(t, FilterConversation(msgs, "dave", "erin"))
}

func TestSessionCanSend(t *testing.T) {
	free := &Session{Username: "alice"}
	premium := &Session{Username: "bob", Premium: true}

	assert.True(t, free.CanSend("hello"))
	assert.True(t, free.CanSend(model.StickerFire))
	assert.False(t, free.CanSend(model.StickerCrown))

	assert.True(t, premium.CanSend(model.StickerCrown))
}
