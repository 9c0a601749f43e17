package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	users   map[string]*model.User
	listErr error
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: make(map[string]*model.User)}
}

func (s *fakeUserService) Login(username string) (*model.User, error) {
	if username == "" {
		return nil, service.ErrEmptyUsername
	}
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	user := &model.User{ID: uint(len(s.users) + 1), Username: username}
	s.users[username] = user
	return user, nil
}

func (s *fakeUserService) ListUsers() ([]model.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserService) PremiumStatus(username string) (bool, error) {
	user, ok := s.users[username]
	if !ok {
		return false, repository.ErrUserNotFound
	}
	return user.IsPremium, nil
}

type fakePresence struct {
	online []string
	err    error
}

func (p *fakePresence) List(ctx context.Context) ([]string, error) {
	return p.online, p.err
}

func newUserRouter(svc service.UserService, presence service.Presence) *mux.Router {
	router := mux.NewRouter()
	NewUserHandler(svc, presence).RegisterRoutes(router)
	return router
}

func postJSON(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLoginEndpoint_CreatesAndReturnsUser(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{})

	rr := postJSON(router, "/api/login", LoginRequest{Username: "alice"})

	assert.Equal(t, http.StatusOK, rr.Code)

	var user model.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsPremium)
}

func TestLoginEndpoint_SameUsernameSameID(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{})

	first := postJSON(router, "/api/login", LoginRequest{Username: "alice"})
	second := postJSON(router, "/api/login", LoginRequest{Username: "alice"})

	var u1, u2 model.User
	json.Unmarshal(first.Body.Bytes(), &u1)
	json.Unmarshal(second.Body.Bytes(), &u2)
	assert.Equal(t, u1.ID, u2.ID)
}

func TestLoginEndpoint_EmptyUsername(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{})

	rr := postJSON(router, "/api/login", LoginRequest{Username: ""})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Username is required")
}

func TestLoginEndpoint_MalformedBody(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{})

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListUsersEndpoint(t *testing.T) {
	svc := newFakeUserService()
	svc.Login("alice")
	svc.Login("bob")
	router := newUserRouter(svc, &fakePresence{})

	req := httptest.NewRequest("GET", "/api/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var users []model.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestPremiumEndpoint(t *testing.T) {
	svc := newFakeUserService()
	svc.Login("alice")
	svc.users["alice"].IsPremium = true
	router := newUserRouter(svc, &fakePresence{})

	req := httptest.NewRequest("GET", "/api/users/alice/premium", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"premium":true}`, rr.Body.String())
}

func TestPremiumEndpoint_UnknownUser(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{})

	req := httptest.NewRequest("GET", "/api/users/ghost/premium", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOnlineEndpoint_PresenceFailureDegrades(t *testing.T) {
	router := newUserRouter(newFakeUserService(), &fakePresence{err: context.DeadlineExceeded})

	req := httptest.NewRequest("GET", "/api/online", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"online":[]}`, rr.Body.String())
}
