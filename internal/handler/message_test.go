package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type fakeMessageService struct {
	messages []model.Message
}

func (s *fakeMessageService) Send(from, to, content string) (*model.Message, error) {
	msg := model.Message{FromUsername: from, ToUsername: to, Content: content}
	s.messages = append(s.messages, msg)
	return &msg, nil
}

func (s *fakeMessageService) Conversation(userA, userB string) ([]model.Message, error) {
	var out []model.Message
	for _, m := range s.messages {
		if (m.FromUsername == userA && m.ToUsername == userB) ||
			(m.FromUsername == userB && m.ToUsername == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ service.MessageService = (*fakeMessageService)(nil)

func TestConversationEndpoint(t *testing.T) {
	svc := &fakeMessageService{}
	svc.Send("alice", "bob", "hello")
	svc.Send("bob", "alice", "hey")
	svc.Send("alice", "carol", "psst")

	router := mux.NewRouter()
	NewMessageHandler(svc).RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/api/messages/alice/bob", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var messages []model.Message
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
	for _, m := range messages {
		assert.NotEqual(t, "carol", m.ToUsername)
	}
}
