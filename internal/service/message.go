package service

import (
	"errors"
	"time"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
)

var (
	ErrEmptyMessage      = errors.New("message content is required")
	ErrMissingAddressing = errors.New("sender and recipient are required")
)

type messageService struct {
	messageRepo repository.MessageRepository
	deliverer   Deliverer
}

func NewMessageService(messageRepo repository.MessageRepository, deliverer Deliverer) MessageService {
	return &messageService{messageRepo: messageRepo, deliverer: deliverer}
}

// Send persists the message, then pushes it to the sender's and recipient's
// live connections. The sender gets the echo too, the client renders from the
// echo rather than optimistically.
func (s *messageService) Send(from, to, content string) (*model.Message, error) {
	if from == "" || to == "" {
		return nil, ErrMissingAddressing
	}
	if content == "" {
		return nil, ErrEmptyMessage
	}

	msg := &model.Message{
		FromUsername: from,
		ToUsername:   to,
		Content:      content,
		SentAt:       time.Now(),
	}

	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	if s.deliverer != nil {
		s.deliverer.Deliver(msg)
	}

	return msg, nil
}

func (s *messageService) Conversation(userA, userB string) ([]model.Message, error) {
	if userA == "" || userB == "" {
		return nil, ErrMissingAddressing
	}
	return s.messageRepo.GetConversation(userA, userB)
}
