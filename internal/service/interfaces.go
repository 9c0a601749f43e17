package service

import (
	"context"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/payment"
)

type UserService interface {
	Login(username string) (*model.User, error)
	ListUsers() ([]model.User, error)
	PremiumStatus(username string) (bool, error)
}

type MessageService interface {
	Send(from, to, content string) (*model.Message, error)
	Conversation(userA, userB string) ([]model.Message, error)
}

type PaymentService interface {
	CreateOrder() (payment.Order, error)
	ConfirmSuccess(username string) error
}

// Deliverer pushes a persisted message to its participants' live
// connections. Implemented by the ws hub.
type Deliverer interface {
	Deliver(msg *model.Message)
}

// Presence exposes the online-user set to handlers.
type Presence interface {
	List(ctx context.Context) ([]string, error)
}
