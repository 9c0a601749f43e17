// Package payment wraps the external checkout provider. The order object it
// returns is opaque to the rest of the application and is handed to the
// client as-is.
package payment

import (
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the provider's order descriptor, passed through untouched.
type Order map[string]interface{}

type Provider interface {
	CreateOrder(amount int64, currency string) (Order, error)
}

type RazorpayProvider struct {
	client *razorpay.Client
}

func NewRazorpayProvider(keyID, secret string) *RazorpayProvider {
	return &RazorpayProvider{client: razorpay.NewClient(keyID, secret)}
}

func (p *RazorpayProvider) CreateOrder(amount int64, currency string) (Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  "rcpt_" + uuid.NewString(),
	}

	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	return Order(body), nil
}

// MockProvider returns canned orders for tests and local runs without keys.
type MockProvider struct {
	Err error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) CreateOrder(amount int64, currency string) (Order, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return Order{
		"id":       "order_" + uuid.NewString(),
		"amount":   amount,
		"currency": currency,
		"status":   "created",
	}, nil
}
