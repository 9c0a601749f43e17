package service

import (
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/payment"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
)

// Premium costs ₹29 once, expressed in paise for the provider.
const (
	premiumAmountPaise = 2900
	premiumCurrency    = "INR"
)

type paymentService struct {
	provider payment.Provider
	userRepo repository.UserRepository
}

func NewPaymentService(provider payment.Provider, userRepo repository.UserRepository) PaymentService {
	return &paymentService{provider: provider, userRepo: userRepo}
}

func (s *paymentService) CreateOrder() (payment.Order, error) {
	return s.provider.CreateOrder(premiumAmountPaise, premiumCurrency)
}

// ConfirmSuccess flips the premium flag on the checkout callback. The flag
// never reverts: there is no downgrade operation. The provider callback is
// trusted without signature verification, matching the test-mode checkout
// flow this backs.
func (s *paymentService) ConfirmSuccess(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		return err
	}
	return s.userRepo.SetPremium(username, true)
}
