package client

import (
	"errors"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"
)

// ErrPremiumRequired rejects the crown sticker for free users before the
// frame ever leaves the client.
var ErrPremiumRequired = errors.New("premium required for the crown sticker")

// Session is the logged-in identity. It is created by Login and torn down by
// Logout, there is no other way to mutate it.
type Session struct {
	Username string
	Premium  bool
}

// CanSend reports whether this session may send the given content. Only the
// crown sticker is gated, plain text and the fire sticker always pass.
func (s *Session) CanSend(content string) bool {
	if content == model.StickerCrown {
		return s != nil && s.Premium
	}
	return true
}
