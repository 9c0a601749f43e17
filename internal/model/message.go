package model

import "time"

// Sticker glyphs. Crown is reserved for premium users and is gated on the
// client, the server relays content as-is.
const (
	StickerFire  = "🔥"
	StickerCrown = "👑"
)

// Message is addressed by username pair. Sender and recipient are not
// required to have user rows.
type Message struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FromUsername string    `gorm:"column:from_username;not null;index" json:"fromUsername"`
	ToUsername   string    `gorm:"column:to_username;not null;index" json:"toUsername"`
	Content      string    `gorm:"not null" json:"content"`
	SentAt       time.Time `gorm:"column:sent_at;not null;autoCreateTime" json:"sentAt"`
}

// IsSticker reports whether the content is one of the reserved glyphs,
// rendered without a chat bubble.
func (m *Message) IsSticker() bool {
	return m.Content == StickerFire || m.Content == StickerCrown
}
