package repository

import (
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/model"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *model.Message) error
	GetConversation(userA, userB string) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

// GetConversation returns both directions of the pair, oldest first.
func (r *messageRepository) GetConversation(userA, userB string) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.
		Where("(from_username = ? AND to_username = ?) OR (from_username = ? AND to_username = ?)",
			userA, userB, userB, userA).
		Order("sent_at").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
