package repositories

import (
	"portalchat/internal/models"
	"portalchat/internal/utils"

	"gorm.io/gorm"
)

// MessageRepository is the append-only message log. Records are
// created once and never updated or deleted; the log stays the source
// of truth for everything the conversation index summarizes.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	if err := mr.db.Create(message).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return message, nil
}

// GetThread returns the messages exchanged between the two
// participants in either direction, oldest first. Direction carries no
// meaning for the thread view, only the timestamp order does.
func (mr *MessageRepository) GetThread(idA, idB string, page, size int) (*models.MessageListResponse, []error) {
	var errors []error
	var messages []models.Message
	var total int64

	directionless := "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"

	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where(directionless, idA, idB, idB, idA).
			Order("created_at ASC, id ASC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Where(directionless, idA, idB, idB, idA).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	return &models.MessageListResponse{
		Messages: messages,
		Page:     page,
		Size:     size,
		Total:    total,
	}, nil
}

func (mr *MessageRepository) CountMessages() (int64, error) {
	var count int64
	if err := mr.db.Model(&models.Message{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
