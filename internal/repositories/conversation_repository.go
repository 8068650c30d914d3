package repositories

import (
	"time"

	"portalchat/internal/errs"
	"portalchat/internal/models"
	"portalchat/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConversationRepository maintains the denormalized conversation
// index: one row per unordered participant pair, keyed by the
// normalized pair key. The unique index on pair_key is what keeps two
// concurrent first sends for the same pair from creating two rows;
// the losing insert lands on ON CONFLICT and becomes an update.
type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db: db,
	}
}

// Upsert records message as the latest activity of the pair {a, b},
// creating the conversation on first contact. snapshot may be nil, in
// which case any previously stored snapshot is left untouched. The
// conflict update only fires for messages at or after the stored
// last_message_at, so two racing sends settle on the newer one no
// matter which statement lands last.
func (cr *ConversationRepository) Upsert(a, b string, message *models.Message, snapshot *models.EmployeeSnapshot) (*models.Conversation, []error) {
	var errors []error

	conversation := models.Conversation{
		ParticipantA:        a,
		ParticipantB:        b,
		PairKey:             utils.PairKey(a, b),
		LastMessageContent:  message.Content,
		LastMessageSenderID: message.SenderID,
		LastMessageAt:       message.CreatedAt,
		EmployeeSnapshot:    snapshot,
	}

	assignments := map[string]interface{}{
		"last_message_content":   message.Content,
		"last_message_sender_id": message.SenderID,
		"last_message_at":        message.CreatedAt,
		"updated_at":             time.Now(),
	}
	if snapshot != nil {
		assignments["employee_snapshot"] = snapshot
	}

	if err := cr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pair_key"}},
		DoUpdates: clause.Assignments(assignments),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "excluded.last_message_at >= conversations.last_message_at"},
		}},
	}).Create(&conversation).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return cr.FindByPair(a, b)
}

func (cr *ConversationRepository) FindByPair(a, b string) (*models.Conversation, []error) {
	var errors []error
	var conversation models.Conversation

	err := cr.db.
		Where("pair_key = ?", utils.PairKey(a, b)).
		First(&conversation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrConversationNotFound)
		} else {
			errors = append(errors, err)
		}
		return nil, errors
	}

	return &conversation, nil
}

// ListForParticipant returns the conversations the given participant
// is a member of, most recently active first.
func (cr *ConversationRepository) ListForParticipant(id string, page, size int) ([]models.Conversation, int64, []error) {
	var errors []error
	var conversations []models.Conversation
	var total int64

	transactionErr := cr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("participant_a = ? OR participant_b = ?", id, id).
			Order("updated_at DESC").
			Find(&conversations).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Conversation{}).
			Where("participant_a = ? OR participant_b = ?", id, id).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, 0, errors
	}

	return conversations, total, nil
}

func (cr *ConversationRepository) AllConversations() ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := cr.db.Order("created_at ASC").Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

func (cr *ConversationRepository) SaveConversation(conversation *models.Conversation) error {
	return cr.db.Save(conversation).Error
}

// DeleteConversations removes merged-away duplicates for good. Soft
// deletion would keep the stale pair_key around and block the
// canonical row from taking it over.
func (cr *ConversationRepository) DeleteConversations(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return cr.db.Unscoped().Delete(&models.Conversation{}, ids).Error
}

func (cr *ConversationRepository) CountConversations() (int64, error) {
	var count int64
	if err := cr.db.Model(&models.Conversation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
