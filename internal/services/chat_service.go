package services

import (
	"context"
	"log"
	"time"

	"portalchat/internal/errs"
	"portalchat/internal/models"
	"portalchat/internal/repositories"
	"portalchat/internal/validators"
)

// ChatService orchestrates the messaging subsystem: the append-only
// message log, the denormalized conversation index and identity
// resolution for display. The log is always written before the index
// so a failure in between leaves the log authoritative and the index
// merely stale; the next send for the pair repairs it.
type ChatService struct {
	messageRepo      *repositories.MessageRepository
	conversationRepo *repositories.ConversationRepository
	resolver         *IdentityResolver
}

func NewChatService(
	messageRepo *repositories.MessageRepository,
	conversationRepo *repositories.ConversationRepository,
	resolver *IdentityResolver,
) *ChatService {
	return &ChatService{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		resolver:         resolver,
	}
}

// SendMessage appends the message and refreshes the conversation
// index for the pair. Blank content after trimming is a no-op: both
// returns are nil and nothing is written.
func (cs *ChatService) SendMessage(ctx context.Context, fromID, toID, content string) (*models.Message, []error) {
	var errors []error

	if fromID == "" || toID == "" {
		errors = append(errors, errs.ErrEmptyParticipant)
		return nil, errors
	}
	if fromID == toID {
		errors = append(errors, errs.ErrSelfConversation)
		return nil, errors
	}

	content, ok := validators.NormalizeContent(content)
	if !ok {
		return nil, nil
	}

	message := &models.Message{
		SenderID:   fromID,
		ReceiverID: toID,
		Content:    content,
	}
	message.CreatedAt = time.Now()

	saved, saveErrs := cs.messageRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}

	snapshot := cs.snapshotForPair(ctx, fromID, toID)
	if _, upsertErrs := cs.conversationRepo.Upsert(fromID, toID, saved, snapshot); len(upsertErrs) > 0 {
		log.Printf("Conversation index update failed for pair {%s, %s}: %v (message %d is saved, index heals on next send)",
			fromID, toID, upsertErrs, saved.ID)
		return saved, upsertErrs
	}

	return saved, nil
}

// GetConversations returns the display rows for the caller, most
// recently active first. Counterpart identity is resolved live when
// possible, falls back to the stored snapshot, and bottoms out at the
// raw counterpart id; an unresolvable counterpart never fails the
// list.
func (cs *ChatService) GetConversations(ctx context.Context, callerID string, page, size int) (*models.ConversationListResponse, []error) {
	var errors []error

	if callerID == "" {
		errors = append(errors, errs.ErrEmptyParticipant)
		return nil, errors
	}

	conversations, total, listErrs := cs.conversationRepo.ListForParticipant(callerID, page, size)
	if len(listErrs) > 0 {
		return nil, listErrs
	}

	rows := make([]models.ConversationRow, 0, len(conversations))
	for _, conversation := range conversations {
		employee, _ := cs.resolver.Resolve(ctx, conversation.Counterpart(callerID))
		rows = append(rows, conversation.ToConversationRow(callerID, employee))
	}

	return &models.ConversationListResponse{
		Conversations: rows,
		Page:          page,
		Size:          size,
		Total:         total,
	}, nil
}

// GetThread returns the messages between the caller and the
// counterpart in either direction, oldest first.
func (cs *ChatService) GetThread(ctx context.Context, callerID, counterpartID string, page, size int) (*models.MessageListResponse, []error) {
	var errors []error

	if callerID == "" || counterpartID == "" {
		errors = append(errors, errs.ErrEmptyParticipant)
		return nil, errors
	}

	return cs.messageRepo.GetThread(callerID, counterpartID, page, size)
}

// snapshotForPair refreshes the stored display snapshot for whichever
// half of the pair resolves to an employee. Admin identifiers simply
// never resolve here. nil means "keep whatever snapshot is stored".
func (cs *ChatService) snapshotForPair(ctx context.Context, fromID, toID string) *models.EmployeeSnapshot {
	if employee, ok := cs.resolver.Resolve(ctx, toID); ok {
		return employee.ToSnapshot()
	}
	if employee, ok := cs.resolver.Resolve(ctx, fromID); ok {
		return employee.ToSnapshot()
	}
	return nil
}
