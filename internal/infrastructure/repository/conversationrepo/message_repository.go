package conversationrepo

import (
	"context"

	"chat-server/services/chat-api/internal/domain/conversation"
	"chat-server/services/chat-api/internal/infrastructure/database/entities"
	"chat-server/services/chat-api/internal/infrastructure/database/transaction"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

type MessageGormRepository struct {
	db *transaction.Database
}

var _ conversation.MessageRepository = (*MessageGormRepository)(nil)

func NewMessageGormRepository(db *transaction.Database) *MessageGormRepository {
	return &MessageGormRepository{db}
}

// Create implements conversation.MessageRepository.
func (repo *MessageGormRepository) Create(ctx context.Context, msg *conversation.Message) error {
	model := entities.NewSchemaMessage(msg)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create message")
	}
	msg.ID = model.ID
	msg.CreatedAt = model.CreatedAt
	return nil
}

// FindByConversationID implements conversation.MessageRepository.
// The id tiebreaker keeps ordering stable when rows share a creation
// timestamp within one transaction.
func (repo *MessageGormRepository) FindByConversationID(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	var rows []entities.Message
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find messages by conversation ID")
	}
	return mapMessages(rows), nil
}

// FindRecent implements conversation.MessageRepository.
func (repo *MessageGormRepository) FindRecent(ctx context.Context, conversationID uint, limit int) ([]*conversation.Message, error) {
	var rows []entities.Message
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find recent messages")
	}
	return mapMessages(rows), nil
}

func mapMessages(rows []entities.Message) []*conversation.Message {
	result := make([]*conversation.Message, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].EtoD())
	}
	return result
}
