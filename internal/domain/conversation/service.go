package conversation

import (
	"context"

	"github.com/rs/zerolog"

	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// QueryService provides the read-only conversation listings.
type QueryService struct {
	conversations ConversationRepository
	messages      MessageRepository
	log           zerolog.Logger
}

// NewQueryService wires the query service with its repositories.
func NewQueryService(conversations ConversationRepository, messages MessageRepository, log zerolog.Logger) *QueryService {
	return &QueryService{
		conversations: conversations,
		messages:      messages,
		log:           log.With().Str("component", "conversation-query-service").Logger(),
	}
}

// ListConversations returns conversations ordered by creation time descending,
// filtered by exact user id match when given.
func (s *QueryService) ListConversations(ctx context.Context, userID *string) ([]*Conversation, error) {
	result, err := s.conversations.FindByFilter(ctx, ConversationFilter{UserID: userID})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return result, nil
}

// GetMessages returns a conversation's messages ordered by creation time
// ascending. An unknown conversation id yields an empty slice, not an error;
// the POST /chat path by contrast reports 404 for unknown ids. The asymmetry
// is part of the API contract.
func (s *QueryService) GetMessages(ctx context.Context, conversationID uint) ([]*Message, error) {
	result, err := s.messages.FindByConversationID(ctx, conversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to fetch messages")
	}
	return result, nil
}
