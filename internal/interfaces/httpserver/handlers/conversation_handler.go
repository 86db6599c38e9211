package handlers

import (
	"context"

	"chat-server/services/chat-api/internal/domain/conversation"
)

// ConversationHandler invokes the read-only conversation use cases.
type ConversationHandler struct {
	service *conversation.QueryService
}

// NewConversationHandler wires dependencies for the conversation routes.
func NewConversationHandler(service *conversation.QueryService) *ConversationHandler {
	return &ConversationHandler{
		service: service,
	}
}

// ListConversations returns conversation summaries, newest first.
func (h *ConversationHandler) ListConversations(ctx context.Context, userID *string) ([]*conversation.Conversation, error) {
	return h.service.ListConversations(ctx, userID)
}

// GetMessages returns a conversation's messages in creation order.
func (h *ConversationHandler) GetMessages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	return h.service.GetMessages(ctx, conversationID)
}
