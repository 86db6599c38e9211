package handlers

import (
	"chat-server/services/chat-api/internal/domain/chat"
	"chat-server/services/chat-api/internal/domain/conversation"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat         *ChatHandler
	Conversation *ConversationHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(chatService *chat.Service, queryService *conversation.QueryService) *Provider {
	return &Provider{
		Chat:         NewChatHandler(chatService),
		Conversation: NewConversationHandler(queryService),
	}
}
