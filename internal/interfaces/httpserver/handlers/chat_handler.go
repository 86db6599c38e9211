package handlers

import (
	"context"

	"chat-server/services/chat-api/internal/domain/chat"
)

// ChatHandler invokes domain logic for chat turns.
type ChatHandler struct {
	service *chat.Service
}

// NewChatHandler wires dependencies for the chat route.
func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// HandleChat executes the chat orchestration use case.
func (h *ChatHandler) HandleChat(ctx context.Context, input chat.Input) (*chat.Result, error) {
	return h.service.HandleChat(ctx, input)
}
