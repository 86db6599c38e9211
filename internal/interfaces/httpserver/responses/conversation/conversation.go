package conversationresponses

import (
	"time"

	"chat-server/services/chat-api/internal/domain/conversation"
)

// ConversationResponse is one conversation summary row.
type ConversationResponse struct {
	ID        uint      `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Title     *string   `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is one message row.
type MessageResponse struct {
	ID        uint      `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListResponse is the GET /conversations/:id/messages payload. For an
// unknown conversation id the messages list is empty, not an error.
type MessageListResponse struct {
	ConversationID uint              `json:"conversation_id"`
	Messages       []MessageResponse `json:"messages"`
}

// NewConversationResponse creates a response from a domain conversation
func NewConversationResponse(conv *conversation.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conv.ID,
		UserID:    conv.UserID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
	}
}

// NewConversationListResponse creates the conversation list payload
func NewConversationListResponse(conversations []*conversation.Conversation) []ConversationResponse {
	data := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		if conv == nil {
			continue
		}
		data = append(data, NewConversationResponse(conv))
	}
	return data
}

// NewMessageListResponse creates the message list payload
func NewMessageListResponse(conversationID uint, messages []*conversation.Message) MessageListResponse {
	data := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		if msg == nil {
			continue
		}
		data = append(data, MessageResponse{
			ID:        msg.ID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return MessageListResponse{
		ConversationID: conversationID,
		Messages:       data,
	}
}
