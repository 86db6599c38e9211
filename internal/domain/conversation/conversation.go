package conversation

import (
	"context"
	"time"
)

// Message roles observed by the orchestration service. The data layer keeps
// role as free text, so these are boundary constants, not an enforced enum.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is a thread of messages sharing one id.
type Conversation struct {
	ID        uint
	UserID    *string
	Title     *string
	CreatedAt time.Time
}

// Message is one turn in a conversation. Messages are append-only: they are
// never updated or deleted individually once created.
type Message struct {
	ID             uint
	ConversationID uint
	Role           string
	Content        string
	CreatedAt      time.Time
}

// ConversationFilter narrows conversation listings.
type ConversationFilter struct {
	UserID *string
}

// ConversationRepository exposes data access for conversations.
type ConversationRepository interface {
	// Create persists the conversation and fills in the generated ID and
	// CreatedAt. Inside a transaction the ID is available before commit.
	Create(ctx context.Context, conv *Conversation) error
	// FindByID returns the conversation or a NOT_FOUND platform error.
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	// FindByFilter lists conversations ordered by creation time descending.
	FindByFilter(ctx context.Context, filter ConversationFilter) ([]*Conversation, error)
}

// MessageRepository exposes data access for messages.
type MessageRepository interface {
	// Create persists the message and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, msg *Message) error
	// FindByConversationID returns all messages ordered by creation time
	// ascending. An unknown conversation id yields an empty slice.
	FindByConversationID(ctx context.Context, conversationID uint) ([]*Message, error)
	// FindRecent returns up to limit messages ordered newest-first.
	FindRecent(ctx context.Context, conversationID uint, limit int) ([]*Message, error)
}
