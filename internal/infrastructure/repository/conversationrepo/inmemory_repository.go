package conversationrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"chat-server/services/chat-api/internal/domain/conversation"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// InMemoryStore is a thread-safe store useful for demos/tests. Its
// Conversations and Messages views implement the repository interfaces, and
// the store itself implements the chat service's Transactor by snapshotting
// state and restoring it on error.
type InMemoryStore struct {
	mu            sync.RWMutex
	conversations []conversation.Conversation
	messages      []conversation.Message
	nextConvID    uint
	nextMsgID     uint
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextConvID: 1, nextMsgID: 1}
}

// Conversations returns the conversation repository view.
func (s *InMemoryStore) Conversations() *InMemoryConversationRepository {
	return &InMemoryConversationRepository{store: s}
}

// Messages returns the message repository view.
func (s *InMemoryStore) Messages() *InMemoryMessageRepository {
	return &InMemoryMessageRepository{store: s}
}

// Transaction snapshots state up front and restores it when fn fails.
func (s *InMemoryStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snapConversations := append([]conversation.Conversation(nil), s.conversations...)
	snapMessages := append([]conversation.Message(nil), s.messages...)
	snapNextConvID := s.nextConvID
	snapNextMsgID := s.nextMsgID
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.conversations = snapConversations
		s.messages = snapMessages
		s.nextConvID = snapNextConvID
		s.nextMsgID = snapNextMsgID
		s.mu.Unlock()
		return err
	}
	return nil
}

// InMemoryConversationRepository adapts the store to the conversation
// repository interface.
type InMemoryConversationRepository struct {
	store *InMemoryStore
}

var _ conversation.ConversationRepository = (*InMemoryConversationRepository)(nil)

// Create implements conversation.ConversationRepository.
func (r *InMemoryConversationRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	conv.ID = s.nextConvID
	s.nextConvID++
	conv.CreatedAt = time.Now().UTC()
	s.conversations = append(s.conversations, *conv)
	return nil
}

// FindByID implements conversation.ConversationRepository.
func (r *InMemoryConversationRepository) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.conversations {
		if s.conversations[i].ID == id {
			found := s.conversations[i]
			return &found, nil
		}
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "conversation not found", nil, "8fb7f7f3-0a4e-4d41-9a3c-6f1f2f9f4702")
}

// FindByFilter implements conversation.ConversationRepository.
func (r *InMemoryConversationRepository) FindByFilter(ctx context.Context, filter conversation.ConversationFilter) ([]*conversation.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*conversation.Conversation, 0)
	for i := range s.conversations {
		if filter.UserID != nil {
			if s.conversations[i].UserID == nil || *s.conversations[i].UserID != *filter.UserID {
				continue
			}
		}
		found := s.conversations[i]
		result = append(result, &found)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// InMemoryMessageRepository adapts the store to the message repository
// interface.
type InMemoryMessageRepository struct {
	store *InMemoryStore
}

var _ conversation.MessageRepository = (*InMemoryMessageRepository)(nil)

// Create implements conversation.MessageRepository.
func (r *InMemoryMessageRepository) Create(ctx context.Context, msg *conversation.Message) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextMsgID
	s.nextMsgID++
	msg.CreatedAt = time.Now().UTC()
	s.messages = append(s.messages, *msg)
	return nil
}

// FindByConversationID implements conversation.MessageRepository.
func (r *InMemoryMessageRepository) FindByConversationID(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*conversation.Message, 0)
	for i := range s.messages {
		if s.messages[i].ConversationID == conversationID {
			found := s.messages[i]
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// FindRecent implements conversation.MessageRepository.
func (r *InMemoryMessageRepository) FindRecent(ctx context.Context, conversationID uint, limit int) ([]*conversation.Message, error) {
	all, err := r.FindByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	// newest-first, matching the gorm repository
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}
