package chat

import (
	"context"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"chat-server/services/chat-api/internal/domain/conversation"
	"chat-server/services/chat-api/internal/infrastructure/metrics"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// CompletionClient issues one synchronous completion call and returns the
// first choice's message content.
type CompletionClient interface {
	Complete(ctx context.Context, turns []openai.ChatCompletionMessage) (string, error)
}

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn share that transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Input carries one inbound chat turn.
type Input struct {
	UserID         *string
	ConversationID *uint
	Message        string
}

// Result is the outcome of a handled chat turn.
type Result struct {
	ConversationID uint
	Reply          string
}

// Service orchestrates a chat turn: resolve-or-create the conversation,
// persist the user message, call the completion API with a bounded prompt
// window, and persist the reply.
type Service struct {
	conversations conversation.ConversationRepository
	messages      conversation.MessageRepository
	completions   CompletionClient
	tx            Transactor
	log           zerolog.Logger
}

// NewService wires the chat orchestration service.
func NewService(
	conversations conversation.ConversationRepository,
	messages conversation.MessageRepository,
	completions CompletionClient,
	tx Transactor,
	log zerolog.Logger,
) *Service {
	return &Service{
		conversations: conversations,
		messages:      messages,
		completions:   completions,
		tx:            tx,
		log:           log.With().Str("component", "chat-service").Logger(),
	}
}

// HandleChat processes one chat turn. All writes (new conversation, user
// message, assistant message) share one transaction: an upstream failure
// rolls back the already-inserted user message, so a failed request leaves
// no partial state.
func (s *Service) HandleChat(ctx context.Context, input Input) (*Result, error) {
	var result *Result

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		conv, created, err := s.resolveConversation(txCtx, input)
		if err != nil {
			return err
		}

		userMsg := &conversation.Message{
			ConversationID: conv.ID,
			Role:           conversation.RoleUser,
			Content:        input.Message,
		}
		if err := s.messages.Create(txCtx, userMsg); err != nil {
			return platformerrors.AsError(txCtx, platformerrors.LayerDomain, err, "failed to persist user message")
		}

		// The window is read inside the transaction, so it includes the
		// user message inserted above.
		recent, err := s.messages.FindRecent(txCtx, conv.ID, historyLimit)
		if err != nil {
			return platformerrors.AsError(txCtx, platformerrors.LayerDomain, err, "failed to load message history")
		}

		reply, err := s.completions.Complete(txCtx, buildPromptWindow(recent))
		if err != nil {
			return platformerrors.AsError(txCtx, platformerrors.LayerDomain, err, "completion call failed")
		}

		assistantMsg := &conversation.Message{
			ConversationID: conv.ID,
			Role:           conversation.RoleAssistant,
			Content:        reply,
		}
		if err := s.messages.Create(txCtx, assistantMsg); err != nil {
			return platformerrors.AsError(txCtx, platformerrors.LayerDomain, err, "failed to persist assistant message")
		}

		if created {
			metrics.ConversationsCreatedTotal.Inc()
		}
		metrics.MessagesStoredTotal.WithLabelValues(conversation.RoleUser).Inc()
		metrics.MessagesStoredTotal.WithLabelValues(conversation.RoleAssistant).Inc()

		result = &Result{ConversationID: conv.ID, Reply: reply}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("conversation_id", result.ConversationID).Msg("chat turn handled")
	return result, nil
}

// resolveConversation looks up the referenced conversation or creates a new
// one. Creation has no idempotency key: two concurrent first-requests from
// the same user produce two conversations.
func (s *Service) resolveConversation(ctx context.Context, input Input) (*conversation.Conversation, bool, error) {
	if input.ConversationID != nil {
		conv, err := s.conversations.FindByID(ctx, *input.ConversationID)
		if err != nil {
			return nil, false, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "conversation not found")
		}
		return conv, false, nil
	}

	conv := &conversation.Conversation{UserID: input.UserID}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return nil, false, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}
	return conv, true, nil
}
