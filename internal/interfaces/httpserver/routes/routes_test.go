package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"chat-server/services/chat-api/internal/domain/chat"
	"chat-server/services/chat-api/internal/domain/conversation"
	"chat-server/services/chat-api/internal/infrastructure/repository/conversationrepo"
	"chat-server/services/chat-api/internal/interfaces/httpserver/handlers"
	"chat-server/services/chat-api/internal/interfaces/httpserver/routes"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

type stubCompletionClient struct {
	reply string
	err   error
}

func (s *stubCompletionClient) Complete(ctx context.Context, turns []openai.ChatCompletionMessage) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestEngine(client *stubCompletionClient) (*gin.Engine, *conversationrepo.InMemoryStore) {
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	store := conversationrepo.NewInMemoryStore()
	chatService := chat.NewService(store.Conversations(), store.Messages(), client, store, log)
	queryService := conversation.NewQueryService(store.Conversations(), store.Messages(), log)

	engine := gin.New()
	routes.NewProvider(handlers.NewProvider(chatService, queryService), log).Register(engine)
	return engine, store
}

func doRequest(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestPostChatCreatesConversation(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "hello"})

	rec := doRequest(t, engine, http.MethodPost, "/chat", `{"user_id":"u1","message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ConversationID uint   `json:"conversation_id"`
		Reply          string `json:"reply"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ConversationID != 1 {
		t.Fatalf("expected conversation_id 1, got %d", resp.ConversationID)
	}
	if resp.Reply != "hello" {
		t.Fatalf("expected reply %q, got %q", "hello", resp.Reply)
	}
}

func TestPostChatRejectsMissingMessage(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "unused"})

	rec := doRequest(t, engine, http.MethodPost, "/chat", `{"user_id":"u1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp platformerrors.HTTPErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error == nil || resp.Error.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", resp.Error)
	}
}

func TestPostChatUnknownConversationReturns404(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "unused"})

	rec := doRequest(t, engine, http.MethodPost, "/chat", `{"conversation_id":42,"message":"hi"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp platformerrors.HTTPErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error == nil || resp.Error.Type != "not_found_error" {
		t.Fatalf("expected not_found_error, got %+v", resp.Error)
	}
}

func TestPostChatUpstreamFailureReturns502(t *testing.T) {
	upstream := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "completion API request failed", nil,
		"5f0f4a1e-31f0-4f0e-9a0e-3f1f5f6a7b8c")
	engine, store := newTestEngine(&stubCompletionClient{err: upstream})

	rec := doRequest(t, engine, http.MethodPost, "/chat", `{"message":"hi"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}

	// A failed turn leaves no partial state behind.
	conversations, err := store.Conversations().FindByFilter(context.Background(), conversation.ConversationFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 0 {
		t.Fatalf("expected rollback to remove the conversation, got %d", len(conversations))
	}
}

func TestListConversationsFiltersByUser(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "ok"})

	for _, body := range []string{
		`{"user_id":"alice","message":"hi"}`,
		`{"user_id":"bob","message":"hi"}`,
		`{"user_id":"alice","message":"hi again"}`,
	} {
		if rec := doRequest(t, engine, http.MethodPost, "/chat", body); rec.Code != http.StatusOK {
			t.Fatalf("seed request failed with %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doRequest(t, engine, http.MethodGet, "/conversations?user_id=alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []struct {
		ID     uint    `json:"id"`
		UserID *string `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 conversations for alice, got %d", len(resp))
	}
	// Newest first.
	if resp[0].ID != 3 || resp[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", resp)
	}
}

func TestGetMessagesReturnsTurnsInOrder(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "pong"})

	if rec := doRequest(t, engine, http.MethodPost, "/chat", `{"message":"ping"}`); rec.Code != http.StatusOK {
		t.Fatalf("seed request failed with %d: %s", rec.Code, rec.Body.String())
	}

	rec := doRequest(t, engine, http.MethodGet, "/conversations/1/messages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ConversationID uint `json:"conversation_id"`
		Messages       []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ConversationID != 1 {
		t.Fatalf("expected conversation_id 1, got %d", resp.ConversationID)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}
	if resp.Messages[0].Role != "user" || resp.Messages[0].Content != "ping" {
		t.Fatalf("unexpected first message: %+v", resp.Messages[0])
	}
	if resp.Messages[1].Role != "assistant" || resp.Messages[1].Content != "pong" {
		t.Fatalf("unexpected second message: %+v", resp.Messages[1])
	}
}

func TestGetMessagesUnknownConversationReturnsEmptyList(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "unused"})

	rec := doRequest(t, engine, http.MethodGet, "/conversations/999/messages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with empty list, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"messages":[]`) {
		t.Fatalf("expected empty messages array, got %s", rec.Body.String())
	}
}

func TestGetMessagesRejectsNonNumericID(t *testing.T) {
	engine, _ := newTestEngine(&stubCompletionClient{reply: "unused"})

	rec := doRequest(t, engine, http.MethodGet, "/conversations/abc/messages", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
