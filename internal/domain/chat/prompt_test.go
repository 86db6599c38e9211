package chat

import (
	"fmt"
	"testing"

	"chat-server/services/chat-api/internal/domain/conversation"
)

func newestFirst(n int) []*conversation.Message {
	// index 0 is the newest message, as FindRecent returns them
	msgs := make([]*conversation.Message, 0, n)
	for i := n; i >= 1; i-- {
		role := conversation.RoleUser
		if i%2 == 0 {
			role = conversation.RoleAssistant
		}
		msgs = append(msgs, &conversation.Message{
			ID:      uint(i),
			Role:    role,
			Content: fmt.Sprintf("message %d", i),
		})
	}
	return msgs
}

func TestBuildPromptWindowEmptyHistory(t *testing.T) {
	turns := buildPromptWindow(nil)
	if len(turns) != 1 {
		t.Fatalf("expected only the system turn, got %d turns", len(turns))
	}
	if turns[0].Role != conversation.RoleSystem {
		t.Fatalf("expected system role first, got %q", turns[0].Role)
	}
	if turns[0].Content != systemPrompt {
		t.Fatalf("unexpected system prompt: %q", turns[0].Content)
	}
}

func TestBuildPromptWindowOrdering(t *testing.T) {
	turns := buildPromptWindow(newestFirst(3))
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}
	if turns[0].Role != conversation.RoleSystem {
		t.Fatalf("expected system turn first, got %q", turns[0].Role)
	}
	for i := 1; i < len(turns); i++ {
		want := fmt.Sprintf("message %d", i)
		if turns[i].Content != want {
			t.Fatalf("turn %d: expected %q, got %q", i, want, turns[i].Content)
		}
	}
}

func TestBuildPromptWindowKeepsAtMostLimitPlusSystem(t *testing.T) {
	// FindRecent already caps at historyLimit; the builder must not grow it.
	turns := buildPromptWindow(newestFirst(historyLimit))
	if len(turns) != historyLimit+1 {
		t.Fatalf("expected %d turns, got %d", historyLimit+1, len(turns))
	}
	// oldest of the window first after the system turn, newest last
	if turns[1].Content != "message 1" {
		t.Fatalf("expected oldest message first, got %q", turns[1].Content)
	}
	if turns[len(turns)-1].Content != fmt.Sprintf("message %d", historyLimit) {
		t.Fatalf("expected newest message last, got %q", turns[len(turns)-1].Content)
	}
}
