package chat

import (
	openai "github.com/sashabaranov/go-openai"

	"chat-server/services/chat-api/internal/domain/conversation"
)

// historyLimit caps how many stored messages are sent upstream per request.
// The cap is applied before the system turn is prepended, so at most
// historyLimit+1 turns go out.
const historyLimit = 20

const systemPrompt = "You are a helpful, concise assistant. Keep replies short unless asked for detail."

// buildPromptWindow converts a newest-first message slice (as returned by
// MessageRepository.FindRecent) into the upstream turn list: oldest-first,
// with the fixed system turn first.
func buildPromptWindow(recent []*conversation.Message) []openai.ChatCompletionMessage {
	turns := make([]openai.ChatCompletionMessage, 0, len(recent)+1)
	turns = append(turns, openai.ChatCompletionMessage{
		Role:    conversation.RoleSystem,
		Content: systemPrompt,
	})
	for i := len(recent) - 1; i >= 0; i-- {
		turns = append(turns, openai.ChatCompletionMessage{
			Role:    recent[i].Role,
			Content: recent[i].Content,
		})
	}
	return turns
}
