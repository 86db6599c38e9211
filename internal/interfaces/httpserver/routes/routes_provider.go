package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-server/services/chat-api/internal/interfaces/httpserver/handlers"
)

// Provider registers all application routes.
type Provider struct {
	chat         *ChatRoute
	conversation *ConversationRoute
}

// NewProvider builds the route registrars from the handler provider.
func NewProvider(handlerProvider *handlers.Provider, log zerolog.Logger) *Provider {
	return &Provider{
		chat:         NewChatRoute(handlerProvider.Chat, log),
		conversation: NewConversationRoute(handlerProvider.Conversation, log),
	}
}

// Register attaches all routes to the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.chat.RegisterRouter(engine)
	p.conversation.RegisterRouter(engine)
}
