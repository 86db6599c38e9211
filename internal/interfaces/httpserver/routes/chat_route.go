package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-server/services/chat-api/internal/domain/chat"
	"chat-server/services/chat-api/internal/interfaces/httpserver/handlers"
	chatrequests "chat-server/services/chat-api/internal/interfaces/httpserver/requests/chat"
	chatresponses "chat-server/services/chat-api/internal/interfaces/httpserver/responses/chat"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// ChatRoute handles the chat turn endpoint by delegating to the chat handler.
type ChatRoute struct {
	chatHandler *handlers.ChatHandler
	log         zerolog.Logger
}

func NewChatRoute(chatHandler *handlers.ChatHandler, log zerolog.Logger) *ChatRoute {
	return &ChatRoute{
		chatHandler: chatHandler,
		log:         log,
	}
}

func (r *ChatRoute) RegisterRouter(router gin.IRoutes) {
	router.POST("/chat", r.PostChat)
}

// PostChat godoc
// @Summary      Send a chat message
// @Description  Persists the user message, forwards a bounded history window to the completion API, persists the reply, and returns it. Omitting conversation_id creates a new conversation.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body chatrequests.ChatRequest true "Chat turn"
// @Success      200 {object} chatresponses.ChatResponse
// @Failure      400 {object} platformerrors.HTTPErrorResponse "Malformed request body"
// @Failure      404 {object} platformerrors.HTTPErrorResponse "Unknown conversation id"
// @Failure      502 {object} platformerrors.HTTPErrorResponse "Completion API failure"
// @Router       /chat [post]
func (r *ChatRoute) PostChat(c *gin.Context) {
	var request chatrequests.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body: "+err.Error())
		return
	}

	result, err := r.chatHandler.HandleChat(c.Request.Context(), chat.Input{
		UserID:         request.UserID,
		ConversationID: request.ConversationID,
		Message:        request.Message,
	})
	if err != nil {
		platformerrors.WriteError(c, err, r.log)
		return
	}

	c.JSON(http.StatusOK, chatresponses.ChatResponse{
		ConversationID: result.ConversationID,
		Reply:          result.Reply,
	})
}
