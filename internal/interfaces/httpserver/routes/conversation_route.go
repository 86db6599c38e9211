package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-server/services/chat-api/internal/interfaces/httpserver/handlers"
	conversationresponses "chat-server/services/chat-api/internal/interfaces/httpserver/responses/conversation"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// ConversationRoute handles the read-only conversation endpoints.
type ConversationRoute struct {
	conversationHandler *handlers.ConversationHandler
	log                 zerolog.Logger
}

func NewConversationRoute(conversationHandler *handlers.ConversationHandler, log zerolog.Logger) *ConversationRoute {
	return &ConversationRoute{
		conversationHandler: conversationHandler,
		log:                 log,
	}
}

func (r *ConversationRoute) RegisterRouter(router gin.IRoutes) {
	router.GET("/conversations", r.ListConversations)
	router.GET("/conversations/:id/messages", r.GetMessages)
}

// ListConversations godoc
// @Summary      List conversations
// @Description  Returns conversation summaries ordered by creation time descending, optionally filtered by exact user_id match.
// @Tags         conversations
// @Produce      json
// @Param        user_id query string false "Filter by user_id"
// @Success      200 {array} conversationresponses.ConversationResponse
// @Router       /conversations [get]
func (r *ConversationRoute) ListConversations(c *gin.Context) {
	var userID *string
	if v, ok := c.GetQuery("user_id"); ok && v != "" {
		userID = &v
	}

	conversations, err := r.conversationHandler.ListConversations(c.Request.Context(), userID)
	if err != nil {
		platformerrors.WriteError(c, err, r.log)
		return
	}

	c.JSON(http.StatusOK, conversationresponses.NewConversationListResponse(conversations))
}

// GetMessages godoc
// @Summary      List a conversation's messages
// @Description  Returns messages in creation-time order. An unknown conversation id yields an empty messages list, not a 404.
// @Tags         conversations
// @Produce      json
// @Param        id path int true "Conversation id"
// @Success      200 {object} conversationresponses.MessageListResponse
// @Failure      400 {object} platformerrors.HTTPErrorResponse "Non-numeric conversation id"
// @Router       /conversations/{id}/messages [get]
func (r *ConversationRoute) GetMessages(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		platformerrors.WriteValidationError(c, "conversation id must be an integer")
		return
	}

	messages, err := r.conversationHandler.GetMessages(c.Request.Context(), uint(id))
	if err != nil {
		platformerrors.WriteError(c, err, r.log)
		return
	}

	c.JSON(http.StatusOK, conversationresponses.NewMessageListResponse(uint(id), messages))
}
