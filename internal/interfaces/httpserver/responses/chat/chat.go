package chatresponses

// ChatResponse is the POST /chat reply payload.
type ChatResponse struct {
	ConversationID uint   `json:"conversation_id"`
	Reply          string `json:"reply"`
}
