package chatrequests

// ChatRequest is the POST /chat body. Binding failures are rejected with a
// validation error before any service logic runs.
type ChatRequest struct {
	// UserID is an optional free-text user identifier; it is not a reference
	// to any user table.
	UserID *string `json:"user_id,omitempty"`
	// ConversationID, when present, must reference an existing conversation.
	// When absent a new conversation is created.
	ConversationID *uint  `json:"conversation_id,omitempty"`
	Message        string `json:"message" binding:"required"`
}
