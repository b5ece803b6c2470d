package models

// Chat message roles accepted by the assistant
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// ChatMessage is one turn of an assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents an assistant chat payload
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the assistant reply returned to the client
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}
