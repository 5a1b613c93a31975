package entity

import "time"

// Turn senders. The SPA historically sends "ai" for assistant turns, so
// both spellings are accepted on input; "ai" is what gets stored.
const (
	SenderUser      = "user"
	SenderAssistant = "ai"
)

// ConversationTurn is one message exchanged in a conversation
// (Domain layer pure object).
type ConversationTurn struct {
	ID        int64         `json:"id"`
	Sender    string        `json:"sender"` // user, ai
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	Image     string        `json:"image,omitempty"` // base64 data URI
	Cards     []CatalogItem `json:"cards,omitempty"` // assistant turns only
}

// PromptMessage is one message of an assembled completion request.
// It is the neutral shape handed to the completion client; the client
// maps it onto the wire format of the hosted service.
type PromptMessage struct {
	Role     string // system, user, assistant
	Text     string
	ImageURL string // base64 data URI, multimodal turns only
}

// Prompt roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionResult is the orchestrator's answer for a single request:
// the display text plus the resolved recommendation cards.
type CompletionResult struct {
	Text  string
	Cards []CatalogItem
}
