package dto

import (
	"time"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// ============ HTTP wire shapes for the chat endpoints ============

// Turn is one conversation turn as the SPA sends and renders it.
type Turn struct {
	ID        int64                `json:"id,omitempty"`
	Sender    string               `json:"sender"` // user, ai
	Text      string               `json:"text"`
	Timestamp time.Time            `json:"timestamp,omitempty"`
	Image     string               `json:"image,omitempty"`
	Cards     []entity.CatalogItem `json:"cards,omitempty"`
}

// ChatRequest is the POST /api/chat body. At least one of Message or
// Image must be present; History is the client's local window of prior
// turns.
type ChatRequest struct {
	Message   string `json:"message,omitempty"`
	History   []Turn `json:"history,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Image     string `json:"image,omitempty"` // base64 data URI
}

// ChatResponse is the POST /api/chat reply. Cards is always an array,
// possibly empty, never null.
type ChatResponse struct {
	Text  string               `json:"text"`
	Cards []entity.CatalogItem `json:"cards"`
}

// NewSessionRequest is the POST /api/session/new body.
type NewSessionRequest struct {
	SessionID string `json:"sessionId,omitempty"`
}

// NewSessionResponse is the POST /api/session/new reply.
type NewSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
