package domain

import (
	"context"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// ============ Usecase-layer internal DTOs ============

// ChatRequest is the internal chat request (consumed by the usecase).
// History is the client-supplied window of prior turns; SessionID keys
// the server-side log the caller appends results to.
type ChatRequest struct {
	SessionID string
	Message   string
	Image     string // optional base64 data URI
	History   []entity.ConversationTurn
}

// CatalogRepository exposes the fixed set of orderable items.
// Implementations are read-only for the process lifetime and safe for
// concurrent use without locking.
type CatalogRepository interface {
	// AllItems returns every item, organic first then sponsored, in
	// stable order.
	AllItems() []entity.CatalogItem

	// MenuItems returns only the organic menu items, in stable order.
	MenuItems() []entity.CatalogItem

	// SponsoredItems returns only the promoted items, in stable order.
	SponsoredItems() []entity.CatalogItem

	// Resolve maps ids onto items. Unknown ids are dropped without
	// error; duplicate ids yield duplicate entries, mirroring the
	// caller's order.
	Resolve(ids []int) []entity.CatalogItem

	// Vendors returns the vendor directory.
	Vendors() []entity.Vendor
}

// CompletionClient fronts the hosted chat-completion service.
type CompletionClient interface {
	// Configured reports whether the client holds working credentials.
	// When false, Complete must not be called; the orchestrator serves
	// its static fallback instead.
	Configured() bool

	// Complete sends the assembled prompt and returns the raw model
	// text. Throttling surfaces as an error matching ErrRateLimited.
	Complete(ctx context.Context, messages []entity.PromptMessage) (string, error)
}

// SessionStore is the append-only per-session turn log. Entries are
// appended in request-completion order and never mutated afterwards.
// Concurrent requests against one session id are not serialized; their
// relative order in the log is unspecified.
type SessionStore interface {
	// Append adds a turn to the end of the session's log.
	Append(sessionID string, turn entity.ConversationTurn)

	// Recent returns up to limit most recent turns, oldest first.
	// limit <= 0 returns the whole log.
	Recent(sessionID string, limit int) []entity.ConversationTurn

	// History returns the full ordered log (empty slice if none).
	History(sessionID string) []entity.ConversationTurn

	// Reset empties the session's log.
	Reset(sessionID string)
}

// ChatUsecase is the completion orchestrator.
type ChatUsecase interface {
	// Respond turns a user turn into a display response plus resolved
	// recommendation cards. It never returns an error for completion
	// failures: every failure kind degrades to a best-effort result.
	Respond(ctx context.Context, req *ChatRequest) (*entity.CompletionResult, error)
}
