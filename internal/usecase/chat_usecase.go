package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/pkg/retry"
)

// Degraded fallback texts. The product guarantee is "always respond":
// every failure kind maps to a chat bubble, never an error response.
const (
	fallbackNotConfigured = "I'm having trouble confirming my identity (API Key missing). I can't chat right now, but you can still order items!"
	fallbackBusy          = "I'm getting a lot of questions! Give me a second."
	fallbackGeneric       = "Brain freeze! Check out the menu below."
)

// busyCardCount is how many organic items pad the throttled fallback.
const busyCardCount = 3

// DefaultRetryPolicy is the production completion retry schedule:
// 3 attempts, waiting 2s then 4s between them, throttling errors only.
var DefaultRetryPolicy = retry.Linear(3, 2*time.Second)

// chatUsecase is the completion orchestrator: it assembles the prompt,
// calls the completion service with bounded retry on throttling, parses
// the delimited reply and resolves the recommended ids against the
// catalog. Persistence belongs to the caller; Respond has no side
// effects beyond the network call.
type chatUsecase struct {
	completion   domain.CompletionClient
	catalog      domain.CatalogRepository
	policy       retry.Policy
	sleep        retry.SleepFunc
	systemPrompt string
	logger       *slog.Logger
}

// NewChatUsecase creates a chat orchestrator instance. The retry policy
// and sleep are injected so tests can observe the backoff schedule
// without waiting it out; production wiring passes DefaultRetryPolicy
// and retry.Sleep.
func NewChatUsecase(
	completion domain.CompletionClient,
	catalog domain.CatalogRepository,
	policy retry.Policy,
	sleep retry.SleepFunc,
	logger *slog.Logger,
) (domain.ChatUsecase, error) {
	// The catalog is immutable, so the system prompt is built once.
	systemPrompt, err := buildSystemPrompt(catalog)
	if err != nil {
		return nil, err
	}

	return &chatUsecase{
		completion:   completion,
		catalog:      catalog,
		policy:       policy,
		sleep:        sleep,
		systemPrompt: systemPrompt,
		logger:       logger,
	}, nil
}

// Respond turns a user turn into a display response plus resolved
// recommendation cards. The only error it returns is invalid input;
// completion failures of every kind degrade to a best-effort result.
func (u *chatUsecase) Respond(ctx context.Context, req *domain.ChatRequest) (*entity.CompletionResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(req.Message) == "" && req.Image == "" {
		return nil, domain.NewInvalidInputError("either message or image is required")
	}

	// Missing credentials is a configuration state, not a runtime
	// failure: static fallback, no network attempt, no retry.
	if !u.completion.Configured() {
		u.logger.Warn("completion service not configured, serving static fallback",
			"session_id", req.SessionID)
		return &entity.CompletionResult{Text: fallbackNotConfigured}, nil
	}

	messages := buildMessages(u.systemPrompt, req)

	raw, err := retry.Do(ctx, u.policy, u.sleep, domain.IsRateLimited,
		func(ctx context.Context) (string, error) {
			return u.completion.Complete(ctx, messages)
		})
	if err != nil {
		return u.degrade(req, err), nil
	}

	displayText, ids := parseReply(raw, u.logger)
	result := &entity.CompletionResult{
		Text:  displayText,
		Cards: u.catalog.Resolve(dedupeIDs(ids)),
	}

	u.logger.Info("chat completion succeeded",
		"session_id", req.SessionID,
		"cards", len(result.Cards),
	)

	return result, nil
}

// degrade maps an exhausted or failed completion call onto the
// always-200 fallback result.
func (u *chatUsecase) degrade(req *domain.ChatRequest, err error) *entity.CompletionResult {
	if domain.IsRateLimited(err) {
		u.logger.Warn("completion retries exhausted, serving busy fallback",
			"session_id", req.SessionID,
			"error", err,
		)
		menu := u.catalog.MenuItems()
		if len(menu) > busyCardCount {
			menu = menu[:busyCardCount]
		}
		return &entity.CompletionResult{Text: fallbackBusy, Cards: menu}
	}

	u.logger.Error("completion failed, serving generic fallback",
		"session_id", req.SessionID,
		"error", err,
	)
	return &entity.CompletionResult{Text: fallbackGeneric}
}
