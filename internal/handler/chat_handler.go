package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/handler/dto"
)

// DefaultSessionID keys the session log when the client sends none.
const DefaultSessionID = "default"

// storedImageOnlyText is what the turn log records as the user's text
// for an image-only message.
const storedImageOnlyText = "Sent an image"

// ChatHandler serves the chat endpoints. It owns persistence of the
// turn pair: the orchestrator stays side-effect free and the handler
// appends the user/assistant turns after Respond returns.
type ChatHandler struct {
	usecase  domain.ChatUsecase
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(usecase domain.ChatUsecase, sessions domain.SessionStore, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase:  usecase,
		sessions: sessions,
		logger:   logger,
	}
}

// Chat handles a chat message.
//
//	@Summary		Send a chat message
//	@Description	Forwards the message to the assistant and returns the reply text plus recommended item cards. Orchestration failures are absorbed into an always-200 degraded payload.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChatRequest	true	"chat message"
//	@Success		200		{object}	dto.ChatResponse
//	@Failure		400		{object}	ErrorBody	"neither message nor image present"
//	@Router			/api/chat [post]
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind chat request", "error", err)
		ErrorResponse(c, domain.NewInvalidInputError("invalid request body"))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	result, err := h.usecase.Respond(ctx, &domain.ChatRequest{
		SessionID: sessionID,
		Message:   req.Message,
		Image:     req.Image,
		History:   toEntityTurns(req.History),
	})
	if err != nil {
		h.logger.Error("chat request rejected", "error", err)
		ErrorResponse(c, err)
		return
	}

	h.appendTurnPair(sessionID, &req, result)

	cards := result.Cards
	if cards == nil {
		cards = []entity.CatalogItem{}
	}
	c.JSON(consts.StatusOK, dto.ChatResponse{
		Text:  result.Text,
		Cards: cards,
	})
}

// History returns the session's ordered turn log.
//
//	@Summary		Get session history
//	@Tags			chat
//	@Produce		json
//	@Param			sessionId	query		string	false	"session id"	default(default)
//	@Success		200			{array}		dto.Turn
//	@Router			/api/history [get]
func (h *ChatHandler) History(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	c.JSON(consts.StatusOK, h.sessions.History(sessionID))
}

// NewSession resets a session's turn log.
//
//	@Summary		Start a new conversation
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.NewSessionRequest	false	"session to reset"
//	@Success		200		{object}	dto.NewSessionResponse
//	@Router			/api/session/new [post]
func (h *ChatHandler) NewSession(ctx context.Context, c *app.RequestContext) {
	var req dto.NewSessionRequest
	// an empty body resets the default session
	_ = c.BindJSON(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	h.sessions.Reset(sessionID)
	h.logger.Info("session reset", "session_id", sessionID)

	c.JSON(consts.StatusOK, dto.NewSessionResponse{
		Success: true,
		Message: "Started new conversation",
	})
}

// appendTurnPair records the completed exchange. Entries land in
// request-completion order; concurrent requests against one session id
// may interleave (documented limitation).
func (h *ChatHandler) appendTurnPair(sessionID string, req *dto.ChatRequest, result *entity.CompletionResult) {
	now := time.Now()

	userText := strings.TrimSpace(req.Message)
	if userText == "" {
		userText = storedImageOnlyText
	}

	h.sessions.Append(sessionID, entity.ConversationTurn{
		ID:        now.UnixMilli(),
		Sender:    entity.SenderUser,
		Text:      userText,
		Timestamp: now,
		Image:     req.Image,
	})
	h.sessions.Append(sessionID, entity.ConversationTurn{
		ID:        now.UnixMilli() + 1,
		Sender:    entity.SenderAssistant,
		Text:      result.Text,
		Timestamp: now,
		Cards:     result.Cards,
	})
}

// toEntityTurns converts wire turns to domain turns. Only sender and
// text feed the prompt window; the rest is display state.
func toEntityTurns(turns []dto.Turn) []entity.ConversationTurn {
	if len(turns) == 0 {
		return nil
	}

	out := make([]entity.ConversationTurn, len(turns))
	for i, t := range turns {
		out[i] = entity.ConversationTurn{
			ID:        t.ID,
			Sender:    t.Sender,
			Text:      t.Text,
			Timestamp: t.Timestamp,
			Image:     t.Image,
		}
	}
	return out
}
