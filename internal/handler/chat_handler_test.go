package handler

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/handler/dto"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/infrastructure/session"
)

// Mock ChatUsecase scripted with a fixed result or error.
type testChatUsecase struct {
	result  *entity.CompletionResult
	err     error
	lastReq *domain.ChatRequest
}

func (u *testChatUsecase) Respond(ctx context.Context, req *domain.ChatRequest) (*entity.CompletionResult, error) {
	u.lastReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.result, nil
}

func newTestEngine(uc domain.ChatUsecase, sessions domain.SessionStore) *route.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := NewChatHandler(uc, sessions, logger)

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.POST("/api/chat", h.Chat)
	engine.GET("/api/history", h.History)
	engine.POST("/api/session/new", h.NewSession)
	return engine
}

func performJSON(t *testing.T, engine *route.Engine, method, uri string, body interface{}) *ut.ResponseRecorder {
	t.Helper()

	var reqBody *ut.Body
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = &ut.Body{Body: bytes.NewBuffer(data), Len: len(data)}
	}

	return ut.PerformRequest(engine, method, uri, reqBody,
		ut.Header{Key: "Content-Type", Value: "application/json"})
}

func TestChatEndpoint(t *testing.T) {
	t.Run("successful chat returns text and cards and logs the pair", func(t *testing.T) {
		uc := &testChatUsecase{result: &entity.CompletionResult{
			Text: "Try the jollof!",
			Cards: []entity.CatalogItem{
				{ID: 102, Name: "Jollof Rice & Grilled Chicken", Price: 4500},
			},
		}}
		sessions := session.NewStore()
		engine := newTestEngine(uc, sessions)

		w := performJSON(t, engine, "POST", "/api/chat", dto.ChatRequest{
			Message:   "what should I eat?",
			SessionID: "s1",
		})

		resp := w.Result()
		if resp.StatusCode() != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode())
		}

		var body dto.ChatResponse
		if err := sonic.Unmarshal(resp.Body(), &body); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if body.Text != "Try the jollof!" {
			t.Errorf("text = %q, want %q", body.Text, "Try the jollof!")
		}
		if len(body.Cards) != 1 || body.Cards[0].ID != 102 {
			t.Errorf("cards = %+v, want single card 102", body.Cards)
		}

		turns := sessions.History("s1")
		if len(turns) != 2 {
			t.Fatalf("got %d logged turns, want 2", len(turns))
		}
		if turns[0].Sender != entity.SenderUser || turns[0].Text != "what should I eat?" {
			t.Errorf("turns[0] = %+v, want the user turn", turns[0])
		}
		if turns[1].Sender != entity.SenderAssistant || turns[1].Text != "Try the jollof!" {
			t.Errorf("turns[1] = %+v, want the assistant turn", turns[1])
		}
	})

	t.Run("nil cards serialize as empty array", func(t *testing.T) {
		uc := &testChatUsecase{result: &entity.CompletionResult{Text: "Just chatting"}}
		engine := newTestEngine(uc, session.NewStore())

		w := performJSON(t, engine, "POST", "/api/chat", dto.ChatRequest{Message: "hi"})

		if !bytes.Contains(w.Result().Body(), []byte(`"cards":[]`)) {
			t.Errorf("body = %s, want cards serialized as []", w.Result().Body())
		}
	})

	t.Run("missing session id falls back to default", func(t *testing.T) {
		uc := &testChatUsecase{result: &entity.CompletionResult{Text: "ok"}}
		sessions := session.NewStore()
		engine := newTestEngine(uc, sessions)

		performJSON(t, engine, "POST", "/api/chat", dto.ChatRequest{Message: "hi"})

		if uc.lastReq.SessionID != DefaultSessionID {
			t.Errorf("session id = %q, want %q", uc.lastReq.SessionID, DefaultSessionID)
		}
		if len(sessions.History(DefaultSessionID)) != 2 {
			t.Error("turn pair not logged under the default session")
		}
	})

	t.Run("image-only message is logged with placeholder text", func(t *testing.T) {
		uc := &testChatUsecase{result: &entity.CompletionResult{Text: "Looks tasty"}}
		sessions := session.NewStore()
		engine := newTestEngine(uc, sessions)

		performJSON(t, engine, "POST", "/api/chat", dto.ChatRequest{
			SessionID: "s1",
			Image:     "data:image/png;base64,AAAA",
		})

		turns := sessions.History("s1")
		if len(turns) != 2 {
			t.Fatalf("got %d logged turns, want 2", len(turns))
		}
		if turns[0].Text != storedImageOnlyText {
			t.Errorf("turns[0].Text = %q, want %q", turns[0].Text, storedImageOnlyText)
		}
		if turns[0].Image == "" {
			t.Error("logged user turn lost the image")
		}
	})

	t.Run("invalid input maps to 400 and logs nothing", func(t *testing.T) {
		uc := &testChatUsecase{err: domain.NewInvalidInputError("either message or image is required")}
		sessions := session.NewStore()
		engine := newTestEngine(uc, sessions)

		w := performJSON(t, engine, "POST", "/api/chat", dto.ChatRequest{SessionID: "s1"})

		resp := w.Result()
		if resp.StatusCode() != 400 {
			t.Fatalf("status = %d, want 400", resp.StatusCode())
		}

		var body ErrorBody
		if err := sonic.Unmarshal(resp.Body(), &body); err != nil {
			t.Fatalf("failed to unmarshal error body: %v", err)
		}
		if body.Code != "INVALID_INPUT" {
			t.Errorf("code = %q, want INVALID_INPUT", body.Code)
		}
		if len(sessions.History("s1")) != 0 {
			t.Error("rejected request must not be logged")
		}
	})
}

func TestHistoryEndpoint(t *testing.T) {
	uc := &testChatUsecase{}
	sessions := session.NewStore()
	sessions.Append("s1", entity.ConversationTurn{Sender: entity.SenderUser, Text: "hi"})
	sessions.Append("s1", entity.ConversationTurn{Sender: entity.SenderAssistant, Text: "hello!"})
	engine := newTestEngine(uc, sessions)

	w := performJSON(t, engine, "GET", "/api/history?sessionId=s1", nil)

	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}

	var turns []dto.Turn
	if err := sonic.Unmarshal(resp.Body(), &turns); err != nil {
		t.Fatalf("failed to unmarshal history: %v", err)
	}
	if len(turns) != 2 || turns[0].Text != "hi" || turns[1].Text != "hello!" {
		t.Errorf("turns = %+v, want the logged pair in order", turns)
	}
}

func TestNewSessionEndpoint(t *testing.T) {
	uc := &testChatUsecase{}
	sessions := session.NewStore()
	sessions.Append("s1", entity.ConversationTurn{Sender: entity.SenderUser, Text: "old"})
	engine := newTestEngine(uc, sessions)

	w := performJSON(t, engine, "POST", "/api/session/new", dto.NewSessionRequest{SessionID: "s1"})

	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}

	var body dto.NewSessionResponse
	if err := sonic.Unmarshal(resp.Body(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !body.Success || body.Message != "Started new conversation" {
		t.Errorf("body = %+v, want success payload", body)
	}
	if len(sessions.History("s1")) != 0 {
		t.Error("session log not cleared")
	}
}
