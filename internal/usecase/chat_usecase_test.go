package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/catalog"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/pkg/retry"
)

// Mock CompletionClient scripted per call.
type testCompletionClient struct {
	configured bool
	script     []completionResult
	calls      int
	messages   [][]entity.PromptMessage
}

type completionResult struct {
	raw string
	err error
}

func (c *testCompletionClient) Configured() bool {
	return c.configured
}

func (c *testCompletionClient) Complete(ctx context.Context, messages []entity.PromptMessage) (string, error) {
	c.messages = append(c.messages, messages)
	if c.calls >= len(c.script) {
		return "", fmt.Errorf("unexpected call %d", c.calls+1)
	}
	result := c.script[c.calls]
	c.calls++
	return result.raw, result.err
}

// fakeSleep records the backoff schedule instead of waiting it out.
type fakeSleep struct {
	delays []time.Duration
}

func (s *fakeSleep) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func testCatalog() domain.CatalogRepository {
	return catalog.NewWith(
		[]entity.CatalogItem{
			{ID: 101, Name: "Jollof Rice", Price: 4500, VendorName: "The Place"},
			{ID: 102, Name: "Fried Rice", Price: 5200, VendorName: "Green Pepper"},
			{ID: 103, Name: "Pounded Yam", Price: 6000, VendorName: "Yakoyo"},
			{ID: 104, Name: "Suya Platter", Price: 8000, VendorName: "Suya Spot"},
		},
		[]entity.CatalogItem{
			{ID: 901, Name: "Coca-Cola Zero", Price: 800, VendorName: "Coca-Cola", Sponsored: true},
		},
	)
}

func newTestUsecase(t *testing.T, client *testCompletionClient, sleep retry.SleepFunc) domain.ChatUsecase {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc, err := NewChatUsecase(client, testCatalog(), retry.Linear(3, 2*time.Second), sleep, logger)
	if err != nil {
		t.Fatalf("NewChatUsecase failed: %v", err)
	}
	return uc
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name      string
		req       *domain.ChatRequest
		client    *testCompletionClient
		wantErr   bool
		wantText  string
		wantCards []int
		wantCalls int
	}{
		{
			name:    "nil request",
			req:     nil,
			client:  &testCompletionClient{configured: true},
			wantErr: true,
		},
		{
			name:    "empty message and image",
			req:     &domain.ChatRequest{SessionID: "s1"},
			client:  &testCompletionClient{configured: true},
			wantErr: true,
		},
		{
			name:    "whitespace-only message",
			req:     &domain.ChatRequest{SessionID: "s1", Message: "   "},
			client:  &testCompletionClient{configured: true},
			wantErr: true,
		},
		{
			name:      "not configured serves static fallback without calling",
			req:       &domain.ChatRequest{SessionID: "s1", Message: "hi"},
			client:    &testCompletionClient{configured: false},
			wantText:  fallbackNotConfigured,
			wantCalls: 0,
		},
		{
			name: "reply with recommendations",
			req:  &domain.ChatRequest{SessionID: "s1", Message: "what should I eat?"},
			client: &testCompletionClient{configured: true, script: []completionResult{
				{raw: "Try the jollof! ||| [102, 901]"},
			}},
			wantText:  "Try the jollof!",
			wantCards: []int{102, 901},
			wantCalls: 1,
		},
		{
			name: "reply without delimiter has no cards",
			req:  &domain.ChatRequest{SessionID: "s1", Message: "hello"},
			client: &testCompletionClient{configured: true, script: []completionResult{
				{raw: "Hello! How can I help you today?"},
			}},
			wantText:  "Hello! How can I help you today?",
			wantCalls: 1,
		},
		{
			name: "malformed id payload degrades to text only",
			req:  &domain.ChatRequest{SessionID: "s1", Message: "suggest"},
			client: &testCompletionClient{configured: true, script: []completionResult{
				{raw: "Sure thing ||| [102,"},
			}},
			wantText:  "Sure thing",
			wantCalls: 1,
		},
		{
			name: "duplicate and unknown ids",
			req:  &domain.ChatRequest{SessionID: "s1", Message: "suggest"},
			client: &testCompletionClient{configured: true, script: []completionResult{
				{raw: "Picks ||| [102, 102, 999, 101]"},
			}},
			wantText:  "Picks",
			wantCards: []int{102, 101},
			wantCalls: 1,
		},
		{
			name: "image-only request is valid",
			req:  &domain.ChatRequest{SessionID: "s1", Image: "data:image/png;base64,AAAA"},
			client: &testCompletionClient{configured: true, script: []completionResult{
				{raw: "Looks like suya ||| [104]"},
			}},
			wantText:  "Looks like suya",
			wantCards: []int{104},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleep := &fakeSleep{}
			uc := newTestUsecase(t, tt.client, sleep.sleep)

			result, err := uc.Respond(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !domain.IsInvalidInput(err) {
					t.Errorf("expected invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Text != tt.wantText {
				t.Errorf("text = %q, want %q", result.Text, tt.wantText)
			}
			if len(result.Cards) != len(tt.wantCards) {
				t.Fatalf("got %d cards, want %d", len(result.Cards), len(tt.wantCards))
			}
			for i, id := range tt.wantCards {
				if result.Cards[i].ID != id {
					t.Errorf("cards[%d].ID = %d, want %d", i, result.Cards[i].ID, id)
				}
			}
			if tt.client.calls != tt.wantCalls {
				t.Errorf("completion calls = %d, want %d", tt.client.calls, tt.wantCalls)
			}
		})
	}
}

func TestRespondRetriesOnThrottle(t *testing.T) {
	throttled := domain.NewRateLimitedError(errors.New("429 too many requests"))

	client := &testCompletionClient{configured: true, script: []completionResult{
		{err: throttled},
		{err: throttled},
		{raw: "Finally! ||| [101]"},
	}}
	sleep := &fakeSleep{}
	uc := newTestUsecase(t, client, sleep.sleep)

	result, err := uc.Respond(context.Background(), &domain.ChatRequest{SessionID: "s1", Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 3 {
		t.Errorf("completion calls = %d, want 3", client.calls)
	}
	wantDelays := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(sleep.delays) != len(wantDelays) {
		t.Fatalf("got %d sleeps, want %d", len(sleep.delays), len(wantDelays))
	}
	for i, want := range wantDelays {
		if sleep.delays[i] != want {
			t.Errorf("delays[%d] = %v, want %v", i, sleep.delays[i], want)
		}
	}
	if result.Text != "Finally!" {
		t.Errorf("text = %q, want %q", result.Text, "Finally!")
	}
}

func TestRespondThrottleExhaustion(t *testing.T) {
	throttled := domain.NewRateLimitedError(errors.New("429 too many requests"))

	client := &testCompletionClient{configured: true, script: []completionResult{
		{err: throttled},
		{err: throttled},
		{err: throttled},
	}}
	sleep := &fakeSleep{}
	uc := newTestUsecase(t, client, sleep.sleep)

	result, err := uc.Respond(context.Background(), &domain.ChatRequest{SessionID: "s1", Message: "hi"})
	if err != nil {
		t.Fatalf("degraded response must not error: %v", err)
	}

	if client.calls != 3 {
		t.Errorf("completion calls = %d, want 3", client.calls)
	}
	// No sleep after the last attempt.
	if len(sleep.delays) != 2 {
		t.Errorf("got %d sleeps, want 2", len(sleep.delays))
	}
	if result.Text != fallbackBusy {
		t.Errorf("text = %q, want busy fallback", result.Text)
	}
	// The busy fallback pads with the first organic items, never sponsored.
	wantIDs := []int{101, 102, 103}
	if len(result.Cards) != len(wantIDs) {
		t.Fatalf("got %d cards, want %d", len(result.Cards), len(wantIDs))
	}
	for i, id := range wantIDs {
		if result.Cards[i].ID != id {
			t.Errorf("cards[%d].ID = %d, want %d", i, result.Cards[i].ID, id)
		}
	}
}

func TestRespondNonThrottleFailure(t *testing.T) {
	client := &testCompletionClient{configured: true, script: []completionResult{
		{err: errors.New("upstream exploded")},
	}}
	sleep := &fakeSleep{}
	uc := newTestUsecase(t, client, sleep.sleep)

	result, err := uc.Respond(context.Background(), &domain.ChatRequest{SessionID: "s1", Message: "hi"})
	if err != nil {
		t.Fatalf("degraded response must not error: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("completion calls = %d, want 1 (no retry on non-throttle failures)", client.calls)
	}
	if len(sleep.delays) != 0 {
		t.Errorf("got %d sleeps, want 0", len(sleep.delays))
	}
	if result.Text != fallbackGeneric {
		t.Errorf("text = %q, want generic fallback", result.Text)
	}
	if len(result.Cards) != 0 {
		t.Errorf("got %d cards, want 0", len(result.Cards))
	}
}

func TestBuildMessages(t *testing.T) {
	t.Run("history window keeps the most recent turns in order", func(t *testing.T) {
		history := make([]entity.ConversationTurn, 0, 15)
		for i := 0; i < 15; i++ {
			sender := entity.SenderUser
			if i%2 == 1 {
				sender = entity.SenderAssistant
			}
			history = append(history, entity.ConversationTurn{
				Sender: sender,
				Text:   fmt.Sprintf("turn-%d", i),
			})
		}

		messages := buildMessages("system", &domain.ChatRequest{Message: "now", History: history})

		// system + 10 history + current
		if len(messages) != 12 {
			t.Fatalf("got %d messages, want 12", len(messages))
		}
		if messages[0].Role != entity.RoleSystem {
			t.Errorf("messages[0].Role = %q, want system", messages[0].Role)
		}
		if messages[1].Text != "turn-5" {
			t.Errorf("first kept turn = %q, want turn-5", messages[1].Text)
		}
		if messages[10].Text != "turn-14" {
			t.Errorf("last kept turn = %q, want turn-14", messages[10].Text)
		}
		if messages[11].Text != "now" || messages[11].Role != entity.RoleUser {
			t.Errorf("current turn = %+v, want user message %q", messages[11], "now")
		}
	})

	t.Run("sender maps to role", func(t *testing.T) {
		history := []entity.ConversationTurn{
			{Sender: entity.SenderUser, Text: "q"},
			{Sender: entity.SenderAssistant, Text: "a"},
		}

		messages := buildMessages("system", &domain.ChatRequest{Message: "now", History: history})

		if messages[1].Role != entity.RoleUser {
			t.Errorf("messages[1].Role = %q, want user", messages[1].Role)
		}
		if messages[2].Role != entity.RoleAssistant {
			t.Errorf("messages[2].Role = %q, want assistant", messages[2].Role)
		}
	})

	t.Run("image-only turn gets the default prompt text", func(t *testing.T) {
		messages := buildMessages("system", &domain.ChatRequest{Image: "data:image/png;base64,AAAA"})

		current := messages[len(messages)-1]
		if current.Text != imageOnlyPrompt {
			t.Errorf("current.Text = %q, want %q", current.Text, imageOnlyPrompt)
		}
		if current.ImageURL != "data:image/png;base64,AAAA" {
			t.Errorf("current.ImageURL = %q, want the attached image", current.ImageURL)
		}
	})

	t.Run("message plus image keeps user text", func(t *testing.T) {
		messages := buildMessages("system", &domain.ChatRequest{Message: "what is this?", Image: "data:image/png;base64,AAAA"})

		current := messages[len(messages)-1]
		if current.Text != "what is this?" {
			t.Errorf("current.Text = %q, want user text", current.Text)
		}
		if current.ImageURL == "" {
			t.Error("current.ImageURL is empty, want the attached image")
		}
	})
}

func TestParseReply(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tests := []struct {
		name     string
		raw      string
		wantText string
		wantIDs  []int
	}{
		{
			name:     "text and ids",
			raw:      "Try these! ||| [101, 901]",
			wantText: "Try these!",
			wantIDs:  []int{101, 901},
		},
		{
			name:     "no delimiter",
			raw:      "Just chatting, no recommendations.",
			wantText: "Just chatting, no recommendations.",
		},
		{
			name:     "empty id array",
			raw:      "Nothing matches ||| []",
			wantText: "Nothing matches",
			wantIDs:  []int{},
		},
		{
			name:     "malformed payload",
			raw:      "Here you go ||| [101, oops]",
			wantText: "Here you go",
		},
		{
			name:     "extra whitespace around delimiter",
			raw:      "Spaced out    |||    [103]",
			wantText: "Spaced out",
			wantIDs:  []int{103},
		},
		{
			name:     "delimiter only in text segment is split once",
			raw:      "a ||| b ||| [101]",
			wantText: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ids := parseReply(tt.raw, logger)

			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got %d ids, want %d", len(ids), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if ids[i] != want {
					t.Errorf("ids[%d] = %d, want %d", i, ids[i], want)
				}
			}
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	got := dedupeIDs([]int{102, 102, 901, 101, 901})
	want := []int{102, 901, 101}

	if len(got) != len(want) {
		t.Fatalf("got %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
