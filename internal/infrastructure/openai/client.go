// Package openai implements the completion client against Azure OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/config"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// client is the Azure OpenAI implementation of domain.CompletionClient.
// With missing credentials api stays nil and the client reports itself
// unconfigured; it never attempts the network.
type client struct {
	api        *goopenai.Client
	deployment string
	maxTokens  int
	logger     *slog.Logger
}

// NewClient creates a completion client for the configured deployment.
func NewClient(cfg config.AzureOpenAIConfig, logger *slog.Logger) domain.CompletionClient {
	c := &client{
		deployment: cfg.Deployment,
		maxTokens:  cfg.MaxTokens,
		logger:     logger,
	}

	if !cfg.Configured() {
		logger.Warn("azure openai credentials missing, chat will serve static fallback")
		return c
	}

	apiCfg := goopenai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		apiCfg.APIVersion = cfg.APIVersion
	}
	// Route every model name to the single configured deployment.
	deployment := cfg.Deployment
	apiCfg.AzureModelMapperFunc = func(model string) string {
		return deployment
	}

	c.api = goopenai.NewClientWithConfig(apiCfg)

	logger.Info("azure openai client created",
		"endpoint", cfg.Endpoint,
		"deployment", cfg.Deployment,
		"api_version", cfg.APIVersion,
	)

	return c
}

// Configured reports whether the client holds working credentials.
func (c *client) Configured() bool {
	return c.api != nil
}

// Complete sends the assembled prompt and returns the raw model text.
func (c *client) Complete(ctx context.Context, messages []entity.PromptMessage) (string, error) {
	if c.api == nil {
		return "", domain.ErrNotConfigured
	}

	reqMsgs := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if m.ImageURL != "" {
			reqMsgs = append(reqMsgs, goopenai.ChatCompletionMessage{
				Role: m.Role,
				MultiContent: []goopenai.ChatMessagePart{
					{Type: goopenai.ChatMessagePartTypeText, Text: m.Text},
					{
						Type:     goopenai.ChatMessagePartTypeImageURL,
						ImageURL: &goopenai.ChatMessageImageURL{URL: m.ImageURL},
					},
				},
			})
			continue
		}
		reqMsgs = append(reqMsgs, goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     c.deployment,
		Messages:  reqMsgs,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", c.mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// mapError tags throttling responses so the orchestrator can dispatch
// on errors.Is(err, domain.ErrRateLimited) instead of status fields.
func (c *client) mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return domain.NewRateLimitedError(err)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return domain.NewRateLimitedError(err)
	}

	return fmt.Errorf("completion request failed: %w", err)
}
