package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/types"
)

// APIClient wraps a Hertz client for HTTP communication with the
// Chowpal API server.
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client.
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	// Chat calls sit through completion retries server side, so the
	// client timeout has to outlast the worst-case backoff schedule.
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithClientReadTimeout(90*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL ensures the server address has a scheme and no
// trailing path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// do sends one JSON request and decodes the response into out.
func (c *APIClient) do(ctx context.Context, method, uri string, body, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + uri)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%s %s failed with HTTP status %d", method, uri, resp.StatusCode())
	}

	if out != nil {
		if err := sonic.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// Chat sends one chat message and returns the assistant's reply.
func (c *APIClient) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	var out types.ChatResponse
	if err := c.do(ctx, consts.MethodPost, endpointChat, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the session's turn log.
func (c *APIClient) History(ctx context.Context, sessionID string) ([]types.Turn, error) {
	uri := endpointHistory
	if sessionID != "" {
		uri += "?sessionId=" + url.QueryEscape(sessionID)
	}

	var out []types.Turn
	if err := c.do(ctx, consts.MethodGet, uri, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewSession resets the session's turn log.
func (c *APIClient) NewSession(ctx context.Context, sessionID string) error {
	var out types.NewSessionResponse
	if err := c.do(ctx, consts.MethodPost, endpointNewSession, types.NewSessionRequest{SessionID: sessionID}, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("server refused session reset")
	}
	return nil
}

// Menu fetches the full catalog.
func (c *APIClient) Menu(ctx context.Context) ([]types.Card, error) {
	var out types.MenuResponse
	if err := c.do(ctx, consts.MethodGet, endpointMenu, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Vendors fetches the vendor directory.
func (c *APIClient) Vendors(ctx context.Context) ([]types.Vendor, error) {
	var out types.VendorsResponse
	if err := c.do(ctx, consts.MethodGet, endpointVendors, nil, &out); err != nil {
		return nil, err
	}
	return out.Vendors, nil
}

// Ping checks that the server answers its health endpoint.
func (c *APIClient) Ping(ctx context.Context) error {
	return c.do(ctx, consts.MethodGet, endpointHealth, nil, nil)
}
