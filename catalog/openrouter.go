package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ProviderOpenRouter is the provider name for rows managed by Refresh.
const ProviderOpenRouter = "OpenRouter"

// DefaultModelsURL is the upstream OpenRouter model catalog endpoint.
const DefaultModelsURL = "https://openrouter.ai/api/v1/models"

// ErrUpstream indicates the upstream model catalog could not be fetched.
var ErrUpstream = errors.New("catalog: upstream model fetch failed")

// openRouterMaxBody limits the catalog response size (4 MB).
const openRouterMaxBody = 4 << 20

// OpenRouterClient fetches the live model list from OpenRouter.
type OpenRouterClient struct {
	url        string
	httpClient *http.Client
}

// OpenRouterOption configures an OpenRouterClient.
type OpenRouterOption func(*OpenRouterClient)

// WithModelsURL overrides the catalog endpoint (tests).
func WithModelsURL(u string) OpenRouterOption {
	return func(c *OpenRouterClient) {
		if u != "" {
			c.url = u
		}
	}
}

// WithOpenRouterHTTPClient sets the HTTP client. Default has 30s timeout.
func WithOpenRouterHTTPClient(hc *http.Client) OpenRouterOption {
	return func(c *OpenRouterClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewOpenRouterClient creates a client for the OpenRouter model catalog.
func NewOpenRouterClient(opts ...OpenRouterOption) *OpenRouterClient {
	c := &OpenRouterClient{
		url:        DefaultModelsURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListModels returns the current upstream catalog. OpenRouter returns a list
// of {id, name, ...}; id becomes the model name and name the display name.
func (c *OpenRouterClient) ListModels(ctx context.Context) ([]ModelRef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", "ai-hedge-fund/1.0")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, openRouterMaxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}
	var body struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrUpstream, err)
	}
	out := make([]ModelRef, 0, len(body.Data))
	for _, m := range body.Data {
		if m.ID == "" {
			continue
		}
		name := m.Name
		if name == "" {
			name = m.ID
		}
		out = append(out, ModelRef{DisplayName: name, ModelName: m.ID})
	}
	return out, nil
}

// Refresh replaces all OpenRouter-provided rows with the current upstream
// catalog. Returns (deleted, inserted).
func Refresh(ctx context.Context, upstream *OpenRouterClient, store *Store) (int, int, error) {
	models, err := upstream.ListModels(ctx)
	if err != nil {
		return 0, 0, err
	}
	return store.ReplaceProvider(ctx, ProviderOpenRouter, "openrouter", models)
}
