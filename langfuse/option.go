package langfuse

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client (functional options pattern).
type Option func(*Client)

// WithHTTPClient sets the HTTP client. Default has 30s timeout. If hc is nil,
// the default client is left unchanged.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCacheTTL sets how long fetched prompts are served from cache. Default
// is 60 seconds. TTL <= 0 disables caching: every GetPrompt is an API call.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		c.ttl = d
	}
}

// WithLogger sets the logger. Default is slog.Default(). If l is nil, the
// default is left unchanged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
