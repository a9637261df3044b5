package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ZacBi/ai-hedge-fund/prompts"

	"golang.org/x/sync/singleflight"
)

// DefaultHost is the Langfuse cloud endpoint.
const DefaultHost = "https://cloud.langfuse.com"

// maxBodySize limits HTTP response body size (1 MB); prompt payloads are small.
const maxBodySize = 1 << 20

// defaultUserAgent is the User-Agent header value for API requests.
const defaultUserAgent = "ai-hedge-fund/1.0"

// defaultCacheTTL matches the Langfuse SDK prompt cache default.
const defaultCacheTTL = 60 * time.Second

// Configured reports whether both secret values are present. Absence of
// either is the signal to skip remote prompt lookup entirely.
func Configured(publicKey, secretKey string) bool {
	return publicKey != "" && secretKey != ""
}

// Prompt is one stored prompt version as returned by the API.
type Prompt struct {
	Name     string
	Version  int
	Type     string // "chat" or "text"
	Messages []prompts.Message
	Labels   []string
}

// Ensures Client implements prompts.OverrideSource.
var _ prompts.OverrideSource = (*Client)(nil)

type cacheEntry struct {
	p         *Prompt
	expiresAt time.Time
}

// Client calls the Langfuse prompts API. Safe for concurrent use.
type Client struct {
	host       string
	publicKey  string
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
	ttl        time.Duration
	mu         sync.RWMutex
	cache      map[string]*cacheEntry
	sf         singleflight.Group
}

// New creates a Client for the given host and key pair. host must be a valid
// URL (DefaultHost for Langfuse cloud). Callers should check Configured
// before constructing; New does not validate the keys against the service.
func New(host, publicKey, secretKey string, opts ...Option) (*Client, error) {
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		host = DefaultHost
	}
	parsed, err := url.Parse(host)
	if err != nil || parsed.Scheme == "" {
		return nil, fmt.Errorf("langfuse: invalid host %q", host)
	}
	c := &Client{
		host:       host,
		publicKey:  publicKey,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		ttl:        defaultCacheTTL,
		cache:      make(map[string]*cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch implements prompts.OverrideSource: it returns the messages of the
// version of name carrying label. Errors wrap prompts.ErrRemoteAbsent or
// prompts.ErrRemoteUnavailable so the resolver can tell the two apart.
func (c *Client) Fetch(ctx context.Context, name, label string) ([]prompts.Message, error) {
	p, err := c.GetPrompt(ctx, name, label)
	if err != nil {
		return nil, err
	}
	return p.Messages, nil
}

// GetPrompt returns the version of name carrying label. Served from the
// (name, label) cache when fresh; otherwise exactly one API round-trip is
// made, with concurrent callers for the same key sharing it.
func (c *Client) GetPrompt(ctx context.Context, name, label string) (*Prompt, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty prompt name", prompts.ErrRemoteAbsent)
	}
	if label == "" {
		label = prompts.DefaultLabel
	}
	key := name + "\x00" + label

	if c.ttl > 0 {
		c.mu.RLock()
		ent, ok := c.cache[key]
		c.mu.RUnlock()
		if ok && time.Now().Before(ent.expiresAt) {
			return ent.p, nil
		}
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		p, err := c.getPrompt(ctx, name, label)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.cache[key] = &cacheEntry{p: p, expiresAt: time.Now().Add(c.ttl)}
			c.mu.Unlock()
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Prompt), nil
}

// CreatePrompt creates a new version of name with the given messages and
// labels. Used by prompt sync; not on the resolution path.
func (c *Client) CreatePrompt(ctx context.Context, name string, msgs []prompts.Message, labels []string) error {
	type apiMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Name   string       `json:"name"`
		Type   string       `json:"type"`
		Prompt []apiMessage `json:"prompt"`
		Labels []string     `json:"labels"`
	}{Name: name, Type: "chat", Labels: labels}
	for _, m := range msgs {
		payload.Prompt = append(payload.Prompt, apiMessage{Role: string(m.Role), Content: m.Content})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("langfuse: encode prompt: %w", err)
	}

	u := c.host + "/api/public/v2/prompts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", prompts.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", prompts.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: create prompt %q: %s", prompts.ErrRemoteUnavailable, name, resp.Status)
	}
	c.Evict(name)
	c.logger.DebugContext(ctx, "created prompt version", "prompt", name, "labels", labels)
	return nil
}

// Evict removes all cached entries for name. Safe for concurrent use.
func (c *Client) Evict(name string) {
	prefix := name + "\x00"
	c.mu.Lock()
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
	c.mu.Unlock()
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", defaultUserAgent)
	req.SetBasicAuth(c.publicKey, c.secretKey)
	return c.httpClient.Do(req)
}

func (c *Client) getPrompt(ctx context.Context, name, label string) (*Prompt, error) {
	u := c.host + "/api/public/v2/prompts/" + url.PathEscape(name) + "?label=" + url.QueryEscape(label)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", prompts.ErrRemoteUnavailable, err)
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", prompts.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q label %q", prompts.ErrRemoteAbsent, name, label)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: get prompt %q: %s", prompts.ErrRemoteUnavailable, name, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", prompts.ErrRemoteUnavailable, err)
	}
	p, err := decodePrompt(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", prompts.ErrRemoteUnavailable, name, err)
	}
	return p, nil
}

// apiPrompt is the wire shape. The prompt field is a string for text prompts
// and a message array for chat prompts, so it is decoded in two steps.
type apiPrompt struct {
	Name    string          `json:"name"`
	Version int             `json:"version"`
	Type    string          `json:"type"`
	Prompt  json.RawMessage `json:"prompt"`
	Labels  []string        `json:"labels"`
}

type apiChatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func decodePrompt(data []byte) (*Prompt, error) {
	var raw apiPrompt
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode prompt: %w", err)
	}
	p := &Prompt{
		Name:    raw.Name,
		Version: raw.Version,
		Type:    raw.Type,
		Labels:  raw.Labels,
	}
	if raw.Type == "text" {
		var text string
		if err := json.Unmarshal(raw.Prompt, &text); err != nil {
			return nil, fmt.Errorf("decode text prompt: %w", err)
		}
		p.Messages = []prompts.Message{{Role: prompts.RoleUser, Content: text}}
		return p, nil
	}
	var msgs []apiChatMessage
	if err := json.Unmarshal(raw.Prompt, &msgs); err != nil {
		return nil, fmt.Errorf("decode chat prompt: %w", err)
	}
	for _, m := range msgs {
		// Newer API versions interleave placeholder entries; only plain
		// messages carry prompt text.
		if m.Type != "" && m.Type != "message" {
			continue
		}
		role, ok := prompts.NormalizeRole(m.Role)
		if !ok {
			return nil, fmt.Errorf("decode chat prompt: invalid role %q", m.Role)
		}
		p.Messages = append(p.Messages, prompts.Message{Role: role, Content: m.Content})
	}
	if len(p.Messages) == 0 {
		return nil, fmt.Errorf("decode chat prompt: no messages")
	}
	return p, nil
}
