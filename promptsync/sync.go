package promptsync

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ZacBi/ai-hedge-fund/langfuse"
	"github.com/ZacBi/ai-hedge-fund/prompts"
)

// Store is the remote prompt store surface the syncer needs.
// *langfuse.Client implements it.
type Store interface {
	GetPrompt(ctx context.Context, name, label string) (*langfuse.Prompt, error)
	CreatePrompt(ctx context.Context, name string, msgs []prompts.Message, labels []string) error
}

// Registry lists and supplies the local defaults to push.
// *registry.Registry implements it.
type Registry interface {
	Names() []string
	Lookup(name string) (*prompts.Template, error)
}

// Summary reports what a sync run did.
type Summary struct {
	Created int
	Skipped int
}

// Syncer pushes registry defaults to the remote store.
type Syncer struct {
	store    Store
	registry Registry
	label    string
	logger   *slog.Logger
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLabel sets the label attached to created versions and compared against.
// Default is prompts.DefaultLabel.
func WithLabel(label string) Option {
	return func(s *Syncer) {
		if label != "" {
			s.label = label
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Syncer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Syncer. Panics if store or registry is nil.
func New(store Store, reg Registry, opts ...Option) *Syncer {
	if store == nil || reg == nil {
		panic("promptsync: store and registry must not be nil")
	}
	s := &Syncer{
		store:    store,
		registry: reg,
		label:    prompts.DefaultLabel,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run pushes every registry default whose labeled remote version differs (or
// is missing). Stops at the first create failure so a broken store is not
// hammered for every prompt.
func (s *Syncer) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	for _, name := range s.registry.Names() {
		tpl, err := s.registry.Lookup(name)
		if err != nil {
			return sum, err
		}
		local := remoteMessages(tpl)
		if p, err := s.store.GetPrompt(ctx, name, s.label); err == nil && messagesEqual(p.Messages, local) {
			s.logger.InfoContext(ctx, "skipped (unchanged)", "prompt", name)
			sum.Skipped++
			continue
		}
		// Missing, different, or unreadable: create a fresh labeled version.
		if err := s.store.CreatePrompt(ctx, name, local, []string{s.label}); err != nil {
			return sum, fmt.Errorf("promptsync: %s: %w", name, err)
		}
		s.logger.InfoContext(ctx, "created prompt", "prompt", name, "label", s.label)
		sum.Created++
	}
	return sum, nil
}

// remoteMessages converts a template's messages to the remote placeholder
// convention: every referenced {var} becomes {{var}}. Literal-brace escapes
// ({{ and }}) do not match a placeholder name and pass through untouched.
func remoteMessages(tpl *prompts.Template) []prompts.Message {
	vars := tpl.Vars()
	out := make([]prompts.Message, len(tpl.Messages))
	for i, m := range tpl.Messages {
		content := m.Content
		for _, v := range vars {
			content = strings.ReplaceAll(content, "{"+v+"}", "{{"+v+"}}")
		}
		out[i] = prompts.Message{Role: m.Role, Content: content}
	}
	return out
}

func messagesEqual(a, b []prompts.Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Role != b[i].Role || a[i].Content != b[i].Content {
			return false
		}
	}
	return true
}
