package prompts

import (
	"context"
	"errors"
	"log/slog"
)

// DefaultLabel selects the active remote version when no label is configured.
const DefaultLabel = "production"

// OverrideSource fetches the remote version of a named prompt carrying the
// given label. Implementations return an error wrapping ErrRemoteAbsent when
// no such version exists and ErrRemoteUnavailable on transport or service
// failure, so callers can tell the two apart.
type OverrideSource interface {
	Fetch(ctx context.Context, name, label string) ([]Message, error)
}

// Registry supplies the compiled-in default for every prompt name the
// application issues. Lookup returns an error wrapping ErrNotFound for
// unknown names.
type Registry interface {
	Lookup(name string) (*Template, error)
}

// Resolver resolves prompt names to templates: remote override first when an
// OverrideSource is configured, registry default otherwise. Resolvers hold no
// mutable state; concurrent Resolve calls need no synchronization.
type Resolver struct {
	registry Registry
	remote   OverrideSource
	label    string
	strict   bool
	logger   *slog.Logger
}

// NewResolver creates a Resolver over the given registry. With no
// WithOverrides option the resolver always serves defaults.
// Panics if registry is nil.
func NewResolver(registry Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		panic("prompts: Registry must not be nil")
	}
	r := &Resolver{
		registry: registry,
		label:    DefaultLabel,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the template for name. When an override source is
// configured it makes exactly one remote attempt; a fetched override has its
// interpolation syntax translated and wins unconditionally. On remote absence
// or failure the registry default is returned unchanged — remote outages
// never break resolution. The only outward failure is ErrNotFound (and, in
// strict mode, ErrRemoteUnavailable).
func (r *Resolver) Resolve(ctx context.Context, name string) (*Template, error) {
	if r.remote != nil {
		msgs, err := r.remote.Fetch(ctx, name, r.label)
		if err == nil {
			return &Template{Name: name, Messages: TranslateMessages(msgs)}, nil
		}
		if r.strict && !errors.Is(err, ErrRemoteAbsent) {
			return nil, err
		}
		r.logger.DebugContext(ctx, "remote prompt fetch failed, using default",
			"prompt", name, "label", r.label, "error", err)
	}
	return r.registry.Lookup(name)
}
