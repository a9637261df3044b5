package prompts

import "log/slog"

// ResolverOption configures a Resolver (functional options pattern).
type ResolverOption func(*Resolver)

// WithOverrides sets the remote override source. A nil source leaves the
// resolver in the unconfigured state, serving registry defaults only.
func WithOverrides(src OverrideSource) ResolverOption {
	return func(r *Resolver) {
		r.remote = src
	}
}

// WithLabel sets the remote label selecting the active version.
// Default is DefaultLabel ("production").
func WithLabel(label string) ResolverOption {
	return func(r *Resolver) {
		if label != "" {
			r.label = label
		}
	}
}

// WithStrict makes Resolve surface transient remote failures instead of
// silently falling back to the default. Remote absence still falls back:
// a prompt with no labeled version is expected, not an error.
func WithStrict(strict bool) ResolverOption {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithLogger sets the logger used for fallback diagnostics. Default is
// slog.Default(). If l is nil, the default is left unchanged.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
