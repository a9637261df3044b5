package prompts

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution and formatting.
// All use prefix "prompts:" for identification. Callers should use errors.Is.
var (
	// ErrNotFound means the name is absent from the default registry. Every
	// name the application issues must have a compiled-in default, so this is
	// a programming error and is never downgraded.
	ErrNotFound = errors.New("prompts: prompt not found in registry")
	// ErrRemoteAbsent means the remote store has no version of the prompt
	// carrying the requested label. Expected and non-exceptional; the
	// resolver falls back to the default.
	ErrRemoteAbsent = errors.New("prompts: no remote version for prompt")
	// ErrRemoteUnavailable means the remote fetch failed at the transport or
	// service level. The resolver falls back to the default unless strict
	// mode is enabled.
	ErrRemoteUnavailable = errors.New("prompts: remote prompt store unavailable")
	// ErrMissingVariable means Format was called without a variable the
	// template references.
	ErrMissingVariable = errors.New("prompts: required template variable not provided")
	// ErrInvalidManifest means a default manifest file is malformed.
	ErrInvalidManifest = errors.New("prompts: manifest file is malformed")
)

// VariableError wraps a sentinel error with variable and template context.
// Use errors.Is(err, ErrMissingVariable) and errors.As to inspect.
type VariableError struct {
	Variable string
	Template string
	Err      error
}

// Error implements error.
func (e *VariableError) Error() string {
	return fmt.Sprintf("prompts: variable %q in template %q: %v", e.Variable, e.Template, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *VariableError) Unwrap() error { return e.Err }

var _ error = (*VariableError)(nil)
