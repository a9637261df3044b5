package prompts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapRegistry is a minimal Registry for resolver tests.
type mapRegistry map[string]*Template

func (m mapRegistry) Lookup(name string) (*Template, error) {
	tpl, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrNotFound)
	}
	return tpl.Clone(), nil
}

// fakeSource records Fetch calls and serves a fixed response.
type fakeSource struct {
	msgs  []Message
	err   error
	calls int
	label string
}

func (f *fakeSource) Fetch(_ context.Context, _, label string) ([]Message, error) {
	f.calls++
	f.label = label
	if f.err != nil {
		return nil, f.err
	}
	return f.msgs, nil
}

func testRegistry() mapRegistry {
	return mapRegistry{
		"hedge-fund/ben_graham": {
			Name:     "hedge-fund/ben_graham",
			Messages: []Message{{Role: RoleSystem, Content: "Default for {ticker}."}},
		},
	}
}

func TestResolve_NoOverrideSourceServesDefault(t *testing.T) {
	t.Parallel()
	r := NewResolver(testRegistry())
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	require.Len(t, tpl.Messages, 1)
	assert.Equal(t, "Default for {ticker}.", tpl.Messages[0].Content)
}

func TestResolve_OverrideWinsAndIsTranslated(t *testing.T) {
	t.Parallel()
	src := &fakeSource{msgs: []Message{{Role: RoleSystem, Content: "Override for {{ticker}}."}}}
	r := NewResolver(testRegistry(), WithOverrides(src))
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	require.Len(t, tpl.Messages, 1)
	assert.Equal(t, "Override for {ticker}.", tpl.Messages[0].Content)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, DefaultLabel, src.label)
}

func TestResolve_MalformedOverridePassesThrough(t *testing.T) {
	t.Parallel()
	src := &fakeSource{msgs: []Message{{Role: RoleUser, Content: "Broken {{ticker marker"}}}
	r := NewResolver(testRegistry(), WithOverrides(src))
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	assert.Equal(t, "Broken {{ticker marker", tpl.Messages[0].Content)
}

func TestResolve_RemoteAbsentFallsBack(t *testing.T) {
	t.Parallel()
	src := &fakeSource{err: fmt.Errorf("prompt: %w", ErrRemoteAbsent)}
	r := NewResolver(testRegistry(), WithOverrides(src))
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	assert.Equal(t, "Default for {ticker}.", tpl.Messages[0].Content)
	assert.Equal(t, 1, src.calls)
}

func TestResolve_RemoteUnavailableFallsBack(t *testing.T) {
	t.Parallel()
	src := &fakeSource{err: fmt.Errorf("fetch: %w", ErrRemoteUnavailable)}
	r := NewResolver(testRegistry(), WithOverrides(src))
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	assert.Equal(t, "Default for {ticker}.", tpl.Messages[0].Content)
}

func TestResolve_StrictSurfacesUnavailable(t *testing.T) {
	t.Parallel()
	src := &fakeSource{err: fmt.Errorf("fetch: %w", ErrRemoteUnavailable)}
	r := NewResolver(testRegistry(), WithOverrides(src), WithStrict(true))
	_, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestResolve_StrictStillFallsBackOnAbsent(t *testing.T) {
	t.Parallel()
	src := &fakeSource{err: fmt.Errorf("prompt: %w", ErrRemoteAbsent)}
	r := NewResolver(testRegistry(), WithOverrides(src), WithStrict(true))
	tpl, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	assert.Equal(t, "Default for {ticker}.", tpl.Messages[0].Content)
}

func TestResolve_UnknownNameReturnsNotFound(t *testing.T) {
	t.Parallel()
	src := &fakeSource{err: fmt.Errorf("prompt: %w", ErrRemoteAbsent)}
	r := NewResolver(testRegistry(), WithOverrides(src))
	_, err := r.Resolve(context.Background(), "hedge-fund/unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_CustomLabel(t *testing.T) {
	t.Parallel()
	src := &fakeSource{msgs: []Message{{Role: RoleSystem, Content: "staging copy"}}}
	r := NewResolver(testRegistry(), WithOverrides(src), WithLabel("staging"))
	_, err := r.Resolve(context.Background(), "hedge-fund/ben_graham")
	require.NoError(t, err)
	assert.Equal(t, "staging", src.label)
}

func TestNewResolver_NilRegistryPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewResolver(nil) })
}
