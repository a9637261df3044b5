package manifest

import (
	"testing"
	"testing/fstest"

	"github.com/ZacBi/ai-hedge-fund/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const validManifest = `
id: hedge-fund/ben_graham
version: "1"
description: Ben Graham value analysis.
messages:
  - role: system
    content: You are Ben Graham.
  - role: human
    content: "Analyze {ticker} using {analysis_data}."
`

func TestParseBytes(t *testing.T) {
	t.Parallel()
	tpl, err := ParseBytes([]byte(validManifest))
	require.NoError(t, err)
	assert.Equal(t, "hedge-fund/ben_graham", tpl.Name)
	assert.Equal(t, "1", tpl.Version)
	require.Len(t, tpl.Messages, 2)
	assert.Equal(t, prompts.RoleSystem, tpl.Messages[0].Role)
	// "human" is an accepted alias and normalizes to user.
	assert.Equal(t, prompts.RoleUser, tpl.Messages[1].Role)
	assert.Equal(t, "Analyze {ticker} using {analysis_data}.", tpl.Messages[1].Content)
}

func TestParseBytes_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", ":\n\t- broken"},
		{"missing id", "messages:\n  - role: system\n    content: hi\n"},
		{"missing messages", "id: a/b\n"},
		{"unknown role", "id: a/b\nmessages:\n  - role: tool\n    content: hi\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, prompts.ErrInvalidManifest)
		})
	}
}

func TestParseFS(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"defaults/ben_graham.yaml": {Data: []byte(validManifest)},
	}
	tpl, err := ParseFS(fsys, "defaults/ben_graham.yaml")
	require.NoError(t, err)
	assert.Equal(t, "hedge-fund/ben_graham", tpl.Name)

	_, err = ParseFS(fsys, "defaults/nope.yaml")
	assert.Error(t, err)
}
