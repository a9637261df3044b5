package manifest

import (
	"fmt"
	"io/fs"

	"github.com/ZacBi/ai-hedge-fund/prompts"

	"gopkg.in/yaml.v3"
)

// fileManifest is the YAML manifest shape bound directly to domain types.
type fileManifest struct {
	ID          string `yaml:"id"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Messages    []struct {
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
	} `yaml:"messages"`
}

// ParseBytes parses a YAML manifest and returns a Template.
func ParseBytes(data []byte) (*prompts.Template, error) {
	var m fileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", prompts.ErrInvalidManifest, err)
	}
	return buildTemplate(&m)
}

// ParseFS reads and parses a manifest from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) (*prompts.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read fs: %w", err)
	}
	return ParseBytes(data)
}

func buildTemplate(m *fileManifest) (*prompts.Template, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("%w: missing id", prompts.ErrInvalidManifest)
	}
	if len(m.Messages) == 0 {
		return nil, fmt.Errorf("%w: missing messages", prompts.ErrInvalidManifest)
	}
	msgs := make([]prompts.Message, 0, len(m.Messages))
	for i, msg := range m.Messages {
		role, ok := prompts.NormalizeRole(msg.Role)
		if !ok {
			return nil, fmt.Errorf("%w: message %d: invalid role %q", prompts.ErrInvalidManifest, i, msg.Role)
		}
		msgs = append(msgs, prompts.Message{Role: role, Content: msg.Content})
	}
	return &prompts.Template{
		Name:     m.ID,
		Version:  m.Version,
		Messages: msgs,
	}, nil
}
