package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/ZacBi/ai-hedge-fund/prompts"
	"github.com/ZacBi/ai-hedge-fund/prompts/manifest"
)

//go:embed defaults
var defaultsFS embed.FS

var _ prompts.Registry = (*Registry)(nil)

// Registry maps prompt names to their default templates. Populated once at
// construction; no mutation or deletion afterwards, so lookups need no
// synchronization.
type Registry struct {
	templates map[string]*prompts.Template
}

// New loads every embedded default manifest and returns the registry.
func New() (*Registry, error) {
	return NewFromFS(defaultsFS, "defaults")
}

// NewFromFS walks fsys under root, parses every .yaml/.yml manifest, and
// keys each template by its manifest id. Duplicate ids are an error.
func NewFromFS(fsys fs.FS, root string) (*Registry, error) {
	r := &Registry{templates: make(map[string]*prompts.Template)}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		tpl, err := manifest.ParseFS(fsys, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := r.templates[tpl.Name]; dup {
			return fmt.Errorf("%w: duplicate id %q in %s", prompts.ErrInvalidManifest, tpl.Name, path)
		}
		r.templates[tpl.Name] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Lookup returns the default template for name, or ErrNotFound for names the
// registry does not know. O(1) map lookup; returns a clone so callers cannot
// mutate the stored template.
func (r *Registry) Lookup(name string) (*prompts.Template, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", prompts.ErrNotFound, name)
	}
	return tpl.Clone(), nil
}

// Names returns all registered prompt names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered prompts.
func (r *Registry) Len() int { return len(r.templates) }
