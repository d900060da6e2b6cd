package templates

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

var ErrNotFound = errors.New("template not found")

// Source is a source of command templates.
type Source interface {
	// Name returns the name of the source.
	Name() string
	// ListTemplates returns the source's templates in a deterministic order.
	ListTemplates() []*Template
	// GetTemplate returns a template by id, or an error wrapping ErrNotFound.
	GetTemplate(id string) (*Template, error)
}

type staticSource struct {
	name      string
	templates []*Template
}

func newStaticSource(name string, templates []*Template) *staticSource {
	sorted := slices.Clone(templates)
	slices.SortFunc(sorted, func(a, b *Template) int {
		return strings.Compare(a.ID, b.ID)
	})
	return &staticSource{name: name, templates: sorted}
}

func (s *staticSource) Name() string {
	return s.name
}

func (s *staticSource) ListTemplates() []*Template {
	return slices.Clone(s.templates)
}

func (s *staticSource) GetTemplate(id string) (*Template, error) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%s source: template %s: %w", s.name, id, ErrNotFound)
}

// Catalog resolves template ids across an ordered list of sources. The custom
// source, when present, is consulted before the built-in one, so externally
// supplied templates take precedence over built-ins with the same id. The
// source list is fixed at construction; Resolve performs no registration.
type Catalog struct {
	sources []Source
}

// NewCatalog returns a catalog over the built-in template set, with custom
// templates (possibly none) shadowing built-ins that share an id.
func NewCatalog(custom []*Template) *Catalog {
	sources := make([]Source, 0, 2)
	if len(custom) > 0 {
		sources = append(sources, newStaticSource("custom", custom))
	}
	sources = append(sources, newStaticSource("builtin", builtinTemplates))

	return &Catalog{sources: sources}
}

// Resolve returns the template with the given id from the first source that
// has it.
func (c *Catalog) Resolve(id string) (*Template, error) {
	for _, source := range c.sources {
		template, err := source.GetTemplate(id)
		if err == nil {
			return template, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("resolving template %s: %w", id, err)
		}
	}

	return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// List returns all templates ordered by id, with shadowed built-ins omitted.
func (c *Catalog) List() []*Template {
	seen := map[string]struct{}{}
	templates := []*Template{}
	for _, source := range c.sources {
		for _, t := range source.ListTemplates() {
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			templates = append(templates, t)
		}
	}

	slices.SortFunc(templates, func(a, b *Template) int {
		return strings.Compare(a.ID, b.ID)
	})
	return templates
}

// ListFor returns the templates applicable to the given project type, ordered
// by id.
func (c *Catalog) ListFor(pt appdetect.ProjectType) []*Template {
	templates := []*Template{}
	for _, t := range c.List() {
		if t.AppliesToType(pt) {
			templates = append(templates, t)
		}
	}

	return templates
}
