package templates

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

// Context is the read-only placeholder mapping used to render template
// bodies. It is derived once per detected project.
type Context map[string]string

// NewContext builds the render context for a project descriptor.
func NewContext(project *appdetect.Project) Context {
	features := make([]string, 0, len(project.Features))
	for _, f := range project.Features {
		features = append(features, f.String())
	}

	ctx := Context{
		"project_name": project.Name,
		"project_type": project.Type.Display(),
		"project_path": project.Root,
		"features":     strings.Join(features, ", "),
		"dependencies": strings.Join(project.Dependencies, ", "),
	}

	names := make([]string, 0, len(project.Scripts))
	for name := range project.Scripts {
		names = append(names, name)
	}
	slices.Sort(names)
	ctx["scripts"] = strings.Join(names, ", ")

	return ctx
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// Render substitutes recognized {{placeholder}} tokens in the template body
// with context values. An unrecognized token is left verbatim rather than
// treated as an error, so custom template authors are not broken by tokens
// this version does not know about.
func Render(t *Template, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(t.Body, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := ctx[name]; ok {
			return value
		}
		return token
	})
}

// Document is one rendered template, ready for the caller to persist.
type Document struct {
	TemplateID string
	Filename   string
	Content    string
}

// RenderError reports a template in a batch that could not be rendered.
type RenderError struct {
	TemplateID string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.TemplateID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// RenderAll renders one document per template id. An id that cannot be
// resolved skips that document and is reported in the error list; the rest of
// the batch still renders.
func RenderAll(catalog *Catalog, ids []string, ctx Context) ([]Document, []*RenderError) {
	documents := []Document{}
	var renderErrors []*RenderError
	for _, id := range ids {
		template, err := catalog.Resolve(id)
		if err != nil {
			renderErrors = append(renderErrors, &RenderError{TemplateID: id, Err: err})
			continue
		}

		documents = append(documents, Document{
			TemplateID: template.ID,
			Filename:   template.Filename(),
			Content:    Render(template, ctx),
		})
	}

	return documents, renderErrors
}
