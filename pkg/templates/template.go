// Package templates holds the built-in command template catalog and renders
// template bodies against a detected project.
package templates

import (
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

// Template is a named, placeholder-bearing document body associated with one
// or more project types. Identity is ID; a custom template sharing an id with
// a built-in shadows it.
type Template struct {
	ID string `yaml:"id"`

	// Name is the friendly short name of the template.
	Name string `yaml:"name"`

	// Description is a longer description of what the template asks for.
	Description string `yaml:"description,omitempty"`

	// Body is the template text. Recognized {{placeholder}} tokens are
	// substituted at render time.
	Body string `yaml:"body"`

	// AppliesTo lists the project types the template is meant for. Empty
	// means the template applies to any type.
	AppliesTo []appdetect.ProjectType `yaml:"applies_to,omitempty"`
}

// Filename is the name under which a rendered copy of the template is
// persisted by the caller.
func (t *Template) Filename() string {
	return t.ID + ".md"
}

func (t *Template) AppliesToType(pt appdetect.ProjectType) bool {
	return len(t.AppliesTo) == 0 || slices.Contains(t.AppliesTo, pt)
}

// Display writes a string representation of the template suitable for display.
func (t *Template) Display(writer io.Writer) error {
	tabs := tabwriter.NewWriter(writer, 0, 8, 1, ' ', 0)

	types := make([]string, 0, len(t.AppliesTo))
	for _, pt := range t.AppliesTo {
		types = append(types, string(pt))
	}

	text := [][]string{
		{"Id", ":", t.ID},
		{"Name", ":", t.Name},
		{"Description", ":", t.Description},
		{"AppliesTo", ":", strings.Join(types, ", ")},
	}

	for _, line := range text {
		if _, err := tabs.Write([]byte(strings.Join(line, "\t") + "\n")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}
