// Package recommend maps a detected project onto an ordered list of template
// recommendations through a fixed rule table. The table, not the project's
// feature set, controls output order, so recommendations are deterministic for
// an unchanged project descriptor.
package recommend

import (
	"slices"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

// Recommendation suggests a template by id together with the reason it was
// triggered.
type Recommendation struct {
	TemplateID string
	Rationale  string
}

type Options struct {
	// IncludeTests gates test-oriented rules; IncludeDocs gates
	// documentation-oriented ones. Both default to on.
	IncludeTests bool
	IncludeDocs  bool
}

type Option func(*Options)

func WithoutTests() Option {
	return func(o *Options) {
		o.IncludeTests = false
	}
}

func WithoutDocs() Option {
	return func(o *Options) {
		o.IncludeDocs = false
	}
}

// Recommend evaluates the rule table against the project. Every matching rule
// contributes one recommendation; when several rules name the same template id
// only the first occurrence is kept, so the result has unique ids in table
// order. An empty result (for example for an Unknown project) is valid.
func Recommend(project *appdetect.Project, options ...Option) []Recommendation {
	opts := Options{IncludeTests: true, IncludeDocs: true}
	for _, opt := range options {
		opt(&opts)
	}

	seen := map[string]struct{}{}
	recommendations := []Recommendation{}
	for _, r := range rules {
		if !r.matches(project, opts) {
			continue
		}
		if _, dup := seen[r.templateID]; dup {
			continue
		}
		seen[r.templateID] = struct{}{}
		recommendations = append(recommendations, Recommendation{
			TemplateID: r.templateID,
			Rationale:  r.rationale,
		})
	}

	return recommendations
}

type gate int

const (
	gateNone gate = iota
	gateTests
	gateDocs
)

// rule is one row of the recommendation table. A nil types slice means "any
// classified project" (everything except Unknown). feature requires a feature
// to be present, missing requires one to be absent; the zero Feature disables
// either check.
type rule struct {
	templateID string
	rationale  string
	types      []appdetect.ProjectType
	feature    appdetect.Feature
	missing    appdetect.Feature
	gate       gate
}

func (r rule) matches(project *appdetect.Project, opts Options) bool {
	switch r.gate {
	case gateTests:
		if !opts.IncludeTests {
			return false
		}
	case gateDocs:
		if !opts.IncludeDocs {
			return false
		}
	}

	if r.types == nil {
		if project.Type == appdetect.Unknown {
			return false
		}
	} else if !slices.Contains(r.types, project.Type) {
		return false
	}

	if r.feature != (appdetect.Feature{}) && !project.HasFeature(r.feature) {
		return false
	}
	if r.missing != (appdetect.Feature{}) && project.HasFeature(r.missing) {
		return false
	}

	return true
}
