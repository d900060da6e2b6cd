package appdetect

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type ProjectType string

const (
	RustNormal ProjectType = "rust"
	RustWasm   ProjectType = "rust-wasm"
	JavaScript ProjectType = "javascript"
	TypeScript ProjectType = "typescript"
	NodeJs     ProjectType = "nodejs"
	// Unknown is a valid classification, not an error: it means no recognized
	// manifest was found at the root.
	Unknown ProjectType = "unknown"
)

func (pt ProjectType) Display() string {
	switch pt {
	case RustNormal:
		return "Rust"
	case RustWasm:
		return "Rust (WebAssembly)"
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	case NodeJs:
		return "Node.js"
	}

	return "Unknown"
}

type FeatureKind string

const (
	FeatureDependency FeatureKind = "dep"
	FeatureConfigFile FeatureKind = "file"
	FeatureScript     FeatureKind = "script"
	FeatureDirectory  FeatureKind = "dir"
)

// Feature is a discrete signal detected at the project root: a dependency, a
// config file, a script or a directory. Features drive both classification
// refinements and template recommendation.
type Feature struct {
	Kind FeatureKind
	Name string
}

func DependsOn(name string) Feature { return Feature{Kind: FeatureDependency, Name: name} }

func HasConfigFile(name string) Feature { return Feature{Kind: FeatureConfigFile, Name: name} }

func HasScript(name string) Feature { return Feature{Kind: FeatureScript, Name: name} }

func HasDirectory(name string) Feature { return Feature{Kind: FeatureDirectory, Name: name} }

func (f Feature) String() string {
	return string(f.Kind) + ":" + f.Name
}

// Warning records a recoverable anomaly observed during detection, such as a
// manifest that exists but does not parse.
type Warning struct {
	File   string
	Detail string
}

func (w Warning) String() string {
	return w.File + ": " + w.Detail
}

// Project is the result of one detection run. It is produced by a single pass
// over a filesystem snapshot and is not modified afterwards.
type Project struct {
	Root            string
	Name            string
	Type            ProjectType
	Dependencies    []string
	DevDependencies []string
	Scripts         map[string]string
	Features        []Feature
	Warnings        []Warning
}

func (p *Project) HasFeature(f Feature) bool {
	return slices.Contains(p.Features, f)
}

type Options struct {
	// PreferTypeScript upgrades the JavaScript fallback classification to
	// TypeScript. A detected type-system config or dependency is always
	// authoritative; the preference only breaks the tie when neither is
	// present and no Node.js signals apply.
	PreferTypeScript bool
}

type DetectOption func(*Options)

func WithPreferTypeScript() DetectOption {
	return func(o *Options) {
		o.PreferTypeScript = true
	}
}

// Detect classifies the project at root.
//
// The decision procedure is ordered and short-circuits on first match: a Rust
// manifest wins over a JS/TS manifest, since in a polyglot directory Rust
// tooling is the primary build surface. Detection is total: any readable
// directory yields a Project, possibly of type Unknown.
func Detect(root string, options ...DetectOption) (*Project, error) {
	var opts Options
	for _, opt := range options {
		opt(&opts)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading project root: %w", err)
	}

	project := &Project{
		Root: root,
		Name: filepath.Base(root),
		Type: Unknown,
	}
	features := featureSet{}

	if !detectRust(project, root, features) {
		detectJavaScript(project, root, entries, features, opts)
	}

	addEntryFeatures(features, root, entries)
	project.Features = features.sorted()

	log.Printf("detected %s project at %s (%d features, %d warnings)",
		project.Type, root, len(project.Features), len(project.Warnings))
	return project, nil
}

// featureSet accumulates features during a detection run. Sets are unordered;
// sorted() fixes the order so repeated runs yield identical descriptors.
type featureSet map[Feature]struct{}

func (s featureSet) add(f Feature) {
	s[f] = struct{}{}
}

func (s featureSet) sorted() []Feature {
	features := make([]Feature, 0, len(s))
	for f := range s {
		features = append(features, f)
	}
	slices.SortFunc(features, func(a, b Feature) int {
		if a.Kind != b.Kind {
			return strings.Compare(string(a.Kind), string(b.Kind))
		}
		return strings.Compare(a.Name, b.Name)
	})
	return features
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
