package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

func project(pt appdetect.ProjectType, features ...appdetect.Feature) *appdetect.Project {
	return &appdetect.Project{
		Root:     "/tmp/demo",
		Name:     "demo",
		Type:     pt,
		Features: features,
	}
}

func templateIDs(recommendations []Recommendation) []string {
	ids := make([]string, 0, len(recommendations))
	for _, rec := range recommendations {
		ids = append(ids, rec.TemplateID)
	}
	return ids
}

func TestRecommendRustNormal(t *testing.T) {
	ids := templateIDs(Recommend(project(appdetect.RustNormal)))

	assert.Contains(t, ids, "review-performance")
	assert.Contains(t, ids, "generate-tests")
	assert.Contains(t, ids, "cargo-optimization")
	assert.NotContains(t, ids, "wasm-bindgen-wrapper")
}

func TestRecommendRustWasm(t *testing.T) {
	recommendations := Recommend(project(
		appdetect.RustWasm,
		appdetect.DependsOn("wasm-bindgen"),
	))
	ids := templateIDs(recommendations)

	assert.Contains(t, ids, "wasm-bindgen-wrapper")
	assert.Contains(t, ids, "js-binding-generator")
	assert.NotContains(t, ids, "add-jsdoc")
}

func TestRecommendTypeScriptReact(t *testing.T) {
	ids := templateIDs(Recommend(project(
		appdetect.TypeScript,
		appdetect.DependsOn("react"),
	)))

	assert.Contains(t, ids, "add-types")
	assert.Contains(t, ids, "react-component-generator")
}

func TestRecommendNodeExpress(t *testing.T) {
	ids := templateIDs(Recommend(project(
		appdetect.NodeJs,
		appdetect.DependsOn("express"),
	)))

	assert.Contains(t, ids, "express-middleware")
	assert.Contains(t, ids, "express-route-generator")
	assert.NotContains(t, ids, "add-types")
}

func TestRecommendUnknownIsEmpty(t *testing.T) {
	assert.Empty(t, Recommend(project(appdetect.Unknown)))
}

// A featureless project of each type gets its full base template set, in
// table order. documentation-generator trails because no README is present.
func TestRecommendBaseSets(t *testing.T) {
	tests := []struct {
		name        string
		projectType appdetect.ProjectType
		want        []string
	}{
		{
			name:        "RustNormal",
			projectType: appdetect.RustNormal,
			want: []string{
				"review-performance", "generate-tests", "add-documentation",
				"optimize-memory", "add-error-handling", "refactor-traits",
				"cargo-optimization", "async-conversion",
				"documentation-generator",
			},
		},
		{
			name:        "RustWasm",
			projectType: appdetect.RustWasm,
			want: []string{
				"review-performance", "add-documentation", "cargo-optimization",
				"wasm-bindgen-wrapper", "wasm-optimize", "js-interop",
				"wasm-memory-management", "wasm-pack-config",
				"browser-integration", "wasm-types", "performance-profile",
				"generate-tests", "wasm-size-analysis",
				"documentation-generator",
			},
		},
		{
			name:        "JavaScript",
			projectType: appdetect.JavaScript,
			want: []string{
				"add-jsdoc", "modernize-syntax", "convert-promises",
				"add-error-handling", "generate-tests",
				"optimize-performance", "add-validation",
				"documentation-generator",
			},
		},
		{
			name:        "TypeScript",
			projectType: appdetect.TypeScript,
			want: []string{
				"add-error-handling", "generate-tests",
				"add-types", "interface-design", "generic-implementation",
				"strict-mode-fix", "type-guards", "utility-types",
				"declaration-files", "tsconfig-optimization",
				"documentation-generator",
			},
		},
		{
			name:        "NodeJs",
			projectType: appdetect.NodeJs,
			want: []string{
				"add-jsdoc", "convert-promises", "add-error-handling",
				"generate-tests",
				"express-middleware", "api-endpoint", "database-integration",
				"environment-config", "logging-setup", "authentication",
				"docker-setup", "performance-monitoring", "package-optimization",
				"documentation-generator",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templateIDs(Recommend(project(tt.projectType))))
		})
	}
}

func TestRecommendFeatureRules(t *testing.T) {
	tests := []struct {
		name    string
		project *appdetect.Project
		wantID  string
	}{
		{
			name:    "TokioTriggersAsyncRefactor",
			project: project(appdetect.RustNormal, appdetect.DependsOn("tokio")),
			wantID:  "async-refactor",
		},
		{
			name:    "SerdeTriggersSerializationHelper",
			project: project(appdetect.RustNormal, appdetect.DependsOn("serde")),
			wantID:  "serialization-helper",
		},
		{
			name:    "DockerfileTriggersDockerOptimization",
			project: project(appdetect.JavaScript, appdetect.HasConfigFile("Dockerfile")),
			wantID:  "docker-optimization",
		},
		{
			name:    "WorkflowsTriggerCiEnhancement",
			project: project(appdetect.NodeJs, appdetect.HasConfigFile(".github/workflows")),
			wantID:  "ci-cd-enhancement",
		},
		{
			name:    "MissingReadmeTriggersDocumentationGenerator",
			project: project(appdetect.RustNormal),
			wantID:  "documentation-generator",
		},
		{
			name:    "WebpackConfigTriggersWebpackWasmOptimization",
			project: project(appdetect.RustWasm, appdetect.HasConfigFile("webpack.config.js")),
			wantID:  "webpack-wasm-optimization",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, templateIDs(Recommend(tt.project)), tt.wantID)
		})
	}
}

func TestRecommendReadmePresentSuppressesDocumentationGenerator(t *testing.T) {
	ids := templateIDs(Recommend(project(
		appdetect.RustNormal,
		appdetect.HasConfigFile("README.md"),
	)))

	assert.NotContains(t, ids, "documentation-generator")
}

func TestRecommendUniqueAndStable(t *testing.T) {
	// mongoose and prisma both map to database-model-generator; only the
	// first occurrence may survive.
	p := project(
		appdetect.NodeJs,
		appdetect.DependsOn("express"),
		appdetect.DependsOn("mongoose"),
		appdetect.DependsOn("prisma"),
		appdetect.DependsOn("jest"),
	)

	first := Recommend(p)
	second := Recommend(p)
	require.Equal(t, first, second)

	seen := map[string]struct{}{}
	for _, rec := range first {
		_, dup := seen[rec.TemplateID]
		require.False(t, dup, "duplicate template id %s", rec.TemplateID)
		seen[rec.TemplateID] = struct{}{}
	}

	assert.Contains(t, templateIDs(first), "database-model-generator")
}

func TestRecommendGates(t *testing.T) {
	p := project(appdetect.RustNormal, appdetect.HasDirectory("tests"))

	withTests := templateIDs(Recommend(p))
	assert.Contains(t, withTests, "generate-tests")
	assert.Contains(t, withTests, "run-specific-test")
	assert.Contains(t, withTests, "add-documentation")

	withoutTests := templateIDs(Recommend(p, WithoutTests()))
	assert.NotContains(t, withoutTests, "generate-tests")
	assert.NotContains(t, withoutTests, "run-specific-test")

	withoutDocs := templateIDs(Recommend(p, WithoutDocs()))
	assert.NotContains(t, withoutDocs, "add-documentation")
	assert.NotContains(t, withoutDocs, "documentation-generator")
}
