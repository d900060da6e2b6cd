package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

func TestCatalogResolveBuiltin(t *testing.T) {
	catalog := NewCatalog(nil)

	template, err := catalog.Resolve("generate-tests")
	require.NoError(t, err)
	assert.Equal(t, "generate-tests", template.ID)
	assert.NotEmpty(t, template.Body)
}

func TestCatalogResolveNotFound(t *testing.T) {
	catalog := NewCatalog(nil)

	_, err := catalog.Resolve("no-such-template")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogCustomOverridesBuiltin(t *testing.T) {
	custom := []*Template{
		{ID: "generate-tests", Name: "Custom tests", Body: "my custom body"},
	}
	catalog := NewCatalog(custom)

	template, err := catalog.Resolve("generate-tests")
	require.NoError(t, err)
	assert.Equal(t, "my custom body", template.Body)

	// Ids only the custom source has still resolve.
	catalog = NewCatalog([]*Template{{ID: "extra", Body: "extra body"}})
	template, err = catalog.Resolve("extra")
	require.NoError(t, err)
	assert.Equal(t, "extra body", template.Body)
}

func TestCatalogListDeduplicates(t *testing.T) {
	custom := []*Template{
		{ID: "generate-tests", Name: "Custom tests", Body: "my custom body"},
	}
	catalog := NewCatalog(custom)

	seen := 0
	for _, template := range catalog.List() {
		if template.ID == "generate-tests" {
			seen++
			assert.Equal(t, "my custom body", template.Body)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestCatalogListForType(t *testing.T) {
	catalog := NewCatalog(nil)

	for _, template := range catalog.ListFor(appdetect.RustWasm) {
		assert.True(t, template.AppliesToType(appdetect.RustWasm),
			"template %s does not apply to rust-wasm", template.ID)
	}

	ids := make([]string, 0)
	for _, template := range catalog.ListFor(appdetect.RustWasm) {
		ids = append(ids, template.ID)
	}
	assert.Contains(t, ids, "wasm-bindgen-wrapper")
	assert.Contains(t, ids, "wasm-memory-management")
	assert.Contains(t, ids, "wasm-size-analysis")
	assert.Contains(t, ids, "webpack-wasm-optimization")
	assert.NotContains(t, ids, "add-jsdoc")
}

// Spot checks over the per-type built-in sets.
func TestCatalogPerTypeCoverage(t *testing.T) {
	catalog := NewCatalog(nil)

	tests := []struct {
		projectType appdetect.ProjectType
		ids         []string
	}{
		{appdetect.RustNormal, []string{"optimize-memory", "refactor-traits", "async-conversion"}},
		{appdetect.RustWasm, []string{"browser-integration", "wasm-types", "performance-profile"}},
		{appdetect.JavaScript, []string{"optimize-performance", "add-validation"}},
		{appdetect.TypeScript, []string{"generic-implementation", "strict-mode-fix", "utility-types", "declaration-files"}},
		{appdetect.NodeJs, []string{"database-integration", "logging-setup", "authentication", "docker-setup", "performance-monitoring", "package-optimization"}},
	}
	for _, tt := range tests {
		for _, id := range tt.ids {
			template, err := catalog.Resolve(id)
			require.NoError(t, err, "resolving %s", id)
			assert.True(t, template.AppliesToType(tt.projectType),
				"template %s does not apply to %s", id, tt.projectType)
		}
	}
}

func TestBuiltinTemplatesAreWellFormed(t *testing.T) {
	seen := map[string]struct{}{}
	for _, template := range builtinTemplates {
		require.NotEmpty(t, template.ID)
		require.NotEmpty(t, template.Body)

		_, dup := seen[template.ID]
		require.False(t, dup, "duplicate builtin template id %s", template.ID)
		seen[template.ID] = struct{}{}
	}
}
