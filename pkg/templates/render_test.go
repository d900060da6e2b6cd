package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

func TestNewContext(t *testing.T) {
	project := &appdetect.Project{
		Root:         "/work/demo",
		Name:         "demo",
		Type:         appdetect.RustWasm,
		Dependencies: []string{"serde", "wasm-bindgen"},
		Scripts:      map[string]string{"test": "cargo test", "build": "cargo build"},
		Features: []appdetect.Feature{
			appdetect.DependsOn("serde"),
			appdetect.DependsOn("wasm-bindgen"),
		},
	}

	ctx := NewContext(project)

	assert.Equal(t, "demo", ctx["project_name"])
	assert.Equal(t, "Rust (WebAssembly)", ctx["project_type"])
	assert.Equal(t, "/work/demo", ctx["project_path"])
	assert.Equal(t, "dep:serde, dep:wasm-bindgen", ctx["features"])
	assert.Equal(t, "serde, wasm-bindgen", ctx["dependencies"])
	assert.Equal(t, "build, test", ctx["scripts"])
}

func TestRenderSubstitutesKnownTokens(t *testing.T) {
	template := &Template{
		ID:   "demo",
		Body: "Project: {{project_name}} ({{project_type}})",
	}
	ctx := Context{"project_name": "demo", "project_type": "Rust"}

	assert.Equal(t, "Project: demo (Rust)", Render(template, ctx))
}

func TestRenderLeavesUnknownTokensVerbatim(t *testing.T) {
	template := &Template{
		ID:   "demo",
		Body: "{{project_name}} uses {{mystery_token}}",
	}
	ctx := Context{"project_name": "demo"}

	assert.Equal(t, "demo uses {{mystery_token}}", Render(template, ctx))
}

func TestRenderAllSkipsUnresolvableIDs(t *testing.T) {
	catalog := NewCatalog(nil)
	ctx := Context{"project_name": "demo"}

	documents, renderErrors := RenderAll(
		catalog,
		[]string{"generate-tests", "no-such-template", "review-performance"},
		ctx,
	)

	require.Len(t, documents, 2)
	assert.Equal(t, "generate-tests", documents[0].TemplateID)
	assert.Equal(t, "generate-tests.md", documents[0].Filename)
	assert.Equal(t, "review-performance", documents[1].TemplateID)

	require.Len(t, renderErrors, 1)
	assert.Equal(t, "no-such-template", renderErrors[0].TemplateID)
	assert.ErrorIs(t, renderErrors[0], ErrNotFound)
}

func TestRenderAllPreservesRecommendationOrder(t *testing.T) {
	catalog := NewCatalog(nil)
	ids := []string{"review-performance", "generate-tests", "cargo-optimization"}

	documents, renderErrors := RenderAll(catalog, ids, Context{})
	require.Empty(t, renderErrors)
	require.Len(t, documents, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, documents[i].TemplateID)
	}
}
