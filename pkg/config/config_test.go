package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgen/cmdgen/internal/appdetect"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedFileYieldsDefaultsWithWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[settings\nnope"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Settings.PreferTypeScript = false
	want.Settings.IncludeDocs = false
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadTemplatePacksMissingDir(t *testing.T) {
	custom, warnings := LoadTemplatePacks(filepath.Join(t.TempDir(), "templates"))
	assert.Empty(t, custom)
	assert.Empty(t, warnings)
}

func TestLoadTemplatePacks(t *testing.T) {
	dir := t.TempDir()

	pack := `
templates:
  - id: my-template
    name: My template
    description: A custom template.
    body: "Do something with {{project_name}}:"
    applies_to: [rust, rust-wasm]
  - id: ""
    body: "missing id"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.yaml"), []byte(pack), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{not yaml"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	custom, warnings := LoadTemplatePacks(dir)

	require.Len(t, custom, 1)
	assert.Equal(t, "my-template", custom[0].ID)
	assert.Equal(t, []appdetect.ProjectType{appdetect.RustNormal, appdetect.RustWasm}, custom[0].AppliesTo)
	assert.True(t, custom[0].AppliesToType(appdetect.RustWasm))
	assert.False(t, custom[0].AppliesToType(appdetect.NodeJs))

	// One warning for the unparsable pack, one for the template missing an id.
	assert.Len(t, warnings, 2)
}
