package appdetect

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

const (
	cargoManifest    = "Cargo.toml"
	wasmPackManifest = "wasm-pack.json"
)

// cargoToml models the slice of Cargo.toml that detection needs. Dependency
// values may be version strings or tables, so they are left untyped.
type cargoToml struct {
	Package struct {
		Name     string         `toml:"name"`
		Metadata map[string]any `toml:"metadata"`
	} `toml:"package"`
	Lib struct {
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

func detectRust(p *Project, root string, features featureSet) bool {
	var manifest cargoToml
	_, ok, err := readManifest(root, cargoManifest, toml.Unmarshal, &manifest)
	if err != nil {
		warn(p, err)
		return false
	}
	if !ok {
		return false
	}

	if manifest.Package.Name != "" {
		p.Name = manifest.Package.Name
	}
	p.Dependencies = sortedKeys(manifest.Dependencies)
	p.DevDependencies = sortedKeys(manifest.DevDependencies)
	addDependencyFeatures(features, p.Dependencies)
	addDependencyFeatures(features, p.DevDependencies)

	if isWasmProject(&manifest, root) {
		p.Type = RustWasm
	} else {
		p.Type = RustNormal
	}

	return true
}

// isWasmProject reports whether the crate targets WebAssembly: a wasm-bindgen
// dependency, a cdylib crate-type, wasm-pack metadata in the manifest, or a
// wasm-pack.json file next to it.
func isWasmProject(manifest *cargoToml, root string) bool {
	if _, ok := manifest.Dependencies["wasm-bindgen"]; ok {
		return true
	}

	if slices.Contains(manifest.Lib.CrateType, "cdylib") {
		return true
	}

	if _, ok := manifest.Package.Metadata["wasm-pack"]; ok {
		return true
	}

	_, err := os.Stat(filepath.Join(root, wasmPackManifest))
	return err == nil
}
