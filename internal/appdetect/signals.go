package appdetect

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Marker tables driving the signal extractor. Matching is exact and
// case-sensitive; a dependency, file, script or directory with no entry here
// contributes no Feature. Extending detection means adding a row, not a
// branch.

var dependencyMarkers = map[string]Feature{
	// Rust
	"wasm-bindgen": DependsOn("wasm-bindgen"),
	"web-sys":      DependsOn("web-sys"),
	"js-sys":       DependsOn("js-sys"),
	"serde":        DependsOn("serde"),
	"tokio":        DependsOn("tokio"),
	"async-std":    DependsOn("async-std"),
	"clap":         DependsOn("clap"),

	// JavaScript / TypeScript / Node.js
	"react":       DependsOn("react"),
	"vue":         DependsOn("vue"),
	"next":        DependsOn("next"),
	"vite":        DependsOn("vite"),
	"express":     DependsOn("express"),
	"fastify":     DependsOn("fastify"),
	"koa":         DependsOn("koa"),
	"@types/node": DependsOn("@types/node"),
	"typescript":  DependsOn("typescript"),
	"jest":        DependsOn("jest"),
	"mongoose":    DependsOn("mongoose"),
	"prisma":      DependsOn("prisma"),
	"pg":          DependsOn("pg"),
	"redis":       DependsOn("redis"),
}

var fileMarkers = map[string]Feature{
	"Dockerfile":          HasConfigFile("Dockerfile"),
	"docker-compose.yml":  HasConfigFile("docker-compose.yml"),
	"tsconfig.json":       HasConfigFile("tsconfig.json"),
	"tsconfig.build.json": HasConfigFile("tsconfig.build.json"),
	"typescript.json":     HasConfigFile("typescript.json"),
	"wasm-pack.json":      HasConfigFile("wasm-pack.json"),
	"webpack.config.js":   HasConfigFile("webpack.config.js"),
	"README.md":           HasConfigFile("README.md"),
}

var directoryMarkers = map[string]Feature{
	"tests":     HasDirectory("tests"),
	"test":      HasDirectory("test"),
	"__tests__": HasDirectory("__tests__"),
	"benches":   HasDirectory("benches"),
	"examples":  HasDirectory("examples"),
	"src":       HasDirectory("src"),
}

var scriptMarkers = map[string]Feature{
	"build": HasScript("build"),
	"test":  HasScript("test"),
	"lint":  HasScript("lint"),
	"dev":   HasScript("dev"),
	"start": HasScript("start"),
}

const ciWorkflowDir = ".github/workflows"

func addDependencyFeatures(features featureSet, deps []string) {
	for _, dep := range deps {
		if f, ok := dependencyMarkers[dep]; ok {
			features.add(f)
		}
	}
}

func addScriptFeatures(features featureSet, scripts map[string]string) {
	for name := range scripts {
		if f, ok := scriptMarkers[name]; ok {
			features.add(f)
		}
	}
}

// addEntryFeatures extracts file and directory features from the immediate
// root listing. The only probe beyond the listing is .github/workflows, which
// marks the presence of a CI pipeline.
func addEntryFeatures(features featureSet, root string, entries []fs.DirEntry) {
	for _, entry := range entries {
		if entry.IsDir() {
			if f, ok := directoryMarkers[entry.Name()]; ok {
				features.add(f)
			}
			if entry.Name() == ".github" {
				if info, err := os.Stat(filepath.Join(root, ciWorkflowDir)); err == nil && info.IsDir() {
					features.add(HasConfigFile(ciWorkflowDir))
				}
			}
			continue
		}

		if f, ok := fileMarkers[entry.Name()]; ok {
			features.add(f)
		}
	}
}
