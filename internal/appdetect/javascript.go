package appdetect

import (
	"encoding/json"
	"io/fs"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

const packageManifest = "package.json"

type packagesJson struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// tsConfigFiles are the type-system config files that classify a JS manifest
// as TypeScript when present at the root.
var tsConfigFiles = []string{
	"tsconfig.json",
	"tsconfig.build.json",
	"typescript.json",
}

// nodeServerDeps are dependencies that mark a package as a Node.js server
// project rather than a browser-only one.
var nodeServerDeps = []string{
	"express",
	"fastify",
	"koa",
	"@types/node",
}

func detectJavaScript(p *Project, root string, entries []fs.DirEntry, features featureSet, opts Options) bool {
	var manifest packagesJson
	raw, ok, err := readManifest(root, packageManifest, json.Unmarshal, &manifest)
	if err != nil {
		warn(p, err)
		return false
	}
	if !ok {
		return false
	}

	if manifest.Name != "" {
		p.Name = manifest.Name
	}
	p.Dependencies = sortedKeys(manifest.Dependencies)
	p.DevDependencies = sortedKeys(manifest.DevDependencies)
	p.Scripts = manifest.Scripts
	addDependencyFeatures(features, p.Dependencies)
	addDependencyFeatures(features, p.DevDependencies)
	addScriptFeatures(features, manifest.Scripts)

	switch {
	case hasTypeScriptConfig(entries) || hasTypeScriptDep(&manifest):
		p.Type = TypeScript
	case isNodeProject(&manifest, raw):
		p.Type = NodeJs
	case opts.PreferTypeScript:
		p.Type = TypeScript
	default:
		p.Type = JavaScript
	}

	return true
}

func hasTypeScriptConfig(entries []fs.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() && slices.Contains(tsConfigFiles, entry.Name()) {
			return true
		}
	}

	return false
}

func hasTypeScriptDep(manifest *packagesJson) bool {
	if _, ok := manifest.Dependencies["typescript"]; ok {
		return true
	}
	_, ok := manifest.DevDependencies["typescript"]
	return ok
}

// isNodeProject checks the Node.js signals: a server-framework dependency, a
// main entry pointing at a .js/.mjs file, or an engines.node constraint. The
// loose fields are probed with gjson to avoid modeling their shapes.
func isNodeProject(manifest *packagesJson, raw []byte) bool {
	for _, dep := range nodeServerDeps {
		if _, ok := manifest.Dependencies[dep]; ok {
			return true
		}
	}

	main := gjson.GetBytes(raw, "main").String()
	if strings.HasSuffix(main, ".js") || strings.HasSuffix(main, ".mjs") {
		return true
	}

	return gjson.GetBytes(raw, "engines.node").Exists()
}
