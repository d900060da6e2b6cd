package recommend

import "github.com/cmdgen/cmdgen/internal/appdetect"

var (
	rustTypes = []appdetect.ProjectType{appdetect.RustNormal, appdetect.RustWasm}
	webTypes  = []appdetect.ProjectType{appdetect.JavaScript, appdetect.TypeScript}
	jsTypes   = []appdetect.ProjectType{appdetect.JavaScript, appdetect.TypeScript, appdetect.NodeJs}
)

// rules is evaluated top to bottom: per-type base rules first, then
// feature-triggered refinements, then rules that apply to any classified
// project. Order here is the output order.
var rules = []rule{
	// Rust base set.
	{
		templateID: "review-performance",
		rationale:  "Rust project",
		types:      rustTypes,
	},
	{
		templateID: "generate-tests",
		rationale:  "Rust project",
		types:      []appdetect.ProjectType{appdetect.RustNormal},
		gate:       gateTests,
	},
	{
		templateID: "add-documentation",
		rationale:  "Rust project",
		types:      rustTypes,
		gate:       gateDocs,
	},
	{
		templateID: "optimize-memory",
		rationale:  "Rust project",
		types:      []appdetect.ProjectType{appdetect.RustNormal},
	},
	{
		templateID: "add-error-handling",
		rationale:  "Rust project",
		types:      []appdetect.ProjectType{appdetect.RustNormal},
	},
	{
		templateID: "refactor-traits",
		rationale:  "Rust project",
		types:      []appdetect.ProjectType{appdetect.RustNormal},
	},
	{
		templateID: "cargo-optimization",
		rationale:  "Rust project",
		types:      rustTypes,
	},
	{
		templateID: "async-conversion",
		rationale:  "Rust project",
		types:      []appdetect.ProjectType{appdetect.RustNormal},
	},

	// Rust WASM base set.
	{
		templateID: "wasm-bindgen-wrapper",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "wasm-optimize",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "js-interop",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "wasm-memory-management",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "wasm-pack-config",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "browser-integration",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "wasm-types",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "performance-profile",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "generate-tests",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
		gate:       gateTests,
	},

	// JavaScript base set.
	{
		templateID: "add-jsdoc",
		rationale:  "JavaScript project",
		types:      []appdetect.ProjectType{appdetect.JavaScript, appdetect.NodeJs},
		gate:       gateDocs,
	},
	{
		templateID: "modernize-syntax",
		rationale:  "JavaScript project",
		types:      []appdetect.ProjectType{appdetect.JavaScript},
	},
	{
		templateID: "convert-promises",
		rationale:  "JavaScript project",
		types:      []appdetect.ProjectType{appdetect.JavaScript, appdetect.NodeJs},
	},
	{
		templateID: "add-error-handling",
		rationale:  "JavaScript project",
		types:      jsTypes,
	},
	{
		templateID: "generate-tests",
		rationale:  "JavaScript project",
		types:      jsTypes,
		gate:       gateTests,
	},
	{
		templateID: "optimize-performance",
		rationale:  "JavaScript project",
		types:      []appdetect.ProjectType{appdetect.JavaScript},
	},
	{
		templateID: "add-validation",
		rationale:  "JavaScript project",
		types:      []appdetect.ProjectType{appdetect.JavaScript},
	},

	// TypeScript base set.
	{
		templateID: "add-types",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "interface-design",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "generic-implementation",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "strict-mode-fix",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "type-guards",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "utility-types",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "declaration-files",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		templateID: "tsconfig-optimization",
		rationale:  "TypeScript project",
		types:      []appdetect.ProjectType{appdetect.TypeScript},
	},

	// Node.js base set.
	{
		templateID: "express-middleware",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "api-endpoint",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "database-integration",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "environment-config",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "logging-setup",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "authentication",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "docker-setup",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "performance-monitoring",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		templateID: "package-optimization",
		rationale:  "Node.js project",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
	},

	// Feature-triggered refinements.
	{
		templateID: "async-refactor",
		rationale:  "project depends on tokio",
		types:      rustTypes,
		feature:    appdetect.DependsOn("tokio"),
	},
	{
		templateID: "async-refactor",
		rationale:  "project depends on async-std",
		types:      rustTypes,
		feature:    appdetect.DependsOn("async-std"),
	},
	{
		templateID: "serialization-helper",
		rationale:  "project depends on serde",
		types:      rustTypes,
		feature:    appdetect.DependsOn("serde"),
	},
	{
		templateID: "run-specific-test",
		rationale:  "project has a tests directory",
		types:      rustTypes,
		feature:    appdetect.HasDirectory("tests"),
		gate:       gateTests,
	},
	{
		templateID: "run-specific-test",
		rationale:  "project has a benches directory",
		types:      rustTypes,
		feature:    appdetect.HasDirectory("benches"),
		gate:       gateTests,
	},
	{
		templateID: "js-binding-generator",
		rationale:  "project depends on wasm-bindgen",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
		feature:    appdetect.DependsOn("wasm-bindgen"),
	},
	{
		templateID: "wasm-size-analysis",
		rationale:  "Rust WebAssembly project",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		templateID: "webpack-wasm-optimization",
		rationale:  "project has a webpack config",
		types:      []appdetect.ProjectType{appdetect.RustWasm},
		feature:    appdetect.HasConfigFile("webpack.config.js"),
	},
	{
		templateID: "react-component-generator",
		rationale:  "project depends on react",
		types:      webTypes,
		feature:    appdetect.DependsOn("react"),
	},
	{
		templateID: "vue-component-generator",
		rationale:  "project depends on vue",
		types:      webTypes,
		feature:    appdetect.DependsOn("vue"),
	},
	{
		templateID: "express-route-generator",
		rationale:  "project depends on express",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
		feature:    appdetect.DependsOn("express"),
	},
	{
		templateID: "database-model-generator",
		rationale:  "project depends on mongoose",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
		feature:    appdetect.DependsOn("mongoose"),
	},
	{
		templateID: "database-model-generator",
		rationale:  "project depends on prisma",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
		feature:    appdetect.DependsOn("prisma"),
	},
	{
		templateID: "database-model-generator",
		rationale:  "project depends on pg",
		types:      []appdetect.ProjectType{appdetect.NodeJs},
		feature:    appdetect.DependsOn("pg"),
	},
	{
		templateID: "test-coverage-analysis",
		rationale:  "project depends on jest",
		types:      jsTypes,
		feature:    appdetect.DependsOn("jest"),
		gate:       gateTests,
	},
	{
		templateID: "bundle-analysis",
		rationale:  "project depends on vite",
		types:      webTypes,
		feature:    appdetect.DependsOn("vite"),
	},

	// Rules for any classified project.
	{
		templateID: "docker-optimization",
		rationale:  "project has a Dockerfile",
		feature:    appdetect.HasConfigFile("Dockerfile"),
	},
	{
		templateID: "ci-cd-enhancement",
		rationale:  "project has CI workflows",
		feature:    appdetect.HasConfigFile(".github/workflows"),
	},
	{
		templateID: "documentation-generator",
		rationale:  "project has no README",
		missing:    appdetect.HasConfigFile("README.md"),
		gate:       gateDocs,
	},
}
