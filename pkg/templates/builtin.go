package templates

import "github.com/cmdgen/cmdgen/internal/appdetect"

// contextHeader opens every built-in template body so the rendered document
// carries the detected project context.
const contextHeader = "Project: {{project_name}} ({{project_type}})\n" +
	"Path: {{project_path}}\n" +
	"Features: {{features}}\n\n"

var (
	rustTypes = []appdetect.ProjectType{appdetect.RustNormal, appdetect.RustWasm}
	webTypes  = []appdetect.ProjectType{appdetect.JavaScript, appdetect.TypeScript}
	jsTypes   = []appdetect.ProjectType{appdetect.JavaScript, appdetect.TypeScript, appdetect.NodeJs}
	allTypes  = []appdetect.ProjectType{
		appdetect.RustNormal, appdetect.RustWasm,
		appdetect.JavaScript, appdetect.TypeScript, appdetect.NodeJs,
	}
)

var builtinTemplates = []*Template{
	// Rust
	{
		ID:          "review-performance",
		Name:        "Review performance",
		Description: "Performance analysis of Rust code.",
		Body: contextHeader +
			"Analyze the performance characteristics of this Rust code and suggest improvements to make it faster or more efficient:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "generate-tests",
		Name:        "Generate tests",
		Description: "Unit test generation using the project's standard test framework.",
		Body: contextHeader +
			"Generate unit tests for the following {{project_type}} code using the project's standard test framework:",
		AppliesTo: allTypes,
	},
	{
		ID:          "add-documentation",
		Name:        "Add documentation",
		Description: "Rust documentation comments.",
		Body: contextHeader +
			"Add comprehensive Rust documentation comments (///) to the following code:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "add-error-handling",
		Name:        "Add error handling",
		Description: "Error handling improvements.",
		Body: contextHeader +
			"Improve error handling in this {{project_type}} code using the language's idiomatic error types and proper validation:",
		AppliesTo: allTypes,
	},
	{
		ID:          "optimize-memory",
		Name:        "Optimize memory",
		Description: "Memory usage review for Rust code.",
		Body: contextHeader +
			"Review this Rust code for memory usage optimization opportunities:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "refactor-traits",
		Name:        "Refactor traits",
		Description: "Trait implementations and refactoring.",
		Body: contextHeader +
			"Suggest trait implementations or refactoring opportunities for this Rust code:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "cargo-optimization",
		Name:        "Cargo optimization",
		Description: "Cargo.toml review.",
		Body: contextHeader +
			"Analyze and suggest Cargo.toml optimizations for this Rust project:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "async-conversion",
		Name:        "Async conversion",
		Description: "Synchronous Rust code to async/await.",
		Body: contextHeader +
			"Convert this synchronous Rust code to use async/await patterns:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "run-specific-test",
		Name:        "Run specific test",
		Description: "Run one test file or test function.",
		Body: contextHeader +
			"Run a specific test file or test function in this Rust project. Please specify the test to run:",
		AppliesTo: rustTypes,
	},
	{
		ID:          "async-refactor",
		Name:        "Async refactor",
		Description: "Convert synchronous Rust code to async/await.",
		Body: contextHeader +
			"Refactor this synchronous Rust code to use async/await patterns, considering the project's async runtime dependencies ({{dependencies}}):",
		AppliesTo: rustTypes,
	},
	{
		ID:          "serialization-helper",
		Name:        "Serialization helper",
		Description: "Serde derive support.",
		Body: contextHeader +
			"Add Serde serialization/deserialization support to this Rust struct or enum:",
		AppliesTo: rustTypes,
	},

	// Rust WebAssembly
	{
		ID:          "wasm-bindgen-wrapper",
		Name:        "wasm-bindgen wrapper",
		Description: "JavaScript bindings for a Rust function.",
		Body: contextHeader +
			"Create wasm-bindgen JavaScript bindings for this Rust function:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "wasm-optimize",
		Name:        "WASM optimize",
		Description: "Size and performance optimization for WebAssembly.",
		Body: contextHeader +
			"Optimize this Rust code for WebAssembly size and performance:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "js-interop",
		Name:        "JS interop",
		Description: "JavaScript interop for a WASM module.",
		Body: contextHeader +
			"Create JavaScript interop code for this Rust WASM module:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "wasm-memory-management",
		Name:        "WASM memory management",
		Description: "Memory management review for WASM code.",
		Body: contextHeader +
			"Review and optimize memory management for this Rust WASM code:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "wasm-pack-config",
		Name:        "wasm-pack config",
		Description: "wasm-pack configuration.",
		Body: contextHeader +
			"Generate wasm-pack configuration for this Rust WebAssembly project:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "browser-integration",
		Name:        "Browser integration",
		Description: "Browser-side wiring for a WASM module.",
		Body: contextHeader +
			"Create browser integration code for this Rust WASM module:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "wasm-types",
		Name:        "WASM types",
		Description: "WASM-compatible type conversion.",
		Body: contextHeader +
			"Convert these Rust types to be WASM-compatible with proper serialization:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "performance-profile",
		Name:        "Performance profile",
		Description: "Profiling setup for a WASM application.",
		Body: contextHeader +
			"Create performance profiling setup for this Rust WASM application:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "wasm-size-analysis",
		Name:        "WASM size analysis",
		Description: "Binary size reduction.",
		Body: contextHeader +
			"Analyze and optimize this Rust WASM code for binary size reduction:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "webpack-wasm-optimization",
		Name:        "Webpack WASM optimization",
		Description: "Webpack configuration for a WASM project.",
		Body: contextHeader +
			"Optimize webpack configuration for this Rust WASM project:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},
	{
		ID:          "js-binding-generator",
		Name:        "JS binding generator",
		Description: "Bindings via wasm-bindgen.",
		Body: contextHeader +
			"Generate JavaScript bindings for this Rust WASM function using wasm-bindgen:",
		AppliesTo: []appdetect.ProjectType{appdetect.RustWasm},
	},

	// JavaScript
	{
		ID:          "add-jsdoc",
		Name:        "Add JSDoc",
		Description: "JSDoc comments.",
		Body: contextHeader +
			"Add comprehensive JSDoc comments to the following JavaScript code:",
		AppliesTo: []appdetect.ProjectType{appdetect.JavaScript, appdetect.NodeJs},
	},
	{
		ID:          "modernize-syntax",
		Name:        "Modernize syntax",
		Description: "ES6+ conversion.",
		Body: contextHeader +
			"Convert this JavaScript code to use modern ES6+ syntax and features:",
		AppliesTo: []appdetect.ProjectType{appdetect.JavaScript},
	},
	{
		ID:          "convert-promises",
		Name:        "Convert promises",
		Description: "Callbacks to Promises or async/await.",
		Body: contextHeader +
			"Convert this callback-based JavaScript code to use Promises or async/await:",
		AppliesTo: []appdetect.ProjectType{appdetect.JavaScript, appdetect.NodeJs},
	},
	{
		ID:          "optimize-performance",
		Name:        "Optimize performance",
		Description: "Performance review of JavaScript code.",
		Body: contextHeader +
			"Analyze and optimize the performance of this JavaScript code:",
		AppliesTo: []appdetect.ProjectType{appdetect.JavaScript},
	},
	{
		ID:          "add-validation",
		Name:        "Add validation",
		Description: "Input validation and type checking.",
		Body: contextHeader +
			"Add input validation and type checking to this JavaScript function:",
		AppliesTo: []appdetect.ProjectType{appdetect.JavaScript},
	},
	{
		ID:          "bundle-analysis",
		Name:        "Bundle analysis",
		Description: "Bundle size optimization.",
		Body: contextHeader +
			"Analyze this JavaScript/TypeScript code for bundle size optimization opportunities:",
		AppliesTo: webTypes,
	},

	// TypeScript
	{
		ID:          "add-types",
		Name:        "Add types",
		Description: "Type annotations for JavaScript code.",
		Body: contextHeader +
			"Add comprehensive TypeScript type annotations to this JavaScript code:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "interface-design",
		Name:        "Interface design",
		Description: "Interfaces and types for a code structure.",
		Body: contextHeader +
			"Design TypeScript interfaces and types for this code structure:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "generic-implementation",
		Name:        "Generic implementation",
		Description: "Generics for reusability.",
		Body: contextHeader +
			"Implement TypeScript generics to make this code more reusable:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "strict-mode-fix",
		Name:        "Strict mode fix",
		Description: "Strict mode error fixes.",
		Body: contextHeader +
			"Fix TypeScript strict mode errors in this code:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "type-guards",
		Name:        "Type guards",
		Description: "Runtime type checking.",
		Body: contextHeader +
			"Create TypeScript type guards for runtime type checking:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "utility-types",
		Name:        "Utility types",
		Description: "Utility types for code structure.",
		Body: contextHeader +
			"Use TypeScript utility types to improve this code structure:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "declaration-files",
		Name:        "Declaration files",
		Description: "Declaration files for a JavaScript library.",
		Body: contextHeader +
			"Generate TypeScript declaration files (.d.ts) for this JavaScript library:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},
	{
		ID:          "tsconfig-optimization",
		Name:        "tsconfig optimization",
		Description: "tsconfig.json review.",
		Body: contextHeader +
			"Optimize tsconfig.json settings for this TypeScript project:",
		AppliesTo: []appdetect.ProjectType{appdetect.TypeScript},
	},

	// Node.js
	{
		ID:          "express-middleware",
		Name:        "Express middleware",
		Description: "Express.js middleware.",
		Body: contextHeader +
			"Create Express.js middleware for this functionality:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "api-endpoint",
		Name:        "API endpoint",
		Description: "RESTful API endpoint.",
		Body: contextHeader +
			"Design and implement a RESTful API endpoint for this Node.js application:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "database-integration",
		Name:        "Database integration",
		Description: "Database access for a Node.js function.",
		Body: contextHeader +
			"Add database integration code for this Node.js function:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "environment-config",
		Name:        "Environment config",
		Description: "Environment-based configuration.",
		Body: contextHeader +
			"Create environment-based configuration management for this Node.js app:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "logging-setup",
		Name:        "Logging setup",
		Description: "Application logging.",
		Body: contextHeader +
			"Implement comprehensive logging for this Node.js application:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "authentication",
		Name:        "Authentication",
		Description: "Authentication and authorization for an API.",
		Body: contextHeader +
			"Add authentication and authorization to this Node.js API:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "docker-setup",
		Name:        "Docker setup",
		Description: "Docker configuration for a Node.js app.",
		Body: contextHeader +
			"Create Docker configuration for this Node.js application:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "performance-monitoring",
		Name:        "Performance monitoring",
		Description: "Monitoring and health checks.",
		Body: contextHeader +
			"Add performance monitoring and health checks to this Node.js service:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "package-optimization",
		Name:        "Package optimization",
		Description: "package.json and dependency review.",
		Body: contextHeader +
			"Optimize package.json and dependencies for this Node.js project:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "express-route-generator",
		Name:        "Express route generator",
		Description: "Route handlers with validation.",
		Body: contextHeader +
			"Create Express.js route handlers with proper error handling and validation:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},
	{
		ID:          "database-model-generator",
		Name:        "Database model generator",
		Description: "Models and schemas.",
		Body: contextHeader +
			"Generate database models and schemas for this Node.js application:",
		AppliesTo: []appdetect.ProjectType{appdetect.NodeJs},
	},

	// Cross-type, feature-triggered
	{
		ID:          "react-component-generator",
		Name:        "React component generator",
		Description: "React component with TypeScript support.",
		Body: contextHeader +
			"Generate a React component with TypeScript support for this functionality:",
		AppliesTo: webTypes,
	},
	{
		ID:          "vue-component-generator",
		Name:        "Vue component generator",
		Description: "Vue.js component with TypeScript support.",
		Body: contextHeader +
			"Generate a Vue.js component with TypeScript support for this functionality:",
		AppliesTo: webTypes,
	},
	{
		ID:          "test-coverage-analysis",
		Name:        "Test coverage analysis",
		Description: "Coverage review for JS/TS projects.",
		Body: contextHeader +
			"Analyze test coverage for this JavaScript/TypeScript project and suggest improvements:",
		AppliesTo: jsTypes,
	},
	{
		ID:          "documentation-generator",
		Name:        "Documentation generator",
		Description: "README, API docs and code comments.",
		Body: contextHeader +
			"Generate comprehensive documentation for this project including README, API docs, and code comments:",
		AppliesTo: allTypes,
	},
	{
		ID:          "docker-optimization",
		Name:        "Docker optimization",
		Description: "Dockerfile review.",
		Body: contextHeader +
			"Optimize the Dockerfile and Docker configuration for this project:",
		AppliesTo: allTypes,
	},
	{
		ID:          "ci-cd-enhancement",
		Name:        "CI/CD enhancement",
		Description: "Pipeline configuration review.",
		Body: contextHeader +
			"Improve CI/CD pipeline configuration for this project:",
		AppliesTo: allTypes,
	},
}
