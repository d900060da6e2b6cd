// Package appdetect allows for detection of a project's technology stack.
//
// A project is detected based on criteria such as:
// 1. Presence of well-known manifest files (Cargo.toml, package.json).
// 2. Markers found in those manifests and in the root directory listing.
//
// Detect reads a fixed set of files at the given root, extracts a Feature set
// and classifies the project into exactly one ProjectType. Detection is a pure
// read-only pass over the filesystem: it never writes, and it fails only when
// the root itself cannot be read. A malformed manifest downgrades its
// classification tier to absent and is recorded as a Warning on the result.
package appdetect
