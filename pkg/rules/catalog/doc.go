// Package catalog supplies rule sets to the engine.
//
// Default returns the built-in air-conditioner policy. Load reads an
// operator-supplied YAML catalog so the policy can be overridden
// without recompiling, and Watcher reloads it on file changes.
package catalog
