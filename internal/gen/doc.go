// Package gen provides deterministic Go code generation for multi-key containers.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable, gofmt-clean Go code. Every dimension N becomes one file, map{N}d.go,
// declaring Map{N}D[K1, ..., KN, V] as a chain of nested built-in maps.
//
// Codegen patterns:
//   - Level 1 lookup on the receiver, lazy creation only in Put
//   - N-2 interior lookups, short-circuiting in Get and ContainsKey
//   - Terminal comma-ok read, write or membership test
//   - N-2 deep nested range for ContainsAnyValue
//   - Keyed nested range for Clone
//
// A shared multikey_support.go holds the helpers every dimension uses.
package gen
