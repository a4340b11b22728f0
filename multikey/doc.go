// Package multikey provides Tree, a map keyed by a fixed number of key
// components chosen at construction time.
//
// Tree is the runtime counterpart of the generated Map{N}D containers: the
// same Get, Put, ContainsKey and ContainsAnyValue semantics, but a single
// recursive traversal serves every dimension, so no code has to be generated
// per key count. Interior nodes map a key to a child node; terminal nodes map
// a key to a value.
//
// A Tree is not safe for concurrent use.
package multikey
