package multikey

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

var (
	// ErrInvalidDimension is returned by New for dimensions below one.
	ErrInvalidDimension = errors.New("multikey: dimension must be at least 1")
	// ErrKeyLength is returned by Put when the key sequence does not match the dimension.
	ErrKeyLength = errors.New("multikey: key sequence length does not match dimension")
)

// Tree maps sequences of exactly Dim keys to values.
type Tree[K comparable, V comparable] struct {
	dim  int
	root *node[K, V]
}

type node[K comparable, V comparable] struct {
	children map[K]*node[K, V]
	leaves   map[K]V
}

// New returns an empty Tree of the given dimension.
func New[K comparable, V comparable](dim int) (*Tree[K, V], error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}

	return &Tree[K, V]{dim: dim, root: &node[K, V]{}}, nil
}

// Dim returns the number of key components.
func (t *Tree[K, V]) Dim() int { return t.dim }

// Get returns the value stored under keys and whether it was present. A key
// sequence of the wrong length is never present.
func (t *Tree[K, V]) Get(keys ...K) (V, bool) {
	if len(keys) != t.dim {
		var zero V
		return zero, false
	}

	return t.root.get(keys)
}

// ContainsKey reports whether a value is stored under keys.
func (t *Tree[K, V]) ContainsKey(keys ...K) bool {
	_, ok := t.Get(keys...)
	return ok
}

// Put stores value under keys, creating interior nodes as needed, and returns
// the previous value and whether there was one.
func (t *Tree[K, V]) Put(keys []K, value V) (V, bool, error) {
	if len(keys) != t.dim {
		var zero V
		return zero, false, fmt.Errorf("%w: got %d keys, want %d", ErrKeyLength, len(keys), t.dim)
	}

	prev, ok := t.root.put(keys, value)

	return prev, ok, nil
}

// ContainsAnyValue reports whether any stored value equals value. Like ==, it
// panics when V is an interface type and a compared value is not comparable.
func (t *Tree[K, V]) ContainsAnyValue(value V) bool {
	return t.root.containsValue(value)
}

// Child returns the sub-tree stored under the first-level key k. The sub-tree
// shares storage with t. A one-dimensional tree has no children.
func (t *Tree[K, V]) Child(k K) (*Tree[K, V], bool) {
	if t.dim == 1 {
		return nil, false
	}

	child, ok := t.root.children[k]
	if !ok {
		return nil, false
	}

	return &Tree[K, V]{dim: t.dim - 1, root: child}, true
}

// ContainsChild reports whether child is one of the first-level sub-trees of
// t, by identity. Use ContainsAnyValue to look for values.
func (t *Tree[K, V]) ContainsChild(child *Tree[K, V]) bool {
	if child == nil || child.dim != t.dim-1 {
		return false
	}

	for _, c := range t.root.children {
		if c == child.root {
			return true
		}
	}

	return false
}

// Len returns the number of stored values.
func (t *Tree[K, V]) Len() int {
	return t.root.len()
}

// All iterates over every stored key sequence and value. The key slice is
// fresh for every pair. Iteration order is unspecified.
func (t *Tree[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		t.root.walk(make([]K, 0, t.dim), yield)
	}
}

// Clone returns a deep copy of t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{dim: t.dim, root: t.root.clone()}
}

// get resolves keys below n. A node is terminal when one key is left.
func (n *node[K, V]) get(keys []K) (V, bool) {
	if len(keys) == 1 {
		v, ok := n.leaves[keys[0]]
		return v, ok
	}

	child, ok := n.children[keys[0]]
	if !ok {
		var zero V
		return zero, false
	}

	return child.get(keys[1:])
}

func (n *node[K, V]) put(keys []K, value V) (V, bool) {
	if len(keys) == 1 {
		if n.leaves == nil {
			n.leaves = make(map[K]V)
		}

		prev, ok := n.leaves[keys[0]]
		n.leaves[keys[0]] = value

		return prev, ok
	}

	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}

	child, ok := n.children[keys[0]]
	if !ok {
		child = &node[K, V]{}
		n.children[keys[0]] = child
	}

	return child.put(keys[1:], value)
}

func (n *node[K, V]) containsValue(value V) bool {
	for _, v := range n.leaves {
		if v == value {
			return true
		}
	}

	for _, child := range n.children {
		if child.containsValue(value) {
			return true
		}
	}

	return false
}

func (n *node[K, V]) len() int {
	total := len(n.leaves)
	for _, child := range n.children {
		total += child.len()
	}

	return total
}

func (n *node[K, V]) walk(prefix []K, yield func([]K, V) bool) bool {
	for k, v := range n.leaves {
		if !yield(append(slices.Clone(prefix), k), v) {
			return false
		}
	}

	for k, child := range n.children {
		if !child.walk(append(prefix, k), yield) {
			return false
		}
	}

	return true
}

func (n *node[K, V]) clone() *node[K, V] {
	out := &node[K, V]{leaves: maps.Clone(n.leaves)}

	if n.children != nil {
		out.children = make(map[K]*node[K, V], len(n.children))
		for k, child := range n.children {
			out.children[k] = child.clone()
		}
	}

	return out
}
