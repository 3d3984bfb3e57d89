// Package bst provides an ordered in-memory index backed by an unbalanced
// binary search tree.
//
// The tree supports insertion and deterministic sorted traversal, nothing
// else: no deletion, no rebalancing. Worst-case depth is O(n) for sorted
// insertion order, so both insertion and traversal are iterative rather than
// recursive to keep adversarial input off the call stack.
package bst

import (
	"cmp"
	"iter"
)

type node[T cmp.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree over totally-ordered values.
//
// Duplicates are kept: a value equal to an existing node is routed into the
// right subtree. The tree is not safe for concurrent use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New creates a tree containing the given values, inserted in order.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds v to the tree. Any value is accepted; insertion never fails.
//
// Routing rule: descend left while the current node's value is strictly
// greater than v, otherwise right. Equal values always go right.
func (t *Tree[T]) Insert(v T) {
	t.size++
	if t.root == nil {
		t.root = &node[T]{value: v}
		return
	}
	n := t.root
	for {
		if n.value > v {
			if n.left == nil {
				n.left = &node[T]{value: v}
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = &node[T]{value: v}
				return
			}
			n = n.right
		}
	}
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// All returns an iterator over all values in ascending order.
//
// The sequence is lazy and restartable; iterating does not mutate the tree.
// The traversal keeps an explicit node stack instead of recursing.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Values returns all values in ascending order as a slice.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}
