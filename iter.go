// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import (
	"iter"
	"slices"
)

// Iter is a pre-order iterator over a Tree: each node is produced before
// any of its descendants, children left-to-right, each subtree completely
// before the next sibling. The usual loop is
//
//	for it := t.NewIter(); it.Valid(); it.Next() {
//	    _ = it.Value()
//	}
//
// An Iter is a single-pass forward cursor over a snapshot point of the
// tree: any mutation of the tree invalidates live iterators, which then
// report ErrConcurrentMutation through Error rather than producing values
// from a changed structure. First re-seeds the cursor at the (current)
// root, which is how a traversal is restarted.
//
// An Iter must not be copied by value once positioned; the pending stack
// would share storage. Use Clone for an independent cursor at the same
// state.
type Iter[V comparable] struct {
	t *Tree[V]
	// stack holds the pending nodes, top at the end. Advancing pops the top
	// and pushes its children reversed so the leftmost child surfaces next.
	stack []NodeID
	seq   uint64
	err   error
}

// NewIter returns an iterator positioned at the root. On a rootless tree
// the iterator starts exhausted.
func (t *Tree[V]) NewIter() Iter[V] {
	it := Iter[V]{t: t}
	it.First()
	return it
}

// First repositions the iterator at the root, clearing any error and
// revalidating against the tree's current state.
func (i *Iter[V]) First() {
	i.stack = i.stack[:0]
	i.err = nil
	i.seq = i.t.seq
	if i.t.root != NilNode {
		i.stack = append(i.stack, i.t.root)
	}
}

// Valid reports whether the iterator is positioned at a node. It becomes
// false when the traversal is exhausted or when the tree was mutated; the
// two are distinguished by Error.
func (i *Iter[V]) Valid() bool {
	if i.err != nil {
		return false
	}
	if i.seq != i.t.seq {
		i.err = ErrConcurrentMutation
		return false
	}
	return len(i.stack) > 0
}

// Node returns the handle of the current node. It must only be called when
// Valid is true.
func (i *Iter[V]) Node() NodeID {
	return i.stack[len(i.stack)-1]
}

// Value returns the payload of the current node. It must only be called
// when Valid is true.
func (i *Iter[V]) Value() V {
	return i.t.node(i.Node()).value
}

// Next advances to the next node in pre-order. Calling Next on an invalid
// iterator is a no-op.
func (i *Iter[V]) Next() {
	if !i.Valid() {
		return
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	children := i.t.node(n).children
	for j := len(children) - 1; j >= 0; j-- {
		i.stack = append(i.stack, children[j])
	}
}

// Clone returns an independent iterator at the same traversal state.
func (i *Iter[V]) Clone() Iter[V] {
	c := *i
	c.stack = slices.Clone(i.stack)
	return c
}

// Error returns ErrConcurrentMutation if the tree was mutated while this
// iterator was live, and nil otherwise.
func (i *Iter[V]) Error() error {
	return i.err
}

// Equal reports whether two iterators are at the same traversal state:
// their pending stacks are element-wise equal as handles. Exhausted
// iterators compare equal regardless of how they got there, so an
// exhausted iterator serves as the end sentinel.
func (i *Iter[V]) Equal(o *Iter[V]) bool {
	return i.t == o.t && slices.Equal(i.stack, o.stack)
}

// All returns a range-over-func sequence of (handle, value) pairs in
// pre-order. The tree must not be mutated during the range; the loop stops
// early if it is, and callers that need to distinguish early termination
// from exhaustion should use NewIter directly.
func (t *Tree[V]) All() iter.Seq2[NodeID, V] {
	return func(yield func(NodeID, V) bool) {
		for it := t.NewIter(); it.Valid(); it.Next() {
			if !yield(it.Node(), it.Value()) {
				return
			}
		}
	}
}
