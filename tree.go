// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ordtree provides a generic, mutable, ordered tree container: a
// hierarchy of nodes each holding a value, at most one parent, and an
// ordered sequence of children.
//
// Node storage lives in a per-tree arena and nodes are addressed by stable
// NodeID handles rather than pointers, so parent/child links can never form
// ownership cycles and a handle stays valid for the life of the tree. The
// value type must be comparable; equality of values is what Search uses,
// and it is deliberately distinct from handle identity (values need not be
// unique within a tree).
//
// Trees are not safe for concurrent use. Within a single goroutine, at most
// one mutable access path may be active at a time: iterators borrow the
// tree read-only, and a mutation made while an iterator is live invalidates
// the iterator, which subsequently fails with ErrConcurrentMutation rather
// than traversing inconsistent links.
package ordtree

import "github.com/cockroachdb/errors"

// Tree is an ordered tree of values of type V, wrapping an optional root
// node. The zero value (and NewEmpty) is a valid rootless tree: Search and
// iteration degrade to no results, and the first AppendValue defines the
// root.
//
// Operations that take NodeIDs work on any node in the arena, attached or
// detached; the methods named after root operations (At, IndexOf,
// RemoveChild, ...) are conveniences bound to the root's direct children.
type Tree[V comparable] struct {
	// nodes is the arena. NodeID i refers to nodes[i-1]; handles are never
	// reused or invalidated, and detached subtrees stay addressable here.
	nodes []node[V]
	root  NodeID
	// seq increments on every mutation and stamps iterators, which check it
	// to fail fast instead of walking a structure that changed under them.
	seq uint64
}

// New returns a tree whose root holds v.
func New[V comparable](v V) *Tree[V] {
	t := &Tree[V]{}
	t.root = t.Create(v)
	return t
}

// NewEmpty returns a rootless tree.
func NewEmpty[V comparable]() *Tree[V] {
	return &Tree[V]{}
}

// Root returns the root handle, or false if the tree is rootless.
func (t *Tree[V]) Root() (NodeID, bool) {
	return t.root, t.root != NilNode
}

// AppendValue creates a node holding v and appends it under the root,
// returning the new handle. On a rootless tree the new node becomes the
// root. Always succeeds: the node is fresh, so neither cycle nor
// already-parented failures can arise.
func (t *Tree[V]) AppendValue(v V) NodeID {
	n := t.Create(v)
	if t.root == NilNode {
		t.root = n
		t.seq++
		return n
	}
	if err := t.Append(t.root, n); err != nil {
		// Fresh nodes are detached and childless.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "appending a fresh node"))
	}
	return n
}

// AppendChild appends an existing detached node under the root. It fails
// with ErrEmptyTree on a rootless tree (use AppendValue, which defines the
// root), and otherwise with Append's failure modes.
func (t *Tree[V]) AppendChild(child NodeID) error {
	if t.root == NilNode {
		return ErrEmptyTree
	}
	return t.Append(t.root, child)
}

// RemoveChild detaches a direct child of the root; see Remove.
func (t *Tree[V]) RemoveChild(child NodeID) (NodeID, error) {
	if t.root == NilNode {
		return NilNode, ErrEmptyTree
	}
	return t.Remove(t.root, child)
}

// Search returns the handle of the first node (in pre-order) whose value
// equals v, or false if no node holds v or the tree is rootless. When
// values repeat, "first match" is the only guarantee; callers needing a
// specific node must hold its handle.
func (t *Tree[V]) Search(v V) (NodeID, bool) {
	if t.root == NilNode {
		return NilNode, false
	}
	// Iterative DFS with an explicit stack: search depth must not be
	// bounded by the call stack.
	stack := make([]NodeID, 0, 8)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.node(n).value == v {
			return n, true
		}
		children := t.node(n).children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return NilNode, false
}

// At returns the root's direct child at position i (0-based, insertion
// order). It fails with ErrEmptyTree on a rootless tree and with
// ErrIndexOutOfRange when i is not a valid position. Note the contract is
// root-only indexing, not a whole-tree ordinal.
func (t *Tree[V]) At(i int) (NodeID, error) {
	if t.root == NilNode {
		return NilNode, ErrEmptyTree
	}
	children := t.node(t.root).children
	if i < 0 || i >= len(children) {
		return NilNode, errors.Wrapf(ErrIndexOutOfRange,
			"index %d out of range [0, %d)", i, len(children))
	}
	return children[i], nil
}

// IndexOf returns the 0-based position of child among the root's direct
// children, or false if child is not a direct child of the root. Only the
// root's own child list is scanned.
func (t *Tree[V]) IndexOf(child NodeID) (int, bool) {
	if t.root == NilNode {
		return 0, false
	}
	if i := childIndex(t.node(t.root).children, child); i >= 0 {
		return i, true
	}
	return 0, false
}

// IndexOfValue is the value-equality variant of IndexOf: it returns the
// position of the first direct child of the root holding v.
func (t *Tree[V]) IndexOfValue(v V) (int, bool) {
	if t.root == NilNode {
		return 0, false
	}
	for i, c := range t.node(t.root).children {
		if t.node(c).value == v {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of nodes reachable from the root. It walks the
// tree, so it is O(n). Detached subtrees are not counted.
func (t *Tree[V]) Len() int {
	n := 0
	for it := t.NewIter(); it.Valid(); it.Next() {
		n++
	}
	return n
}

// Height returns the number of edges on the longest path from the root to
// a leaf; 0 for a single-node tree and -1 for a rootless one.
func (t *Tree[V]) Height() int {
	if t.root == NilNode {
		return -1
	}
	type frame struct {
		n     NodeID
		depth int
	}
	h := 0
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > h {
			h = f.depth
		}
		for _, c := range t.node(f.n).children {
			stack = append(stack, frame{n: c, depth: f.depth + 1})
		}
	}
	return h
}

// verify checks the structural invariants of the arena: parent/child
// symmetry (a node's parent lists it exactly once; every child listed by a
// node points back to it) and acyclicity of parent chains. It panics on
// violation. Runs after every mutation in invariants builds.
func (t *Tree[V]) verify() {
	if t.root != NilNode && t.node(t.root).parent != NilNode {
		panic(errors.AssertionFailedf("ordtree: root %s has parent %s", t.root, t.node(t.root).parent))
	}
	for i := range t.nodes {
		id := NodeID(i + 1)
		n := &t.nodes[i]
		if p := n.parent; p != NilNode {
			if c := childIndex(t.node(p).children, id); c < 0 {
				panic(errors.AssertionFailedf("ordtree: %s not in child list of its parent %s", id, p))
			}
		}
		seen := 0
		for _, c := range n.children {
			if t.node(c).parent != id {
				panic(errors.AssertionFailedf("ordtree: child %s of %s has parent %s", c, id, t.node(c).parent))
			}
			if c == id {
				seen++
			}
		}
		if seen > 0 {
			panic(errors.AssertionFailedf("ordtree: %s is its own child", id))
		}
		// Ancestor chains must terminate within the arena.
		steps := 0
		for p := n.parent; p != NilNode; p = t.node(p).parent {
			steps++
			if steps > len(t.nodes) {
				panic(errors.AssertionFailedf("ordtree: cycle in ancestor chain of %s", id))
			}
		}
	}
	// Duplicate child entries across the arena would break symmetry in a
	// way the per-node pass can miss if values collide; count incoming
	// links instead.
	incoming := make(map[NodeID]int)
	for i := range t.nodes {
		for _, c := range t.nodes[i].children {
			incoming[c]++
		}
	}
	for c, k := range incoming {
		if k != 1 {
			panic(errors.AssertionFailedf("ordtree: %s appears in %d child lists", c, k))
		}
	}
}
