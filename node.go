// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ordtree/internal/invariants"
	"github.com/cockroachdb/redact"
)

// NodeID is a stable handle to a node within a Tree. It stays valid across
// mutations of the tree, including detachment of the node it names. Handles
// are only meaningful for the tree that issued them; passing a handle to a
// different tree is a programming error.
//
// NodeID identity is distinct from value equality: two different nodes
// holding equal values have different NodeIDs. Operations that mutate
// linkage (Append, Remove, Move) always take handles so that they are never
// ambiguous when values repeat; Search and IndexOfValue are the only
// operations that compare values.
type NodeID uint32

// NilNode is the zero NodeID. It is never issued for a node and is returned
// by lookups that find nothing.
const NilNode NodeID = 0

// String implements fmt.Stringer.
func (id NodeID) String() string {
	if id == NilNode {
		return "nil"
	}
	return fmt.Sprintf("n%d", uint32(id))
}

// SafeFormat implements redact.SafeFormatter.
func (id NodeID) SafeFormat(w redact.SafePrinter, _ rune) {
	if id == NilNode {
		w.SafeString("nil")
		return
	}
	w.Printf("n%d", redact.SafeUint(id))
}

// node is a slot in the tree's arena. Links are NodeIDs into the same
// arena, never pointers, so node storage is owned by the arena alone and
// parent back-references cannot form ownership cycles.
type node[V comparable] struct {
	value    V
	parent   NodeID
	children []NodeID
}

// Create allocates a new detached node holding v and returns its handle.
// The node has no parent and no children; it is not reachable from the root
// until it is attached with Append or Move. Create never fails.
func (t *Tree[V]) Create(v V) NodeID {
	t.nodes = append(t.nodes, node[V]{value: v})
	return NodeID(len(t.nodes))
}

// node returns the arena slot for id. id must be a handle issued by this
// tree's Create (or New); anything else panics.
func (t *Tree[V]) node(id NodeID) *node[V] {
	if id == NilNode || int(id) > len(t.nodes) {
		panic(errors.AssertionFailedf("ordtree: invalid node handle %s", id))
	}
	return &t.nodes[id-1]
}

// Append makes child the last element of parent's child sequence and sets
// child's parent link, both sides together. The child must be detached: a
// node that already has a parent fails with ErrAlreadyParented (re-parent
// with Move instead). Linking a node under its own descendant (or under
// itself) fails with ErrCycle. On failure the tree is unchanged.
func (t *Tree[V]) Append(parent, child NodeID) error {
	if t.node(child).parent != NilNode {
		return errors.Wrapf(ErrAlreadyParented,
			"node %s already has parent %s", child, t.node(child).parent)
	}
	// A cycle arises exactly when child is an ancestor of parent. Since
	// child is detached it can only be an ancestor of parent by parent
	// lying inside child's subtree, which the ancestor walk from parent
	// detects.
	if t.isAncestor(child, parent) || parent == child {
		return errors.Wrapf(ErrCycle,
			"node %s is an ancestor of %s", child, parent)
	}
	p := t.node(parent)
	p.children = append(p.children, child)
	t.node(child).parent = parent
	t.seq++
	t.checkLinked(parent, child)
	return nil
}

// Remove detaches child from parent's child sequence and clears its parent
// link. It fails with ErrNotAChild if child is not currently a direct child
// of parent. The detached node keeps its own children: the caller receives
// the handle of a new orphan subtree root, still addressable through this
// tree's handles but no longer reachable from the root.
func (t *Tree[V]) Remove(parent, child NodeID) (NodeID, error) {
	p := t.node(parent)
	i := childIndex(p.children, child)
	if i < 0 {
		return NilNode, errors.Wrapf(ErrNotAChild,
			"node %s is not a child of %s", child, parent)
	}
	p.children = append(p.children[:i], p.children[i+1:]...)
	t.node(child).parent = NilNode
	t.seq++
	if invariants.Enabled && childIndex(p.children, child) >= 0 {
		panic(errors.AssertionFailedf("ordtree: %s still a child of %s after removal", child, parent))
	}
	return child, nil
}

// Move re-parents child under newParent, preserving child's subtree. It is
// the sanctioned detach-then-attach path for nodes that already have a
// parent; Append deliberately refuses those. A detached child is simply
// attached. Moving the root fails with ErrMoveRoot, and moving a node under
// its own descendant fails with ErrCycle; on failure the tree is unchanged.
func (t *Tree[V]) Move(newParent, child NodeID) error {
	if child == t.root {
		return ErrMoveRoot
	}
	if t.isAncestor(child, newParent) || newParent == child {
		return errors.Wrapf(ErrCycle,
			"node %s is an ancestor of %s", child, newParent)
	}
	if oldParent := t.node(child).parent; oldParent != NilNode {
		op := t.node(oldParent)
		i := childIndex(op.children, child)
		op.children = append(op.children[:i], op.children[i+1:]...)
	}
	np := t.node(newParent)
	np.children = append(np.children, child)
	t.node(child).parent = newParent
	t.seq++
	t.checkLinked(newParent, child)
	return nil
}

// checkLinked asserts the bidirectional parent/child link, in invariants
// builds. Cost is linear in the parent's child count, cheap enough to run
// after every link mutation; the full arena sweep lives in verify.
func (t *Tree[V]) checkLinked(parent, child NodeID) {
	if !invariants.Enabled {
		return
	}
	if p := t.node(child).parent; p != parent {
		panic(errors.AssertionFailedf("ordtree: %s linked under %s but has parent %s", child, parent, p))
	}
	if childIndex(t.node(parent).children, child) < 0 {
		panic(errors.AssertionFailedf("ordtree: %s missing from child list of %s", child, parent))
	}
}

// Children returns n's direct children in insertion order. The returned
// slice is a view into the tree; the caller must not modify it and must not
// retain it across mutations.
func (t *Tree[V]) Children(n NodeID) []NodeID {
	return t.node(n).children
}

// Parent returns n's parent handle, or false if n is the root or detached.
func (t *Tree[V]) Parent(n NodeID) (NodeID, bool) {
	p := t.node(n).parent
	return p, p != NilNode
}

// Value returns the payload held by n.
func (t *Tree[V]) Value(n NodeID) V {
	return t.node(n).value
}

// SetValue replaces the payload held by n. Links are unaffected, but live
// iterators are invalidated since the sequence of values they produce
// would change underfoot.
func (t *Tree[V]) SetValue(n NodeID, v V) {
	t.node(n).value = v
	t.seq++
}

// IsLeaf reports whether n has no children.
func (t *Tree[V]) IsLeaf(n NodeID) bool {
	return len(t.node(n).children) == 0
}

// IsRoot reports whether n has no parent. Note that detached nodes also
// have no parent; IsRoot(n) does not imply n == t.Root().
func (t *Tree[V]) IsRoot(n NodeID) bool {
	return t.node(n).parent == NilNode
}

// Depth returns the number of edges between n and the top of the subtree
// containing it (the root, or a detached subtree's own top).
func (t *Tree[V]) Depth(n NodeID) int {
	d := 0
	for p := t.node(n).parent; p != NilNode; p = t.node(p).parent {
		d++
		invariants.CheckBounds(d, len(t.nodes)+1)
	}
	return d
}

// isAncestor reports whether a is a strict ancestor of n, walking parent
// links from n. The walk terminates because parent chains are acyclic, an
// invariant maintained by Append and Move refusing exactly the links that
// would break it.
func (t *Tree[V]) isAncestor(a, n NodeID) bool {
	for p := t.node(n).parent; p != NilNode; p = t.node(p).parent {
		if p == a {
			return true
		}
	}
	return false
}

func childIndex(children []NodeID, child NodeID) int {
	for i, c := range children {
		if c == child {
			return i
		}
	}
	return -1
}
