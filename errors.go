// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import "github.com/cockroachdb/errors"

// The errors below are the complete set of failure modes of the container.
// Errors returned by Tree operations can carry additional context; use
// errors.Is to detect the kind.
var (
	// ErrCycle is returned by Append and Move when linking the given child
	// would make a node its own ancestor.
	ErrCycle = errors.New("ordtree: linking would create a cycle")

	// ErrAlreadyParented is returned by Append when the child already has a
	// parent. Re-parenting an attached node must go through Move.
	ErrAlreadyParented = errors.New("ordtree: node already has a parent")

	// ErrNotAChild is returned by Remove when the node is not currently a
	// direct child of the given parent.
	ErrNotAChild = errors.New("ordtree: node is not a child of the given parent")

	// ErrIndexOutOfRange is returned by At when the index is not within the
	// root's child list.
	ErrIndexOutOfRange = errors.New("ordtree: child index out of range")

	// ErrEmptyTree is returned by operations that require a root when the
	// tree has none. Search and iteration degrade to "no results" instead.
	ErrEmptyTree = errors.New("ordtree: tree has no root")

	// ErrMoveRoot is returned by Move when the child is the tree's root. The
	// root has no parent to detach from; re-rooting is not supported.
	ErrMoveRoot = errors.New("ordtree: cannot move the root")

	// ErrConcurrentMutation is reported by an iterator whose tree was
	// mutated after the iterator was positioned. The iterator becomes
	// invalid instead of walking corrupted state.
	ErrConcurrentMutation = errors.New("ordtree: tree mutated during iteration")
)
