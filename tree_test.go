// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// buildSmall builds the tree
//
//	1
//	├── 2
//	│   └── 4
//	└── 3
//
// returning the handles of 1..4.
func buildSmall(t *testing.T) (*Tree[int], [5]NodeID) {
	tr := New(1)
	var n [5]NodeID
	n[1], _ = tr.Root()
	n[2] = tr.AppendValue(2)
	n[3] = tr.AppendValue(3)
	n[4] = tr.Create(4)
	require.NoError(t, tr.Append(n[2], n[4]))
	return tr, n
}

func preorderValues[V comparable](tr *Tree[V]) []V {
	var vals []V
	for it := tr.NewIter(); it.Valid(); it.Next() {
		vals = append(vals, it.Value())
	}
	return vals
}

func TestScenario(t *testing.T) {
	tr, n := buildSmall(t)
	require.Equal(t, []int{1, 2, 4, 3}, preorderValues(tr))

	found, ok := tr.Search(4)
	require.True(t, ok)
	require.Equal(t, n[4], found)

	c, err := tr.At(1)
	require.NoError(t, err)
	require.Equal(t, n[3], c)

	removed, err := tr.RemoveChild(n[2])
	require.NoError(t, err)
	require.Equal(t, n[2], removed)
	require.Equal(t, []int{1, 3}, preorderValues(tr))

	// The detached subtree keeps its own children.
	require.Equal(t, []NodeID{n[4]}, tr.Children(n[2]))
	require.True(t, tr.IsRoot(n[2]))
	tr.verify()
}

func TestAppend(t *testing.T) {
	tr, n := buildSmall(t)

	t.Run("cycle", func(t *testing.T) {
		// Self-append of a detached node is the smallest cycle.
		d := tr.Create(9)
		require.ErrorIs(t, tr.Append(d, d), ErrCycle)
		// Detach the subtree 2(4); within it, 2 is an ancestor of 4, so
		// appending 2 under 4 must fail even while detached.
		sub, err := tr.Remove(n[1], n[2])
		require.NoError(t, err)
		require.ErrorIs(t, tr.Append(n[4], sub), ErrCycle)
		require.NoError(t, tr.Append(n[1], sub))
		require.Equal(t, []int{1, 3, 2, 4}, preorderValues(tr))
	})

	t.Run("already-parented", func(t *testing.T) {
		err := tr.Append(n[3], n[4])
		require.ErrorIs(t, err, ErrAlreadyParented)
		// Failure leaves the structure unchanged.
		require.Equal(t, []int{1, 3, 2, 4}, preorderValues(tr))
	})

	t.Run("symmetry", func(t *testing.T) {
		for id := range tr.All() {
			if p, ok := tr.Parent(id); ok {
				require.Equal(t, 1, countOf(tr.Children(p), id))
			}
		}
	})
}

func countOf(s []NodeID, n NodeID) int {
	c := 0
	for _, e := range s {
		if e == n {
			c++
		}
	}
	return c
}

func TestRemove(t *testing.T) {
	tr, n := buildSmall(t)

	_, err := tr.Remove(n[1], n[4])
	require.ErrorIs(t, err, ErrNotAChild)

	// Removing 2 transfers ownership of its subtree to the caller: 4 is no
	// longer reachable from the root but still hangs off 2.
	c, err := tr.Remove(n[1], n[2])
	require.NoError(t, err)
	require.Equal(t, n[2], c)
	_, ok := tr.Search(4)
	require.False(t, ok)
	p, ok := tr.Parent(n[4])
	require.True(t, ok)
	require.Equal(t, n[2], p)

	// Removing it again fails: it is no longer a child.
	_, err = tr.Remove(n[1], n[2])
	require.ErrorIs(t, err, ErrNotAChild)
}

func TestMove(t *testing.T) {
	tr, n := buildSmall(t)

	// Move 4 from under 2 to under 3.
	require.NoError(t, tr.Move(n[3], n[4]))
	require.Equal(t, []int{1, 2, 3, 4}, preorderValues(tr))
	require.True(t, tr.IsLeaf(n[2]))

	// Moving a node under its own descendant is a cycle.
	require.ErrorIs(t, tr.Move(n[4], n[3]), ErrCycle)
	require.ErrorIs(t, tr.Move(n[3], n[3]), ErrCycle)
	require.Equal(t, []int{1, 2, 3, 4}, preorderValues(tr))

	// The root cannot be re-parented.
	require.ErrorIs(t, tr.Move(n[3], n[1]), ErrMoveRoot)

	// A detached node can be attached with Move as well.
	d := tr.Create(5)
	require.NoError(t, tr.Move(n[2], d))
	require.Equal(t, []int{1, 2, 5, 3, 4}, preorderValues(tr))
	tr.verify()
}

func TestSearch(t *testing.T) {
	tr, n := buildSmall(t)

	for v, want := range map[int]NodeID{1: n[1], 2: n[2], 3: n[3], 4: n[4]} {
		got, ok := tr.Search(v)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := tr.Search(99)
	require.False(t, ok)

	// Duplicate values: search returns the first match in pre-order, which
	// is the deeper 2 under node 2, not the later sibling.
	dup := tr.Create(2)
	require.NoError(t, tr.Append(n[4], dup))
	got, ok := tr.Search(2)
	require.True(t, ok)
	require.Equal(t, n[2], got)
}

func TestIndexing(t *testing.T) {
	tr, n := buildSmall(t)

	c0, err := tr.At(0)
	require.NoError(t, err)
	require.Equal(t, n[2], c0)

	_, err = tr.At(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = tr.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	i, ok := tr.IndexOf(n[3])
	require.True(t, ok)
	require.Equal(t, 1, i)
	// 4 is a grandchild: IndexOf scans the root's direct children only.
	_, ok = tr.IndexOf(n[4])
	require.False(t, ok)

	i, ok = tr.IndexOfValue(3)
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = tr.IndexOfValue(4)
	require.False(t, ok)
}

func TestEmptyTree(t *testing.T) {
	tr := NewEmpty[string]()

	_, ok := tr.Root()
	require.False(t, ok)
	_, ok = tr.Search("x")
	require.False(t, ok)
	require.Equal(t, 0, tr.Len())
	require.Equal(t, -1, tr.Height())

	it := tr.NewIter()
	require.False(t, it.Valid())
	require.NoError(t, it.Error())

	_, err := tr.At(0)
	require.ErrorIs(t, err, ErrEmptyTree)
	err = tr.AppendChild(tr.Create("a"))
	require.ErrorIs(t, err, ErrEmptyTree)

	// The first value append defines the root rather than erroring.
	r := tr.AppendValue("root")
	got, ok := tr.Root()
	require.True(t, ok)
	require.Equal(t, r, got)
	require.Equal(t, 1, tr.Len())
}

func TestShape(t *testing.T) {
	tr, n := buildSmall(t)

	require.Equal(t, 4, tr.Len())
	require.Equal(t, 2, tr.Height())
	require.Equal(t, 0, tr.Depth(n[1]))
	require.Equal(t, 1, tr.Depth(n[2]))
	require.Equal(t, 2, tr.Depth(n[4]))
	require.True(t, tr.IsLeaf(n[4]))
	require.False(t, tr.IsLeaf(n[2]))
	require.True(t, tr.IsRoot(n[1]))
	require.False(t, tr.IsRoot(n[4]))
}

func TestSetValue(t *testing.T) {
	tr, n := buildSmall(t)
	tr.SetValue(n[3], 30)
	require.Equal(t, 30, tr.Value(n[3]))
	require.Equal(t, []int{1, 2, 4, 30}, preorderValues(tr))
	_, ok := tr.Search(3)
	require.False(t, ok)
}

func TestErrorDetail(t *testing.T) {
	tr, n := buildSmall(t)

	// Detail-carrying errors wrap the sentinel, so the kind is detectable
	// through the standard library's chain (which testify's ErrorIs uses)
	// as well as through cockroachdb/errors.
	err := tr.Append(n[1], n[4])
	require.ErrorIs(t, err, ErrAlreadyParented)
	require.True(t, errors.Is(err, ErrAlreadyParented))
	require.Contains(t, err.Error(), "n4")
	require.False(t, errors.Is(err, ErrCycle))

	d := tr.Create(9)
	err = tr.Append(d, d)
	require.ErrorIs(t, err, ErrCycle)
	require.True(t, errors.Is(err, ErrCycle))

	_, err = tr.Remove(n[1], n[4])
	require.ErrorIs(t, err, ErrNotAChild)
	require.True(t, errors.Is(err, ErrNotAChild))

	_, err = tr.At(7)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}
