// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/ordtree/internal/treeparse"
)

// DebugString returns an indented rendering of the tree, one node per
// line, children indented two spaces under their parent. Values are
// rendered with %v. Intended for tests and diagnostics; the container
// itself never formats values.
func (t *Tree[V]) DebugString() string {
	if t.root == NilNode {
		return "<empty>\n"
	}
	type frame struct {
		n     NodeID
		depth int
	}
	var sb strings.Builder
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&sb, "%s%v\n", strings.Repeat("  ", f.depth), t.node(f.n).value)
		children := t.node(f.n).children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: children[i], depth: f.depth + 1})
		}
	}
	return sb.String()
}

// ParseTree builds a Tree[string] from the compact notation parsed by
// internal/treeparse: a value optionally followed by a parenthesized list
// of child subtrees, e.g. "1(2(4) 3)". An empty input yields a rootless
// tree.
func ParseTree(s string) (*Tree[string], error) {
	parsed, err := treeparse.Parse(s)
	if err != nil {
		return nil, err
	}
	t := NewEmpty[string]()
	if parsed == nil {
		return t, nil
	}
	// Iterative pre-order construction; like traversal, build depth must
	// not be bounded by the call stack. Handles are issued in pre-order.
	type frame struct {
		src    *treeparse.Node
		parent NodeID
	}
	stack := []frame{{src: parsed}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := t.Create(f.src.Value)
		if f.parent == NilNode {
			t.root = id
		} else {
			p := t.node(f.parent)
			p.children = append(p.children, id)
			t.node(id).parent = f.parent
		}
		for i := len(f.src.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{src: &f.src.Children[i], parent: id})
		}
	}
	return t, nil
}
