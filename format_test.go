// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ordtree

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestDebugString(t *testing.T) {
	tr, _ := buildSmall(t)
	require.Equal(t, "1\n  2\n    4\n  3\n", tr.DebugString())
	require.Equal(t, "<empty>\n", NewEmpty[int]().DebugString())
}

func TestParseTree(t *testing.T) {
	tr, err := ParseTree("1(2(4) 3)")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "4", "3"}, preorderValues(tr))
	tr.verify()

	// DebugString output of a parsed tree matches the hand-built one.
	require.Equal(t, "1\n  2\n    4\n  3\n", tr.DebugString())

	tr, err = ParseTree("")
	require.NoError(t, err)
	_, ok := tr.Root()
	require.False(t, ok)

	_, err = ParseTree("1(2")
	require.Error(t, err)
}

func TestParseTreeDeep(t *testing.T) {
	// A pathologically nested notation string: parsing and construction
	// use explicit stacks, so depth is not bounded by the call stack.
	const depth = 100000
	var sb strings.Builder
	sb.WriteString("0")
	for i := 1; i < depth; i++ {
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteString(strings.Repeat(")", depth-1))

	tr, err := ParseTree(sb.String())
	require.NoError(t, err)
	require.Equal(t, depth, tr.Len())
	require.Equal(t, depth-1, tr.Height())

	id, ok := tr.Search(strconv.Itoa(depth - 1))
	require.True(t, ok)
	require.Equal(t, depth-1, tr.Depth(id))
}

func TestNodeIDFormat(t *testing.T) {
	require.Equal(t, "nil", NilNode.String())
	require.Equal(t, "n7", NodeID(7).String())

	// Handles are safe to log unredacted.
	require.Equal(t, "n7", string(redact.Sprint(NodeID(7))))
	require.Equal(t, "nil", string(redact.Sprint(NilNode)))
}
