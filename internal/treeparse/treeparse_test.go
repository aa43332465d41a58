// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := Parse("1(2(4) 3)")
	require.NoError(t, err)
	require.Equal(t,
		&Node{Value: "1", Children: []Node{
			{Value: "2", Children: []Node{{Value: "4"}}},
			{Value: "3"},
		}}, n)

	// Whitespace is insignificant; parens need no surrounding spaces.
	m, err := Parse("  1 ( 2(4)\n\t3 ) ")
	require.NoError(t, err)
	require.Equal(t, n, m)
}

func TestParseSingle(t *testing.T) {
	n, err := Parse("root")
	require.NoError(t, err)
	require.Equal(t, &Node{Value: "root"}, n)
}

func TestParseEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t"} {
		n, err := Parse(s)
		require.NoError(t, err)
		require.Nil(t, n)
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"(",           // no value
		")",           // no value
		"1(",          // unterminated child list
		"1(2",         // unterminated child list
		"1()",         // empty child list
		"1(2) 3",      // trailing tokens
		"1(2))",       // extra close
		"1(2( ) 3)",   // empty nested child list
		"a(b) c(d) e", // forest, not a tree
	} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
	}
}
