// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// ordtree is an introspection tool for the compact tree notation: it
// parses a tree description and walks, searches, or summarizes it.
package main

import (
	"io"
	"log"
	"os"

	"github.com/cockroachdb/ordtree"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ordtree [command] (flags)",
	Short: "ordered-tree introspection tool",
	Long: `Parses the compact tree notation, e.g. "1(2(4) 3)", and inspects the
resulting tree. Pass "-" as the tree argument to read the notation from
stdin.`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		walkCmd,
		searchCmd,
		statsCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseTreeArg parses the notation given as arg, or read from stdin when
// arg is "-".
func parseTreeArg(arg string) (*ordtree.Tree[string], error) {
	s := arg
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		s = string(b)
	}
	return ordtree.ParseTree(s)
}
