// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var walkFlat bool

var walkCmd = &cobra.Command{
	Use:   "walk <tree>",
	Short: "print the tree in pre-order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := parseTreeArg(args[0])
		if err != nil {
			return err
		}
		if walkFlat {
			var vals []string
			for it := tr.NewIter(); it.Valid(); it.Next() {
				vals = append(vals, it.Value())
			}
			fmt.Println(strings.Join(vals, " "))
			return nil
		}
		fmt.Print(tr.DebugString())
		return nil
	},
}

func init() {
	walkCmd.Flags().BoolVarP(
		&walkFlat, "flat", "f", false, "print values on one line instead of indenting")
}
