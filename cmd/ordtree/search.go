// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <value> <tree>",
	Short: "find the first pre-order node holding a value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := parseTreeArg(args[1])
		if err != nil {
			return err
		}
		id, ok := tr.Search(args[0])
		if !ok {
			return errors.Newf("value %q not found", args[0])
		}
		fmt.Printf("%s: depth=%d children=%d\n", id, tr.Depth(id), len(tr.Children(id)))
		return nil
	},
}
