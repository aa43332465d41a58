// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <tree>",
	Short: "print a per-node summary table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := parseTreeArg(args[0])
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"node", "value", "depth", "children", "leaf"})
		for id, v := range tr.All() {
			table.Append([]string{
				id.String(),
				v,
				strconv.Itoa(tr.Depth(id)),
				strconv.Itoa(len(tr.Children(id))),
				crstrings.If(tr.IsLeaf(id), "yes"),
			})
		}
		table.Render()
		fmt.Printf("nodes=%d height=%d\n", tr.Len(), tr.Height())
		return nil
	},
}
