// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package cmd

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros"
)

// categoryLabels names macro categories, highest priority first.
var categoryLabels = []struct {
	label    string
	category int
}{
	{label: "project", category: 3},
	{label: "default", category: 2},
	{label: "fallback", category: 1},
}

func IndexCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "index",
		Short: "Print the priority index",
		Long:  `Print registered path prefixes in substitution order, grouped by macro category.`,
		Example: `  pathmacros index -c pathmacros.yaml
  pathmacros index -m /home/me=USER_HOME --protocol vfs`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	addTableFlags(command)

	command.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := initCore(cmd)
		if err != nil {
			return err
		}

		table, err := buildTable(cmd, cfg)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), renderIndex(table))
		return err
	}

	return command
}

// renderIndex draws ordered prefixes as a tree of categories.
func renderIndex(table *pathmacros.Table) string {
	prefixes := table.OrderedPrefixes()
	root := gotree.New(fmt.Sprintf("priority index (%d prefixes)", len(prefixes)))

	groups := make(map[int]gotree.Tree, len(categoryLabels))
	for _, c := range categoryLabels {
		groups[c.category] = root.Add(c.label)
	}

	for _, prefix := range prefixes {
		macro, _ := table.Get(prefix)
		node := groups[pathmacros.MacroCategory(macro)]
		node.Add(fmt.Sprintf("%s -> %s [%d]", prefix, macro, pathmacros.PriorityWeight(prefix, macro)))
	}

	return root.Print()
}
