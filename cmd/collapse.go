// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros/internal/logger"
)

func CollapseCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "collapse [FILE...]",
		Short: "Replace absolute paths with macros",
		Long:  `Replace registered path prefixes with macro references in every line of the input files, or of stdin.
Line endings (LF or CRLF) are written back as read.`,
		Example: `  pathmacros collapse -m /home/me/project=PROJECT_DIR workspace.xml
  echo /home/me/project/src | pathmacros collapse -c pathmacros.yaml --recursive`,
		SilenceUsage: true,
	}

	addTableFlags(command)
	command.Flags().Bool("recursive", false, "Replace path prefixes anywhere in a line")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := initCore(cmd)
		if err != nil {
			return err
		}

		log := logger.GetLogger("collapse")

		table, err := buildTable(cmd, cfg)
		if err != nil {
			return err
		}

		log.Debugf("Collapsing with %d registrations (recursive: %v, case-sensitive: %v)",
			table.Len(), cfg.Recursive, cfg.CaseSensitive)

		return processInputs(cmd, args, func(lines []string) []string {
			return table.SubstituteAll(lines, cfg.CaseSensitive, cfg.Recursive)
		})
	}

	return command
}
