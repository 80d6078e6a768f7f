// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros/internal/logger"
)

func ExpandCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "expand [FILE...]",
		Short: "Replace macros with absolute paths",
		Long:  `Replace macro references with their registered paths in every line of the input files, or of stdin.
Line endings (LF or CRLF) are written back as read.`,
		Example: `  pathmacros expand -m /home/me/project=PROJECT_DIR workspace.xml
  echo '$PROJECT_DIR$/src' | pathmacros expand -c pathmacros.yaml`,
		SilenceUsage: true,
	}

	addTableFlags(command)

	command.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := initCore(cmd)
		if err != nil {
			return err
		}

		log := logger.GetLogger("expand")

		table, err := buildTable(cmd, cfg)
		if err != nil {
			return err
		}

		expander := table.Expander()
		log.Debugf("Expanding with %d registrations", table.Len())

		return processInputs(cmd, args, func(lines []string) []string {
			for i, line := range lines {
				lines[i] = expander.Expand(line)
			}
			return lines
		})
	}

	return command
}
