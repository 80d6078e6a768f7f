// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build info, set with -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	Timestamp = "unknown"
)

func VersionCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Long:  `Print version info`,
		Example: `  pathmacros version
  pathmacros version --help`,
	}

	command.RunE = func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "pathmacros version: %s commit: %s built at: %s\n", Version, GitCommit, Timestamp)
		return err
	}

	return command
}
