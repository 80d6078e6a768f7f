// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros/cmd"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "pathmacros",
		Short: "Collapse absolute paths into portable macros",
		Long: `A CLI application that replaces absolute paths in text with macro references
such as $PROJECT_DIR$, and expands them back.
`,
	}

	// Parse persistent flags
	rootCmd.PersistentFlags().StringVarP(&cmd.FlagConfigFile, "config", "c", cmd.FlagConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVarP(&cmd.FlagLogFile, "log", "l", cmd.FlagLogFile, "Log file")
	rootCmd.PersistentFlags().CountVarP(&cmd.FlagLogLevel, "verbose", "v", "Verbose level")
	rootCmd.PersistentFlags().BoolVarP(&cmd.FlagQuiet, "quiet", "q", cmd.FlagQuiet, "Disable log output to stderr")

	rootCmd.AddCommand(cmd.CollapseCommand())
	rootCmd.AddCommand(cmd.ExpandCommand())
	rootCmd.AddCommand(cmd.IndexCommand())
	rootCmd.AddCommand(cmd.FilterCommand())
	rootCmd.AddCommand(cmd.VersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
