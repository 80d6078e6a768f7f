// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros"
	"github.com/woozymasta/pathmacros/internal/logger"
)

type filteredFile struct {
	path string
	size uint64
}

func FilterCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "filter DIR",
		Short: "List files accepted by the dir-diff filter",
		Long:  `Walk DIR and list files whose names pass the dir-diff filter mask, with paths collapsed to macros.`,
		Example: `  pathmacros filter --filter '*.iml' -m /home/me/project=PROJECT_DIR /home/me/project
  pathmacros filter -c pathmacros.yaml .`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	addTableFlags(command)
	command.Flags().String("filter", "", "File name mask, * and ? wildcards and [...] classes")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := initCore(cmd)
		if err != nil {
			return err
		}

		log := logger.GetLogger("filter")

		settings, err := cfg.DirDiffSettings()
		if err != nil {
			return err
		}

		table, err := buildTable(cmd, cfg)
		if err != nil {
			return err
		}

		root, err := filepath.Abs(args[0])
		if err != nil {
			return errors.Wrapf(err, "resolve %s", args[0])
		}

		dirCheck := filecheck.Provisos{
			Checks:    []check.FileInfo{check.FileInfoIsDir},
			Existence: filecheck.MustExist,
		}
		if err := dirCheck.StatusCheck(root); err != nil {
			return errors.Wrap(err, "filter root")
		}

		log.Debugf("Walking %s with filter %q", root, settings.FilterPattern())

		var (
			mu    sync.Mutex
			files []filteredFile
			total uint64
		)

		err = fastwalk.Walk(&fastwalk.Config{}, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				mu.Lock()
				log.WithError(err).Warnf("Skipping unreadable path: %q", path)
				mu.Unlock()
				return nil
			}

			if d.IsDir() || !settings.Accepts(d.Name()) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return nil
			}

			size := uint64(info.Size())

			mu.Lock()
			files = append(files, filteredFile{path: path, size: size})
			total += size
			mu.Unlock()
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "walk %s", root)
		}

		sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })

		out := cmd.OutOrStdout()
		for _, f := range files {
			shown := table.Substitute(pathmacros.SystemIndependentPath(f.path), cfg.CaseSensitive)
			fmt.Fprintf(out, "%10s  %s\n", humanize.IBytes(f.size), shown)
		}

		log.WithField("total_size", humanize.IBytes(total)).Infof("Matched %d files", len(files))
		return nil
	}

	return command
}
