// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package cmd holds the pathmacros CLI commands.
package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmacros"
	"github.com/woozymasta/pathmacros/internal/config"
	"github.com/woozymasta/pathmacros/internal/logger"
)

var (
	// Global flags
	FlagConfigFile = ""
	FlagLogFile    = ""
	FlagLogLevel   = 0
	FlagQuiet      = false
)

// maxLineSize bounds one input line.
const maxLineSize = 16 * 1024 * 1024

// initCore loads configuration layered with flags of cmd and applies log settings.
func initCore(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(FlagConfigFile, cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger.Init(cfg.Log)
	return cfg, nil
}

// addTableFlags registers flags shared by commands that build a table.
func addTableFlags(command *cobra.Command) {
	command.Flags().Bool("case-sensitive", true, "Match path prefixes case-sensitively")
	command.Flags().StringSlice("protocol", nil, "Extra URL protocol to derive registrations for")
	command.Flags().StringArrayP("macro", "m", nil, "Extra macro as PATH=NAME, applied after config")
}

// buildTable creates table from config and --macro flags.
func buildTable(cmd *cobra.Command, cfg *config.Config) (*pathmacros.Table, error) {
	table := cfg.BuildTable()

	extra, err := cmd.Flags().GetStringArray("macro")
	if err != nil {
		return nil, errors.Wrap(err, "read --macro")
	}

	for _, raw := range extra {
		idx := strings.LastIndex(raw, "=")
		if idx <= 0 || idx == len(raw)-1 {
			return nil, errors.Errorf("invalid --macro %q, expected PATH=NAME", raw)
		}

		table.RegisterPath(raw[:idx], raw[idx+1:])
	}

	return table, nil
}

// processInputs applies fn to lines of every file, or of stdin when files is empty.
//
// Line terminators ("\n" or "\r\n") are kept as read, fn only sees line content.
func processInputs(cmd *cobra.Command, files []string, fn func(lines []string) []string) error {
	out := bufio.NewWriter(cmd.OutOrStdout())

	if len(files) == 0 {
		if err := processReader(cmd.InOrStdin(), out, fn); err != nil {
			return err
		}

		return flush(out)
	}

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "open %s", name)
		}

		err = processReader(f, out, fn)
		_ = f.Close()
		if err != nil {
			return errors.Wrapf(err, "process %s", name)
		}
	}

	return flush(out)
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}

func processReader(r io.Reader, w io.Writer, fn func(lines []string) []string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanRawLines)

	var (
		lines []string
		ends  []string
	)
	for scanner.Scan() {
		line, end := splitLineEnd(scanner.Text())
		lines = append(lines, line)
		ends = append(ends, end)
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	for i, line := range fn(lines) {
		if _, err := io.WriteString(w, line+ends[i]); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

// scanRawLines is bufio.ScanLines keeping the terminator in the token.
func scanRawLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// splitLineEnd separates line content from its "\n" or "\r\n" terminator.
func splitLineEnd(token string) (string, string) {
	switch {
	case strings.HasSuffix(token, "\r\n"):
		return token[:len(token)-2], "\r\n"
	case strings.HasSuffix(token, "\n"):
		return token[:len(token)-1], "\n"
	default:
		return token, ""
	}
}
