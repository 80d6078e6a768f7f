// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pathmacros/dirdiff"
)

const sampleConfig = `
protocols: [vfs]
case_sensitive: false
macros:
  - path: /home/user/project
    name: PROJECT_DIR
  - path: 'C:\Users\me'
    name: USER_HOME
  - path: /opt/tools
    expr: $TOOLS$
    keep_existing: true
dirdiff:
  filter: "*.go"
  compare_mode: size
  show_equal: true
log:
  verbosity: 1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pathmacros.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("case-sensitive", true, "")
	fs.Bool("recursive", false, "")
	fs.StringSlice("protocol", nil, "")
	fs.String("filter", "", "")
	fs.CountP("verbose", "v", "")
	fs.String("config", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	require.True(t, cfg.CaseSensitive)
	require.False(t, cfg.Recursive)
	require.Empty(t, cfg.Macros)
	require.Equal(t, "content", cfg.DirDiff.CompareMode)
	require.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	require.Equal(t, []string{"vfs"}, cfg.Protocols)
	require.False(t, cfg.CaseSensitive)
	require.Len(t, cfg.Macros, 3)
	require.Equal(t, Macro{Path: "/opt/tools", Expr: "$TOOLS$", KeepExisting: true}, cfg.Macros[2])
	require.Equal(t, DirDiff{Filter: "*.go", CompareMode: "size", ShowEqual: true}, cfg.DirDiff)
	require.Equal(t, 1, cfg.Log.Verbosity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("PATHMACROS_RECURSIVE", "true")
	t.Setenv("PATHMACROS_DIRDIFF__FILTER", "*.txt")

	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	require.True(t, cfg.Recursive)
	require.Equal(t, "*.txt", cfg.DirDiff.Filter)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	flags := newFlags(t, "--case-sensitive", "--protocol", "zip", "-vv")

	cfg, err := Load(writeConfig(t, sampleConfig), flags)
	require.NoError(t, err)

	require.True(t, cfg.CaseSensitive)
	require.Equal(t, []string{"zip"}, cfg.Protocols)
	require.Equal(t, 2, cfg.Log.Verbosity)
	require.Equal(t, "*.go", cfg.DirDiff.Filter, "unchanged flag must not override file")
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "protocol with separator",
			cfg:  Config{Protocols: []string{"vfs", "a:b"}},
			want: "protocols:2",
		},
		{
			name: "macro without target",
			cfg:  Config{Macros: []Macro{{Path: "/a", Name: "A"}, {Path: "/b"}}},
			want: "macros:2",
		},
		{
			name: "macro with both targets",
			cfg:  Config{Macros: []Macro{{Path: "/a", Name: "A", Expr: "$A$"}}},
			want: "macros:1",
		},
		{
			name: "macro without path",
			cfg:  Config{Macros: []Macro{{Name: "A"}}},
			want: "path is empty",
		},
		{
			name: "macro name with dollar",
			cfg:  Config{Macros: []Macro{{Path: "/a", Name: "$A$"}}},
			want: "must not contain $",
		},
		{
			name: "compare mode",
			cfg:  Config{DirDiff: DirDiff{CompareMode: "hash"}},
			want: "dirdiff",
		},
		{
			name: "filter",
			cfg:  Config{DirDiff: DirDiff{Filter: "[z-a]"}},
			want: "dirdiff",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildTable(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	table := cfg.BuildTable()
	require.True(t, table.Protocols().Has("vfs"))

	got, ok := table.Get("vfs:/home/user/project")
	require.True(t, ok)
	require.Equal(t, "vfs:$PROJECT_DIR$", got)

	got, ok = table.Get("C:/Users/me")
	require.True(t, ok)
	require.Equal(t, "$USER_HOME$", got)

	require.Equal(t, "$PROJECT_DIR$/src/main.go", table.Substitute("/home/user/project/src/main.go", cfg.CaseSensitive))
	require.Equal(t, "$TOOLS$/bin", table.Substitute("/OPT/tools/bin", cfg.CaseSensitive))
}

func TestBuildTableKeepExisting(t *testing.T) {
	t.Parallel()

	cfg := Config{Macros: []Macro{
		{Path: "/srv", Name: "FIRST"},
		{Path: "/srv", Name: "SECOND", KeepExisting: true},
		{Path: "/opt", Name: "OLD"},
		{Path: "/opt", Name: "NEW"},
	}}

	table := cfg.BuildTable()

	got, _ := table.Get("/srv")
	require.Equal(t, "$FIRST$", got)
	got, _ = table.Get("/opt")
	require.Equal(t, "$NEW$", got)
}

func TestDirDiffSettings(t *testing.T) {
	t.Parallel()

	cfg := Config{DirDiff: DirDiff{Filter: "*.go", CompareMode: "timestamp", ShowEqual: true}}

	s, err := cfg.DirDiffSettings()
	require.NoError(t, err)
	require.Equal(t, dirdiff.CompareTimestamp, s.CompareMode)
	require.True(t, s.ShowEqual)
	require.True(t, s.Accepts("main.go"))
	require.False(t, s.Accepts("README.md"))

	cfg.DirDiff.CompareMode = "bogus"
	_, err = cfg.DirDiffSettings()
	require.ErrorIs(t, err, dirdiff.ErrInvalidCompareMode)
}
