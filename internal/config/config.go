// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package config loads layered pathmacros configuration.
//
// Layers, lowest first: built-in defaults, YAML file, PATHMACROS_ environment, command flags.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/woozymasta/pathmacros/internal/logger"
)

// EnvPrefix prefixes environment overrides, "__" separates nested keys.
const EnvPrefix = "PATHMACROS_"

const delim = "."

// Config is the full configuration.
type Config struct {
	DirDiff       DirDiff       `koanf:"dirdiff" yaml:"dirdiff"`
	Log           logger.Config `koanf:"log" yaml:"log"`
	Protocols     []string      `koanf:"protocols" yaml:"protocols"`
	Macros        []Macro       `koanf:"macros" yaml:"macros"`
	CaseSensitive bool          `koanf:"case_sensitive" yaml:"case_sensitive"`
	Recursive     bool          `koanf:"recursive" yaml:"recursive"`
}

// Macro is one registration. Exactly one of Name and Expr is set.
type Macro struct {
	// Path is the path prefix, backslashes are normalized for named macros.
	Path string `koanf:"path" yaml:"path"`
	// Name registers "$Name$" like RegisterPath.
	Name string `koanf:"name" yaml:"name,omitempty"`
	// Expr registers a raw replacement expression.
	Expr string `koanf:"expr" yaml:"expr,omitempty"`
	// KeepExisting keeps earlier registrations of the same keys.
	KeepExisting bool `koanf:"keep_existing" yaml:"keep_existing,omitempty"`
}

// DirDiff configures the directory comparison view.
type DirDiff struct {
	Filter      string `koanf:"filter" yaml:"filter"`
	CompareMode string `koanf:"compare_mode" yaml:"compare_mode"`
	ShowEqual   bool   `koanf:"show_equal" yaml:"show_equal"`
}

// flagKeys maps command flag names to config keys, other flags are ignored.
var flagKeys = map[string]string{
	"case-sensitive": "case_sensitive",
	"recursive":      "recursive",
	"protocol":       "protocols",
	"log":            "log.file",
	"verbose":        "log.verbosity",
	"quiet":          "log.quiet",
	"filter":         "dirdiff.filter",
	"compare-mode":   "dirdiff.compare_mode",
	"show-equal":     "dirdiff.show_equal",
}

// Defaults returns built-in values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"case_sensitive":       true,
		"recursive":            false,
		"dirdiff.filter":       "",
		"dirdiff.compare_mode": "content",
		"dirdiff.show_equal":   false,
		"log.verbosity":        0,
	}
}

// Load reads configuration layers. Empty path skips the file layer, nil flags skips flags.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(Defaults(), delim), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}

		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, delim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, delim, k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}

			return key, flagValue(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps PATHMACROS_DIRDIFF__SHOW_EQUAL to dirdiff.show_equal.
func envKey(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.ReplaceAll(name, "__", delim)
}

// flagValue returns typed flag value so lists and counters survive decoding.
func flagValue(flags *pflag.FlagSet, f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "bool":
		v, _ := flags.GetBool(f.Name)
		return v
	case "count":
		v, _ := flags.GetCount(f.Name)
		return v
	case "int":
		v, _ := flags.GetInt(f.Name)
		return v
	case "stringSlice":
		v, _ := flags.GetStringSlice(f.Name)
		return v
	case "stringArray":
		v, _ := flags.GetStringArray(f.Name)
		return v
	default:
		return f.Value.String()
	}
}
