// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package config

import (
	"strings"

	"github.com/nickwells/location.mod/location"
	"github.com/pkg/errors"

	"github.com/woozymasta/pathmacros"
	"github.com/woozymasta/pathmacros/dirdiff"
)

// ErrInvalidConfig marks configuration validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks protocols, macros and dirdiff values.
//
// Errors name the offending entry as "section:N" with N counted from 1.
func (c *Config) Validate() error {
	loc := location.New("protocols")
	for _, p := range c.Protocols {
		loc.Incr()
		if err := pathmacros.ValidateProtocol(p); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s: %v", loc, err)
		}
	}

	loc = location.New("macros")
	for _, m := range c.Macros {
		loc.Incr()
		if err := m.validate(); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s: %v", loc, err)
		}
	}

	if _, err := dirdiff.ParseCompareMode(c.DirDiff.CompareMode); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "dirdiff: %v", err)
	}

	if _, err := dirdiff.CompileMask(orAll(c.DirDiff.Filter), false); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "dirdiff: %v", err)
	}

	return nil
}

func (m Macro) validate() error {
	switch {
	case m.Path == "":
		return errors.New("path is empty")
	case m.Name == "" && m.Expr == "":
		return errors.New("one of name or expr is required")
	case m.Name != "" && m.Expr != "":
		return errors.New("name and expr are exclusive")
	case strings.Contains(m.Name, "$"):
		return errors.Errorf("name %q must not contain $", m.Name)
	}

	return nil
}

// BuildTable creates a table with configured protocols and macros in file order.
func (c *Config) BuildTable() *pathmacros.Table {
	t := pathmacros.NewWithProtocols(pathmacros.NewProtocolSet(c.Protocols...))

	for _, m := range c.Macros {
		overwrite := !m.KeepExisting
		if m.Name != "" {
			t.RegisterReplacement(pathmacros.SystemIndependentPath(m.Path), pathmacros.MacroRef(m.Name), overwrite)
			continue
		}

		t.RegisterReplacement(m.Path, m.Expr, overwrite)
	}

	return t
}

// DirDiffSettings creates view settings from dirdiff section.
func (c *Config) DirDiffSettings() (*dirdiff.Settings, error) {
	s := dirdiff.NewSettings()
	s.ShowEqual = c.DirDiff.ShowEqual

	mode, err := dirdiff.ParseCompareMode(c.DirDiff.CompareMode)
	if err != nil {
		return nil, errors.Wrap(err, "dirdiff compare mode")
	}
	s.CompareMode = mode

	if err := s.SetFilter(c.DirDiff.Filter); err != nil {
		return nil, errors.Wrap(err, "dirdiff filter")
	}

	return s, nil
}

func orAll(mask string) string {
	if mask == "" {
		return "*"
	}

	return mask
}
