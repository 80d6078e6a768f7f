// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package dirdiff holds view settings of a directory comparison.
package dirdiff

import (
	"fmt"
	"strings"
)

// CompareMode selects how two files are considered equal.
type CompareMode uint8

const (
	// CompareContent compares size and, when equal, content. Ignores timestamps.
	CompareContent CompareMode = iota
	// CompareSize compares size only.
	CompareSize
	// CompareTimestamp compares size and, when equal, modification time.
	CompareTimestamp
)

// String returns lower-case mode name.
func (m CompareMode) String() string {
	switch m {
	case CompareContent:
		return "content"
	case CompareSize:
		return "size"
	case CompareTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("CompareMode(%d)", uint8(m))
	}
}

// ParseCompareMode parses a mode name, case-insensitively. Empty input is CompareContent.
func ParseCompareMode(raw string) (CompareMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "content":
		return CompareContent, nil
	case "size":
		return CompareSize, nil
	case "timestamp":
		return CompareTimestamp, nil
	default:
		return CompareContent, fmt.Errorf("%w: %q", ErrInvalidCompareMode, raw)
	}
}

// Settings is the state of a directory comparison view.
type Settings struct {
	// filterPattern is compiled filter, nil means match all.
	filterPattern *Mask
	// filter is the mask as entered by the user.
	filter string

	ShowSize         bool        `json:"show_size" yaml:"show_size"`
	ShowDate         bool        `json:"show_date" yaml:"show_date"`
	ShowEqual        bool        `json:"show_equal" yaml:"show_equal"`
	ShowDifferent    bool        `json:"show_different" yaml:"show_different"`
	ShowNewOnSource  bool        `json:"show_new_on_source" yaml:"show_new_on_source"`
	ShowNewOnTarget  bool        `json:"show_new_on_target" yaml:"show_new_on_target"`
	ShowCompareModes bool        `json:"show_compare_modes" yaml:"show_compare_modes"`
	CompareMode      CompareMode `json:"compare_mode" yaml:"compare_mode"`
}

// NewSettings returns settings with defaults: everything but equal entries shown,
// content comparison, no filter.
func NewSettings() *Settings {
	return &Settings{
		ShowSize:         true,
		ShowDate:         true,
		ShowEqual:        false,
		ShowDifferent:    true,
		ShowNewOnSource:  true,
		ShowNewOnTarget:  true,
		ShowCompareModes: true,
		CompareMode:      CompareContent,
	}
}

// Filter returns the mask as set by SetFilter.
func (s *Settings) Filter() string {
	return s.filter
}

// SetFilter sets the name filter mask. Empty mask matches every name.
//
// On error the previous filter is kept.
func (s *Settings) SetFilter(mask string) error {
	source := mask
	if source == "" {
		source = matchAllMask
	}

	compiled, err := CompileMask(source, false)
	if err != nil {
		return err
	}

	s.filter = mask
	s.filterPattern = compiled
	return nil
}

// FilterPattern returns compiled filter.
func (s *Settings) FilterPattern() *Mask {
	if s.filterPattern == nil {
		return MustCompileMask(matchAllMask, false)
	}

	return s.filterPattern
}

// Accepts reports whether name passes the filter.
func (s *Settings) Accepts(name string) bool {
	return s.FilterPattern().Match(name)
}
