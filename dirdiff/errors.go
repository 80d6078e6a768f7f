// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package dirdiff

import "errors"

// Sentinel errors for dirdiff operations.
var (
	// ErrInvalidMask indicates a filter mask that cannot be compiled.
	ErrInvalidMask = errors.New("invalid mask")
	// ErrInvalidCompareMode indicates unknown compare mode name.
	ErrInvalidCompareMode = errors.New("invalid compare mode")
)
