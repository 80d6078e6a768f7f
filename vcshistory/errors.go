// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package vcshistory

import "errors"

// Sentinel errors for vcshistory operations.
var (
	// ErrMissingData indicates the event lacks project, VCS or a single selected change.
	ErrMissingData = errors.New("missing action data")
	// ErrUnsupportedProvider indicates the VCS history provider cannot start at a revision.
	ErrUnsupportedProvider = errors.New("history provider does not support revisions")
	// ErrNoHelper indicates no VCS helper is available for the project.
	ErrNoHelper = errors.New("vcs helper is not available")
)
