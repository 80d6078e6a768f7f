// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import "errors"

// Sentinel errors for pathmacros operations.
var (
	// ErrInvalidProtocol indicates malformed protocol token input.
	ErrInvalidProtocol = errors.New("invalid protocol")
	// ErrProtocolsFrozen indicates protocol registration after the process-wide set was used.
	ErrProtocolsFrozen = errors.New("protocol set is frozen")
)
