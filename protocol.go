// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import (
	"fmt"
	"strings"
	"sync"

	"github.com/scylladb/go-set/strset"
)

// Built-in protocol tokens, always first in every protocol set.
const (
	ProtocolFile = "file"
	ProtocolJar  = "jar"
)

// ProtocolSet is an immutable ordered set of URL-like protocol tokens.
type ProtocolSet struct {
	// members is used for duplicate detection and lookups.
	members *strset.Set
	// names keeps registration order for deterministic derived keys.
	names []string
}

// processProtocols is the append-only process-wide protocol registry.
var processProtocols = struct {
	// snapshot is set on first use and never changes afterwards.
	snapshot *ProtocolSet
	// extra holds tokens registered before the first use.
	extra []string
	mu    sync.Mutex
}{}

// NewProtocolSet returns an independent set of built-in tokens followed by extra tokens.
//
// Invalid and duplicate extra tokens are skipped.
func NewProtocolSet(extra ...string) *ProtocolSet {
	ps := &ProtocolSet{
		members: strset.New(),
		names:   make([]string, 0, 2+len(extra)),
	}

	ps.add(ProtocolFile)
	ps.add(ProtocolJar)
	for _, name := range extra {
		if ValidateProtocol(name) != nil {
			continue
		}

		ps.add(name)
	}

	return ps
}

// RegisterProtocol appends a token to the process-wide protocol set.
//
// Registration is only possible before the first DefaultProtocols call (every New
// table makes one). Registering a known token again is a no-op.
func RegisterProtocol(name string) error {
	if err := ValidateProtocol(name); err != nil {
		return err
	}

	processProtocols.mu.Lock()
	defer processProtocols.mu.Unlock()

	if processProtocols.snapshot != nil {
		if processProtocols.snapshot.Has(name) {
			return nil
		}

		return fmt.Errorf("%w: cannot add %q", ErrProtocolsFrozen, name)
	}

	processProtocols.extra = append(processProtocols.extra, name)
	return nil
}

// DefaultProtocols freezes and returns the process-wide protocol set.
func DefaultProtocols() *ProtocolSet {
	processProtocols.mu.Lock()
	defer processProtocols.mu.Unlock()

	if processProtocols.snapshot == nil {
		processProtocols.snapshot = NewProtocolSet(processProtocols.extra...)
		processProtocols.extra = nil
	}

	return processProtocols.snapshot
}

// List returns protocol tokens in registration order.
func (ps *ProtocolSet) List() []string {
	if ps == nil {
		return nil
	}

	out := make([]string, len(ps.names))
	copy(out, ps.names)
	return out
}

// Has reports whether token is a member of the set.
func (ps *ProtocolSet) Has(name string) bool {
	return ps != nil && ps.members.Has(name)
}

// Len returns number of protocol tokens.
func (ps *ProtocolSet) Len() int {
	if ps == nil {
		return 0
	}

	return len(ps.names)
}

// add appends one token unless it is already present.
func (ps *ProtocolSet) add(name string) {
	if ps.members.Has(name) {
		return
	}

	ps.members.Add(name)
	ps.names = append(ps.names, name)
}

// ValidateProtocol checks that token can be joined as "token:path".
func ValidateProtocol(name string) error {
	if strings.TrimSpace(name) != name || name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidProtocol, name)
	}

	if strings.ContainsAny(name, ":/\\ ") {
		return fmt.Errorf("%w: %q contains separator", ErrInvalidProtocol, name)
	}

	return nil
}
