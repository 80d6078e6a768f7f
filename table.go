// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import (
	"hash/fnv"
	"strings"
	"sync"
)

// Table maps path prefixes to macro references and rewrites text with them.
//
// The zero value is an empty table using the process-wide protocol set.
type Table struct {
	// entries maps path prefix to macro reference.
	entries map[string]string
	// protocols expands every logical registration into protocol variants.
	protocols *ProtocolSet
	// index is the cached priority order, nil until first lookup.
	index *priorityIndex
	// order keeps path prefixes in first-insertion order.
	order []string
	// version is bumped on every effective mapping change.
	version uint64

	// mu guards all fields.
	mu sync.Mutex
}

// New creates an empty table using the process-wide protocol set.
func New() *Table {
	return NewWithProtocols(DefaultProtocols())
}

// NewWithProtocols creates an empty table using an explicit protocol set.
func NewWithProtocols(ps *ProtocolSet) *Table {
	if ps == nil {
		ps = DefaultProtocols()
	}

	return &Table{
		entries:   make(map[string]string),
		protocols: ps,
	}
}

// Clone returns an independent copy of the mapping.
//
// The priority index is not copied, the clone computes its own on demand.
func (t *Table) Clone() *Table {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := &Table{
		entries:   make(map[string]string, len(t.entries)),
		order:     make([]string, len(t.order)),
		protocols: t.protocolsLocked(),
	}

	copy(out.order, t.order)
	for k, v := range t.entries {
		out.entries[k] = v
	}

	return out
}

// RegisterPath registers path under macro name, e.g. ("/home/me/p", "PROJECT_DIR").
//
// Platform separators are converted to "/" and existing keys are overwritten.
func (t *Table) RegisterPath(path string, macroName string) {
	t.RegisterReplacement(SystemIndependentPath(path), MacroRef(macroName), true)
}

// RegisterReplacement registers path with macro expression and its protocol variants.
//
// One trailing "/" is stripped from path. For every protocol p the keys "p:path",
// "p:/path" and "p://path" are registered with the same protocol form of macroExpr.
// With overwrite=false an existing key keeps its value while new keys are still added.
func (t *Table) RegisterReplacement(path string, macroExpr string, overwrite bool) {
	path = strings.TrimSuffix(path, "/")

	t.mu.Lock()
	defer t.mu.Unlock()

	t.putLocked(path, macroExpr, overwrite)
	for _, p := range t.protocolsLocked().names {
		t.putLocked(p+":"+path, p+":"+macroExpr, overwrite)
		t.putLocked(p+":/"+path, p+":/"+macroExpr, overwrite)
		t.putLocked(p+"://"+path, p+"://"+macroExpr, overwrite)
	}
}

// Put inserts or overwrites one raw mapping without protocol expansion.
func (t *Table) Put(path string, replacement string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.putLocked(path, replacement, true)
}

// Get returns macro reference registered for exact path prefix.
func (t *Table) Get(path string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.entries[path]
	return v, ok
}

// Len returns number of registered path prefixes.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Entries returns registered mappings in first-insertion order.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Entry{Path: k, Macro: t.entries[k]})
	}

	return out
}

// Protocols returns protocol set used for registrations.
func (t *Table) Protocols() *ProtocolSet {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.protocolsLocked()
}

// Equal reports whether both tables hold the same mapping.
//
// Insertion order and cached index state are ignored.
func (t *Table) Equal(other *Table) bool {
	if t == other {
		return true
	}

	if t == nil || other == nil {
		return false
	}

	a := t.snapshotEntries()
	b := other.snapshotEntries()
	if len(a) != len(b) {
		return false
	}

	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Hash returns an insertion-order independent hash of the mapping.
//
// Equal tables always have equal hashes.
func (t *Table) Hash() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sum uint64
	for k, v := range t.entries {
		sum += hashString(k) ^ hashString(v)
	}

	return sum
}

// putLocked stores one mapping, honoring overwrite, and bumps version on change.
func (t *Table) putLocked(path string, value string, overwrite bool) {
	if t.entries == nil {
		t.entries = make(map[string]string)
	}

	old, exists := t.entries[path]
	if exists && (!overwrite || old == value) {
		return
	}

	if !exists {
		t.order = append(t.order, path)
	}

	t.entries[path] = value
	t.version++
}

// protocolsLocked returns table protocol set, falling back to the process-wide one.
func (t *Table) protocolsLocked() *ProtocolSet {
	if t.protocols == nil {
		t.protocols = DefaultProtocols()
	}

	return t.protocols
}

// snapshotEntries returns a private copy of the mapping.
func (t *Table) snapshotEntries() map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}

	return out
}

// hashString returns 64-bit FNV-1a hash of s.
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
