// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import (
	"sort"
	"strings"

	"github.com/woozymasta/pathmacros/internal/logger"
)

var log = logger.GetLogger("index")

// priorityIndex is the cached, weight-ordered view of table entries.
type priorityIndex struct {
	// prefixes are path prefixes ordered by descending weight.
	prefixes []string
	// macros are references aligned with prefixes.
	macros []string
	// version is the table version the index was built from.
	version uint64
}

// OrderedPrefixes returns registered path prefixes in the order substitution tries them.
func (t *Table) OrderedPrefixes() []string {
	idx := t.currentIndex()

	out := make([]string, len(idx.prefixes))
	copy(out, idx.prefixes)
	return out
}

// MacroCategory returns priority category (1..3) of a macro reference.
//
// Home-like and relative references are fallbacks (1), project-like references win (3).
func MacroCategory(macro string) int {
	if strings.Contains(macro, "..") ||
		strings.Contains(macro, MacroRef(UserHomeMacro)) ||
		strings.Contains(macro, MacroRef(ApplicationHomeMacro)) {
		return categoryFallback
	}

	if strings.Contains(macro, DeprecatedModuleDir) ||
		strings.Contains(macro, MacroRef(ProjectDirMacro)) ||
		strings.Contains(macro, MacroRef(MavenRepositoryMacro)) {
		return categoryProject
	}

	return categoryDefault
}

// PriorityWeight returns ordering weight of one mapping, higher is tried first.
func PriorityWeight(prefix string, macro string) int {
	return MacroCategory(macro)*categoryStride + prefixSpecificity(prefix)
}

// prefixSpecificity returns prefix length without leading protocol token and slashes.
func prefixSpecificity(prefix string) int {
	prefix = strings.TrimPrefix(prefix, ProtocolJar+":")
	prefix = strings.TrimPrefix(prefix, ProtocolFile+":")
	return len(strings.TrimLeft(prefix, "/"))
}

// currentIndex returns cached index, rebuilding it when the table changed since.
func (t *Table) currentIndex() *priorityIndex {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.index != nil && t.index.version == t.version {
		return t.index
	}

	t.index = buildPriorityIndex(t.order, t.entries, t.version)
	log.Tracef("Rebuilt priority index: %d prefixes (version %d)", len(t.index.prefixes), t.version)
	return t.index
}

// buildPriorityIndex sorts entries by descending weight, keeping insertion order on ties.
func buildPriorityIndex(order []string, entries map[string]string, version uint64) *priorityIndex {
	type weighted struct {
		prefix string
		macro  string
		weight int
	}

	items := make([]weighted, 0, len(order))
	for _, prefix := range order {
		macro := entries[prefix]
		items = append(items, weighted{
			prefix: prefix,
			macro:  macro,
			weight: PriorityWeight(prefix, macro),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].weight > items[j].weight
	})

	idx := &priorityIndex{
		prefixes: make([]string, len(items)),
		macros:   make([]string, len(items)),
		version:  version,
	}

	for i := range items {
		idx.prefixes[i] = items[i].prefix
		idx.macros[i] = items[i].macro
	}

	return idx
}
