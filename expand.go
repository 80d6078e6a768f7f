// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import (
	"sort"
	"strings"
)

// Expander replaces macro references with the paths they were registered for.
type Expander struct {
	// refs are macro references ordered by descending length.
	refs []string
	// paths are path prefixes aligned with refs.
	paths []string
}

// Expander builds reverse mapping of the current table content.
//
// When several paths share one reference the first registered path wins.
func (t *Table) Expander() *Expander {
	entries := t.Entries()

	e := &Expander{
		refs:  make([]string, 0, len(entries)),
		paths: make([]string, 0, len(entries)),
	}

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Macro == "" {
			continue
		}

		if _, ok := seen[entry.Macro]; ok {
			continue
		}

		seen[entry.Macro] = struct{}{}
		e.refs = append(e.refs, entry.Macro)
		e.paths = append(e.paths, entry.Path)
	}

	// Longer references first so "file:$X$" is expanded before "$X$".
	order := make([]int, len(e.refs))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return len(e.refs[order[i]]) > len(e.refs[order[j]])
	})

	refs := make([]string, len(order))
	paths := make([]string, len(order))
	for i, o := range order {
		refs[i] = e.refs[o]
		paths[i] = e.paths[o]
	}

	e.refs = refs
	e.paths = paths
	return e
}

// Expand replaces every macro reference occurrence in text.
func (e *Expander) Expand(text string) string {
	if e == nil || text == "" {
		return text
	}

	for i := range e.refs {
		if !strings.Contains(text, e.refs[i]) {
			continue
		}

		text = strings.ReplaceAll(text, e.refs[i], e.paths[i])
	}

	return text
}

// Expand replaces macro references in text using the current table content.
func (t *Table) Expand(text string) string {
	return t.Expander().Expand(text)
}
