// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import "strings"

// Substitute collapses a registered path prefix at the start of text.
//
// Every prefix is tried in priority order against the latest text. A prefix matches
// when text starts with it and the next byte is absent, "/" or the "!/" archive entry
// separator; prefixes ending in a drive root (":/") skip the boundary check.
func (t *Table) Substitute(text string, caseSensitive bool) string {
	if text == "" {
		return text
	}

	idx := t.currentIndex()
	for i := range idx.prefixes {
		text = replaceAnchored(text, idx.prefixes[i], idx.macros[i], caseSensitive)
	}

	return text
}

// SubstituteRecursively collapses every boundary-safe occurrence of registered prefixes
// anywhere in text.
//
// In addition to the anchored rules, an occurrence may be followed by `"` or a space,
// and is rejected when preceded by a letter, digit or "_". Higher priority prefixes
// rewrite the text before lower priority prefixes see it.
func (t *Table) SubstituteRecursively(text string, caseSensitive bool) string {
	if text == "" {
		return text
	}

	idx := t.currentIndex()
	for i := range idx.prefixes {
		text = replaceRecursively(text, idx.prefixes[i], idx.macros[i], caseSensitive)
	}

	return text
}

// SubstituteAll collapses many values using one priority index snapshot.
func (t *Table) SubstituteAll(texts []string, caseSensitive bool, recursive bool) []string {
	idx := t.currentIndex()

	out := make([]string, len(texts))
	for n, text := range texts {
		for i := range idx.prefixes {
			if recursive {
				text = replaceRecursively(text, idx.prefixes[i], idx.macros[i], caseSensitive)
			} else {
				text = replaceAnchored(text, idx.prefixes[i], idx.macros[i], caseSensitive)
			}
		}

		out[n] = text
	}

	return out
}

// replaceAnchored replaces prefix at text start when it ends on a path boundary.
func replaceAnchored(text string, prefix string, macro string, caseSensitive bool) string {
	if prefix == "" || (caseSensitive && len(text) < len(prefix)) {
		return text
	}

	end := matchAt(text, 0, prefix, caseSensitive)
	if end < 0 {
		return text
	}

	// Do not collapse partial paths: "/a/b/cd" must not match "/a/b/cdeFgh".
	if !isDriveRoot(prefix) && !isPathBoundary(text, end) {
		return text
	}

	return macro + text[end:]
}

// replaceRecursively replaces all boundary-safe occurrences of prefix in text.
//
// Returns text itself when nothing was replaced.
func replaceRecursively(text string, prefix string, macro string, caseSensitive bool) string {
	if prefix == "" || (caseSensitive && len(text) < len(prefix)) {
		return text
	}

	driveRoot := isDriveRoot(prefix)

	var b strings.Builder
	replaced := false
	cursor := 0
	for cursor < len(text) {
		at, end := indexFrom(text, prefix, cursor, caseSensitive)
		if at < 0 {
			break
		}

		if (!driveRoot && !isTextBoundary(text, end)) || isEmbedded(text, at) {
			// Partial path or part of a larger token: copy through and keep scanning.
			b.WriteString(text[cursor:end])
			cursor = end
			continue
		}

		if !replaced {
			b.Grow(len(text))
			replaced = true
		}

		b.WriteString(text[cursor:at])
		b.WriteString(macro)
		cursor = end
	}

	if !replaced {
		return text
	}

	b.WriteString(text[cursor:])
	return b.String()
}
