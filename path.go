// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package pathmacros

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/woozymasta/pathmacros/internal/fold"
)

// SystemIndependentPath converts platform separators to the canonical forward-slash form.
func SystemIndependentPath(raw string) string {
	if strings.Contains(raw, `\`) {
		return strings.ReplaceAll(raw, `\`, `/`)
	}

	return raw
}

// matchAt returns the end offset of prefix matched at text[at:], or -1.
//
// Case-insensitive matching folds rune by rune, so the matched span may differ in byte
// length from prefix ("/\u212A" matches "/k").
func matchAt(text string, at int, prefix string, caseSensitive bool) int {
	if caseSensitive {
		if strings.HasPrefix(text[at:], prefix) {
			return at + len(prefix)
		}

		return -1
	}

	i := at
	for pi := 0; pi < len(prefix); {
		if i >= len(text) {
			return -1
		}

		pr, psize := utf8.DecodeRuneInString(prefix[pi:])
		tr, tsize := utf8.DecodeRuneInString(text[i:])
		if (pr == utf8.RuneError && psize == 1) || (tr == utf8.RuneError && tsize == 1) {
			// Invalid bytes only match themselves.
			if text[i] != prefix[pi] {
				return -1
			}

			psize, tsize = 1, 1
		} else if !fold.EqualRune(tr, pr) {
			return -1
		}

		pi += psize
		i += tsize
	}

	return i
}

// indexFrom returns start and end of the first occurrence of sub in text at or after from.
//
// Both are -1 when there is none.
func indexFrom(text string, sub string, from int, caseSensitive bool) (int, int) {
	if from < 0 {
		from = 0
	}

	if sub == "" || from >= len(text) {
		return -1, -1
	}

	if caseSensitive {
		idx := strings.Index(text[from:], sub)
		if idx < 0 {
			return -1, -1
		}

		return from + idx, from + idx + len(sub)
	}

	first, _ := utf8.DecodeRuneInString(sub)
	quick := fold.ASCIIOnly(first)
	lowerFirst := fold.LowerByte(sub[0])

	for i := from; i < len(text); i++ {
		c := text[i]
		if quick && (c >= utf8.RuneSelf || fold.LowerByte(c) != lowerFirst) {
			continue
		}

		if c >= utf8.RuneSelf && !utf8.RuneStart(c) {
			continue
		}

		if end := matchAt(text, i, sub, false); end >= 0 {
			return i, end
		}
	}

	return -1, -1
}

// isPathBoundary reports whether text at end terminates a path prefix for anchored matching.
func isPathBoundary(text string, end int) bool {
	if end >= len(text) {
		return true
	}

	return text[end] == '/' || strings.HasPrefix(text[end:], "!/")
}

// isTextBoundary reports whether text at end terminates a path prefix inside free text.
func isTextBoundary(text string, end int) bool {
	if end >= len(text) {
		return true
	}

	switch text[end] {
	case '/', '"', ' ':
		return true
	}

	return strings.HasPrefix(text[end:], "!/")
}

// isEmbedded reports whether the rune before start belongs to a larger identifier.
func isEmbedded(text string, start int) bool {
	if start <= 0 {
		return false
	}

	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return prev == '_' || unicode.IsLetter(prev) || unicode.IsDigit(prev)
}

// isDriveRoot reports whether prefix ends in a drive root ("C:/") and skips boundary checks.
func isDriveRoot(prefix string) bool {
	return strings.HasSuffix(prefix, ":/")
}
