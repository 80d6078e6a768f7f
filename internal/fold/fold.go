// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package fold holds ASCII case folding shared by path prefix and name mask matching.
package fold

import (
	"unicode"
	"unicode/utf8"
)

// LowerByte converts only ASCII A-Z to a-z.
func LowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

// ASCIILower lower-cases ASCII letters and leaves other bytes unchanged.
//
// Returns s itself when it has no upper-case ASCII letter.
func ASCIILower(s string) string {
	for i := 0; i < len(s); i++ {
		if LowerByte(s[i]) == s[i] {
			continue
		}

		b := []byte(s)
		for j := i; j < len(b); j++ {
			b[j] = LowerByte(b[j])
		}

		return string(b)
	}

	return s
}

// EqualRune reports whether a and b are equal under simple Unicode case folding.
func EqualRune(a rune, b rune) bool {
	if a == b {
		return true
	}

	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return LowerByte(byte(a)) == LowerByte(byte(b))
	}

	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}

	return false
}

// ASCIIOnly reports whether every case variant of r is ASCII.
//
// "k" and "s" are not: KELVIN SIGN and LATIN SMALL LETTER LONG S fold to them.
func ASCIIOnly(r rune) bool {
	if r >= utf8.RuneSelf {
		return false
	}

	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
