// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package dirdiff

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/woozymasta/pathmacros/internal/fold"
)

// matchAllMask is used when no filter is set.
const matchAllMask = "*"

// Mask is a compiled file name filter.
//
// Syntax: "*" matches any run of bytes, "/" included, since entries are matched by
// name or relative path alike; "?" matches one byte, or one character in a mask with a
// class; "[...]" is a class, "[!...]" negates it. The whole name must match. Anything else
// is literal.
type Mask struct {
	// re is set only for masks with classes.
	re *regexp.Regexp
	// source is the mask as given.
	source string
	// parts are literal pieces between "*", with "?" kept as a one-byte wildcard.
	parts []string
	// matchAll short-circuits masks made of stars only.
	matchAll bool
	// caseInsensitive folds ASCII letters of mask and name.
	caseInsensitive bool
}

// CompileMask compiles a filter mask. Malformed classes yield ErrInvalidMask.
func CompileMask(mask string, caseInsensitive bool) (*Mask, error) {
	m := &Mask{
		source:          mask,
		caseInsensitive: caseInsensitive,
	}

	pattern := mask
	if caseInsensitive {
		pattern = fold.ASCIILower(mask)
	}

	if pattern != "" && strings.Trim(pattern, "*") == "" {
		m.matchAll = true
		return m, nil
	}

	if !hasClass(pattern) {
		m.parts = strings.Split(pattern, "*")
		return m, nil
	}

	re, err := regexp.Compile(maskRegexp(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidMask, mask, err)
	}

	m.re = re
	return m, nil
}

// MustCompileMask is like CompileMask but panics on error.
func MustCompileMask(mask string, caseInsensitive bool) *Mask {
	m, err := CompileMask(mask, caseInsensitive)
	if err != nil {
		panic(err)
	}

	return m
}

// Match reports whether name matches the whole mask.
func (m *Mask) Match(name string) bool {
	if m == nil || m.matchAll {
		return true
	}

	if m.caseInsensitive {
		name = fold.ASCIILower(name)
	}

	if m.re != nil {
		return m.re.MatchString(name)
	}

	return matchParts(m.parts, name)
}

// String returns the mask as given.
func (m *Mask) String() string {
	if m == nil {
		return matchAllMask
	}

	return m.source
}

// matchParts matches name against star-separated parts.
//
// The first part anchors the head and the last one the tail; middle parts are taken at
// their leftmost position, which is enough because "*" absorbs any gap.
func matchParts(parts []string, name string) bool {
	if len(parts) == 1 {
		return len(name) == len(parts[0]) && partMatches(parts[0], name)
	}

	head, tail := parts[0], parts[len(parts)-1]
	if len(head)+len(tail) > len(name) {
		return false
	}

	if !partMatches(head, name[:len(head)]) || !partMatches(tail, name[len(name)-len(tail):]) {
		return false
	}

	rest := name[len(head) : len(name)-len(tail)]
	for _, part := range parts[1 : len(parts)-1] {
		at := indexPart(rest, part)
		if at < 0 {
			return false
		}

		rest = rest[at+len(part):]
	}

	return true
}

// partMatches compares part with an equally long s, "?" matching any byte.
func partMatches(part string, s string) bool {
	for i := 0; i < len(part); i++ {
		if part[i] != '?' && part[i] != s[i] {
			return false
		}
	}

	return true
}

// indexPart returns the leftmost offset where part matches s, or -1.
func indexPart(s string, part string) int {
	for i := 0; i+len(part) <= len(s); i++ {
		if partMatches(part, s[i:i+len(part)]) {
			return i
		}
	}

	return -1
}

// hasClass reports whether mask has a closed "[...]" class.
func hasClass(mask string) bool {
	for i := range mask {
		if mask[i] == '[' && classEnd(mask, i) > 0 {
			return true
		}
	}

	return false
}

// classEnd returns index of "]" closing the class opened at open, or -1.
//
// A "]" right after "[" or "[!" is a member, not the end.
func classEnd(mask string, open int) int {
	i := open + 1
	if i < len(mask) && mask[i] == '!' {
		i++
	}

	if i < len(mask) && mask[i] == ']' {
		i++
	}

	if end := strings.IndexByte(mask[i:], ']'); end >= 0 {
		return i + end
	}

	return -1
}

// maskRegexp translates mask into an anchored regexp.
func maskRegexp(mask string) string {
	var b strings.Builder
	b.WriteByte('^')

	for i := 0; i < len(mask); i++ {
		c := mask[i]
		if c == '[' {
			if end := classEnd(mask, i); end > 0 {
				writeClass(&b, mask[i+1:end])
				i = end
				continue
			}
		}

		switch c {
		case '*':
			b.WriteString(`(?s:.*)`)
		case '?':
			b.WriteString(`(?s:.)`)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteByte('$')
	return b.String()
}

// writeClass writes class body as a regexp class; ranges stay, other syntax is escaped.
func writeClass(b *strings.Builder, body string) {
	b.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		b.WriteByte('^')
		body = body[1:]
	}

	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\', '[', ']', '^':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte(']')
}
