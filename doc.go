// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

/*
Package pathmacros rewrites absolute filesystem paths embedded in serialized text into
portable macro references (for example `$PROJECT_DIR$/src`) and back.

The package is intended for configuration serializers: collapse machine-specific paths
before writing, expand them again after reading.

Basic flow:
  - create table (`New` / `NewWithProtocols`)
  - register paths (`RegisterPath` / `RegisterReplacement` / `Put`)
  - collapse values (`Substitute` for anchored values, `SubstituteRecursively` for free text)
  - expand values back (`Expander` / `Expand`)

Every logical registration is expanded into protocol-qualified variants (`file:`, `jar:`
and any token added with `RegisterProtocol`), so `file:///home/me/project` collapses the
same way `/home/me/project` does.

When several registered paths could match the same text, prefixes are tried in priority
order (`OrderedPrefixes`): project-like macros first, home-like macros last, deeper paths
before shallower ones. A match is only accepted on a path boundary, so `/a/b/cd` never
collapses inside `/a/b/cdeFgh`.

Table is safe for concurrent use. The priority index is rebuilt lazily after mutations.
*/
package pathmacros
