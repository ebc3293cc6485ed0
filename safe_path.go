// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"path"
	"strings"
)

// normalizeName resolves the raw name of an archive entry into the key used
// in a [Jar]. Backslashes are treated as separators and the result is
// cleaned, so "a/./b/../c.class" becomes "a/c.class". The second return
// value is false if the entry would leave the archive root: absolute names,
// drive letters, NUL bytes, names that climb above the root with "..",
// and names that clean to nothing.
func normalizeName(raw string) (string, bool) {
	if raw == "" || strings.IndexByte(raw, 0) >= 0 {
		return "", false
	}

	name := strings.ReplaceAll(raw, `\`, "/")
	if strings.HasPrefix(name, "/") || hasDriveLetter(name) {
		return "", false
	}

	// walk the segments to detect traversal above the root
	depth := 0
	for _, seg := range strings.Split(name, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return "", false
			}
		default:
			depth++
		}
	}

	name = path.Clean(name)
	if name == "." {
		return "", false
	}
	return name, true
}

// hasDriveLetter reports whether name starts with a windows volume, e.g. "C:".
func hasDriveLetter(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
