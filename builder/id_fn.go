// SPDX-License-Identifier: MIT
// Package builder - ID and label schemes for generated nodes.
package builder

import "strconv"

// IDFn generates a node identifier or label from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDPrefix prefixes generated node IDs: "n0", "n1", ….
const DefaultIDPrefix = "n"

// PrefixIDFn returns an IDFn producing prefix+decimal(idx).
// Complexity: O(d) per call, d = digits of idx.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// DefaultIDFn yields "n0", "n1", ….
func DefaultIDFn(idx int) string {
	return PrefixIDFn(DefaultIDPrefix)(idx)
}

// LetterLabelFn yields spreadsheet-style labels: 0→"A", 25→"Z", 26→"AA", 27→"AB".
// Negative indices yield "".
// Complexity: O(log₂₆ idx).
func LetterLabelFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var buf []byte
	for idx >= 0 {
		buf = append(buf, byte('A'+idx%26))
		idx = idx/26 - 1
	}
	// Letters were produced least-significant first.
	var i, j int
	for i, j = 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
