// SPDX-License-Identifier: MIT

package tokenize

import (
	"path/filepath"
	"strings"
)

// compressionExts are peeled (one layer) before the data extension is examined.
var compressionExts = map[string]struct{}{
	".gz": {}, ".bz2": {}, ".xz": {}, ".zst": {}, ".zip": {},
}

// GuessSeparator infers a field separator from the file extension.
//
//	.csv        → ','
//	.tsv, .tab  → '\t'
//	.psv        → '|'
//	.ssv        → ';'
//	otherwise   → Whitespace (including .dat and .txt)
//
// Matching is case-insensitive and a single compression suffix is peeled
// first, so "archive.CSV.gz" yields ','.
// Complexity: O(len(path)).
func GuessSeparator(path string) rune {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := compressionExts[ext]; ok {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	switch ext {
	case ".csv":
		return ','
	case ".tsv", ".tab":
		return '\t'
	case ".psv":
		return '|'
	case ".ssv":
		return ';'
	default:
		return Whitespace
	}
}
