// Package datamatrix is the module root for loading labeled numeric matrices
// from delimited text: pairwise distances, similarity scores, correlation
// tables and other "row label, column label, value" data.
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit that brings together:
//		• Tokenizing: whitespace or single-character separators, comments,
//		  header skip, transparent .gz/.zst input
//		• Label indexing: first-appearance or key-sorted positions per axis
//		• Building: triples, five-column (keyed) and single-column layouts,
//		  symmetric mirroring, square reshape of flat data
//		• Querying: positional and label-addressed lookups with explicit errors
//
// Packages:
//
//	datamatrix/     — Builder, DataMatrix, YAML Config, one-call readers, writers
//	labels/         — Index: label <-> position map with two ordering strategies
//	tokenize/       — line Scanner, Split, GuessSeparator, Open (plain/gzip/zstd)
//	matrix/         — Dense row-major grid, numeric policy, validators
//	cmd/datamatrix/ — command-line front end (info, get, labels, show, export)
//
// Quick ASCII example:
//
//	Alice  Bob   1.2             Alice  Bob   John
//	Alice  John  0.8    ──►  Alice  0      1.2   0.8
//	Bob    John  2.0         Bob    1.2    0     2.0
//	                         John   0.8    2.0   0
//
//	a symmetric triples file and the matrix it loads into.
//
//	go get github.com/katalvlaran/datamatrix/datamatrix
package datamatrix
