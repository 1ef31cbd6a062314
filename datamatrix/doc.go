// SPDX-License-Identifier: MIT

// Package datamatrix loads labeled numeric matrices from delimited text.
//
// What:
//   - Builder: configure column roles (1-based), separator, header skip,
//     symmetry and missing-value fill; then build with FromFile, FromReader
//     or FromData.
//   - DataMatrix: an immutable dense grid with one label index per axis,
//     queried by position (At) or by label (GetByLabel).
//   - ReadColumn, ReadMatrix, ReadMatrixIndexed: one-call readers for the
//     single-column, triples and five-column layouts.
//   - Config: the YAML form of a Builder.
//
// Input layouts:
//
//	triples       Alice  Bob  1.2               LabelColumns(1,2) DataColumn(3)
//	five columns  Alice  Bob  0  1  1.5         + IndexColumns(3,4) DataColumn(5)
//	single column 2.2                           Labels("A","B")   DataColumn(1)
//
// Blank lines and lines starting with '#' are ignored. Files ending in .gz or
// .zst are decompressed transparently, and the separator is guessed from the
// extension (.csv, .tsv, .psv, .ssv) unless set explicitly.
//
// Label order:
//   - Without index columns labels take positions in order of first appearance.
//   - With index columns labels are ordered by ascending integer key; the first
//     key seen for a label wins and ties keep first appearance.
//   - A symmetric build shares one label index between both axes, so the
//     matrix is square and (i,j) and (j,i) refer to the same label pair.
//
// Errors:
//   - Every failure matches one sentinel via errors.Is: ErrConfiguration,
//     ErrMalformedRow, ErrValueParse, ErrShape, ErrUnknownLabel,
//     ErrIndexOutOfRange, ErrFileNotFound, ErrIO.
//   - Line-addressed failures are *RowError and carry the physical line number.
//
// Concurrency:
//   - Building is single-threaded. A built DataMatrix is read-only and safe
//     for concurrent readers.
package datamatrix
