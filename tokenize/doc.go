// SPDX-License-Identifier: MIT

// Package tokenize turns delimited text into numbered records of fields.
//
// It covers three concerns of delimited-text ingestion:
//
//	Open           – open a plain, gzip (.gz) or zstd (.zst) file as one io.ReadCloser.
//	GuessSeparator – infer the field separator from a file name.
//	Scanner        – walk lines, drop the header/comments/blank lines, split fields.
//
// Separator policy: Whitespace (' ') splits on any run of Unicode white space;
// every other rune splits on each occurrence and trims the resulting fields.
package tokenize
