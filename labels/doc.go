// SPDX-License-Identifier: MIT

// Package labels maps label strings to dense, zero-based axis positions and back.
//
// An Index is built in one of two explicit orderings:
//
//	InsertionOrder – the first label seen gets position 0, the next new label 1, ...
//	SortedByKey    – every label carries an integer key (the first key seen wins);
//	                 Seal assigns positions by ascending key, ties by first appearance.
//
// Positions are always dense, contiguous and unique per Index. Lookups never
// panic: IndexOf fails with ErrUnknownLabel, LabelAt with ErrOutOfRange.
package labels
