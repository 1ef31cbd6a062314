// SPDX-License-Identifier: MIT

package labels

import "errors"

var (
	// ErrUnknownLabel indicates a lookup against a label that is not indexed.
	ErrUnknownLabel = errors.New("labels: unknown label")

	// ErrOutOfRange indicates a position outside [0, Len()).
	ErrOutOfRange = errors.New("labels: index out of range")

	// ErrDuplicateLabel indicates that a fixed label list contains a label twice.
	ErrDuplicateLabel = errors.New("labels: duplicate label")

	// ErrEmptyLabel indicates an empty label string where one is required.
	ErrEmptyLabel = errors.New("labels: empty label")
)
