// SPDX-License-Identifier: MIT

package tokenize

import "errors"

var (
	// ErrEmptyPath is returned by Open for an empty file name.
	ErrEmptyPath = errors.New("tokenize: empty path")

	// ErrBadSeparator rejects separators that cannot delimit fields on one line.
	ErrBadSeparator = errors.New("tokenize: invalid separator")

	// ErrLineTooLong is returned when a line exceeds MaxLineBytes.
	ErrLineTooLong = errors.New("tokenize: line too long")
)
