// SPDX-License-Identifier: MIT
// Package datamatrix: error taxonomy.
//
// Sentinels identify the failure class and are matched with errors.Is:
//
//	ErrConfiguration   – missing data column, conflicting or invalid builder settings
//	ErrMalformedRow    – a record has fewer fields than the configuration needs
//	ErrValueParse      – a value or ordering key is not a (finite) number
//	ErrShape           – values cannot be shaped into the requested matrix
//	ErrUnknownLabel    – lookup against a label absent from its axis
//	ErrIndexOutOfRange – lookup against a position outside its axis
//	ErrFileNotFound    – the input file does not exist
//	ErrIO              – any other failure while opening or reading input
//
// Line-addressed failures are *RowError; file failures are *FileError. Both
// unwrap to their sentinel AND to the underlying cause.

package datamatrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/datamatrix/labels"
	"github.com/katalvlaran/datamatrix/matrix"
)

var (
	// ErrConfiguration reports an invalid or incomplete builder configuration.
	ErrConfiguration = errors.New("datamatrix: invalid configuration")

	// ErrMalformedRow reports a record with too few fields.
	ErrMalformedRow = errors.New("datamatrix: malformed row")

	// ErrValueParse reports a non-numeric value or ordering key.
	ErrValueParse = errors.New("datamatrix: cannot parse value")

	// ErrShape reports data that cannot be reshaped into the requested matrix.
	ErrShape = errors.New("datamatrix: data does not fit matrix shape")

	// ErrFileNotFound reports a missing input file.
	ErrFileNotFound = errors.New("datamatrix: file not found")

	// ErrIO reports any other input failure.
	ErrIO = errors.New("datamatrix: i/o error")
)

// Lookup sentinels are shared with the packages that detect them, so
// errors.Is works against either name.
var (
	// ErrUnknownLabel reports a query against an absent label.
	ErrUnknownLabel = labels.ErrUnknownLabel

	// ErrIndexOutOfRange reports a query against an out-of-bounds position.
	ErrIndexOutOfRange = matrix.ErrOutOfRange
)

// configErrorf wraps ErrConfiguration with a formatted reason.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// shapeErrorf wraps ErrShape with a formatted reason.
func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}

// RowError is a failure tied to one input line.
type RowError struct {
	Source  string // file name or reader name; may be empty
	Line    int    // 1-based physical line number
	Need    int    // minimum field count (ErrMalformedRow only)
	Content string // offending field or joined record
	Err     error  // sentinel: ErrMalformedRow or ErrValueParse
	Cause   error  // underlying parser/policy error; may be nil
}

// Error formats "source:line: reason".
func (e *RowError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d: %v", e.Line, e.Err)
	if e.Need > 0 {
		fmt.Fprintf(&b, " (need at least %d fields)", e.Need)
	}
	fmt.Fprintf(&b, ": %q", e.Content)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	return b.String()
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *RowError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// FileError is a failure to open or read an input file.
type FileError struct {
	Path  string // input path as given
	Err   error  // sentinel: ErrFileNotFound or ErrIO
	Cause error  // underlying OS or decoder error
}

// Error formats "datamatrix: file not found: path: cause".
func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Err, e.Path, e.Cause)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *FileError) Unwrap() []error { return []error{e.Err, e.Cause} }
