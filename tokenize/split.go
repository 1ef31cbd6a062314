// SPDX-License-Identifier: MIT

package tokenize

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Whitespace is the default separator: any run of white space delimits fields.
const Whitespace = ' '

// CommentPrefix starts a comment line (after optional leading white space).
const CommentPrefix = "#"

// ValidateSeparator rejects separators that can never split a single line:
// line terminators and invalid runes.
// Complexity: O(1).
func ValidateSeparator(sep rune) error {
	switch {
	case sep == '\n' || sep == '\r':
		return fmt.Errorf("tokenize: separator %q: %w", sep, ErrBadSeparator)
	case sep == utf8.RuneError || !utf8.ValidRune(sep):
		return fmt.Errorf("tokenize: separator %U: %w", sep, ErrBadSeparator)
	}

	return nil
}

// Split breaks line into fields according to sep.
//   - sep == Whitespace: strings.Fields semantics (runs collapse, no empty fields).
//   - otherwise: split on every sep and trim white space around each field;
//     empty fields are kept so positions stay stable ("a,,b" has 3 fields).
//
// Complexity: O(len(line)).
func Split(line string, sep rune) []string {
	if sep == Whitespace {
		return strings.Fields(line)
	}
	parts := strings.Split(line, string(sep))
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// IsSkippable reports whether line carries no record: blank or a comment.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}
