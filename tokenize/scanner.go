// SPDX-License-Identifier: MIT
// Package tokenize - line scanner.
//
// Purpose:
//   - Turn an io.Reader into Records (1-based physical line number + fields).
//   - Apply the header/comment/blank-line policy in one place.
//
// Policy:
//   - Header skip drops the FIRST PHYSICAL line, whatever it contains.
//   - Blank lines and lines starting with '#' (after white space) are ignored.
//   - A leading UTF-8 byte-order mark is removed; "\r\n" endings are accepted.

package tokenize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 4 * 1024 * 1024

const utf8BOM = "\uFEFF"

// Record is one tokenized data line.
type Record struct {
	Line   int      // 1-based physical line number
	Fields []string // fields in column order
}

// ScanOption customizes a Scanner before the first Scan.
type ScanOption func(*scanConfig)

type scanConfig struct {
	sep        rune
	skipHeader bool
}

// WithSeparator sets the field separator (default Whitespace).
func WithSeparator(sep rune) ScanOption {
	return func(c *scanConfig) { c.sep = sep }
}

// WithSkipHeader drops the first physical line when on is true.
func WithSkipHeader(on bool) ScanOption {
	return func(c *scanConfig) { c.skipHeader = on }
}

// Scanner yields Records from a reader. Not safe for concurrent use.
type Scanner struct {
	sc   *bufio.Scanner
	cfg  scanConfig
	line int
	rec  Record
	err  error
}

// NewScanner wraps r. Options are applied in order over the defaults
// (Whitespace separator, no header skip).
func NewScanner(r io.Reader, opts ...ScanOption) *Scanner {
	cfg := scanConfig{sep: Whitespace}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	return &Scanner{sc: sc, cfg: cfg}
}

// Scan advances to the next data record. It returns false at EOF or on error;
// check Err afterwards.
// Complexity: O(len(line)) per call.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if err := ValidateSeparator(s.cfg.sep); err != nil {
		s.err = err
		return false
	}
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if s.line == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
			if s.cfg.skipHeader {
				continue // header is discarded unconditionally
			}
		}
		if IsSkippable(text) {
			continue
		}
		s.rec = Record{Line: s.line, Fields: Split(text, s.cfg.sep)}
		return true
	}
	if err := s.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			s.err = fmt.Errorf("tokenize: line %d: %w", s.line+1, ErrLineTooLong)
		} else {
			s.err = err
		}
	}

	return false
}

// Record returns the most recent record produced by Scan.
func (s *Scanner) Record() Record { return s.rec }

// Line returns the number of physical lines consumed so far.
func (s *Scanner) Line() int { return s.line }

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error { return s.err }

// ReadAll drains the scanner into a slice of records.
func (s *Scanner) ReadAll() ([]Record, error) {
	var out []Record
	for s.Scan() {
		out = append(out, s.Record())
	}

	return out, s.Err()
}
