// SPDX-License-Identifier: MIT
// Package datamatrix - delimited text output.
//
// Output is readable by the Builder again:
//   - WriteTriples:  row, column, value           (LabelColumns(1,2), DataColumn(3))
//   - WriteIndexed:  row, column, i, j, value      (+ IndexColumns(3,4), DataColumn(5))
//
// Every cell is written in row-major order, so row and column positions
// survive a round trip under InsertionOrder as well as SortedByKey.

package datamatrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/datamatrix/tokenize"
)

// WriteTriples writes one "row<sep>col<sep>value" line per cell.
// Errors: ErrConfiguration when sep is invalid or a label cannot be written
// unambiguously with it; write errors are returned as-is.
func (dm *DataMatrix) WriteTriples(w io.Writer, sep rune) error {
	return dm.write(w, sep, false)
}

// WriteIndexed writes one "row<sep>col<sep>i<sep>j<sep>value" line per cell,
// with i and j the zero-based positions.
func (dm *DataMatrix) WriteIndexed(w io.Writer, sep rune) error {
	return dm.write(w, sep, true)
}

// write validates every label against sep, then streams the cells.
// Complexity: O(r*c).
func (dm *DataMatrix) write(w io.Writer, sep rune, indexed bool) error {
	if err := tokenize.ValidateSeparator(sep); err != nil {
		return configErrorf("%v", err)
	}
	rowLabels, colLabels := dm.rows.Labels(), dm.cols.Labels()
	for _, l := range rowLabels {
		if err := checkWritable(l, sep, true); err != nil {
			return err
		}
	}
	for _, l := range colLabels {
		if err := checkWritable(l, sep, false); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	delim := string(sep)
	if sep == tokenize.Whitespace {
		delim = "\t"
	}
	rows := dm.grid.ToRows()
	for i, rl := range rowLabels {
		for j, cl := range colLabels {
			bw.WriteString(rl)
			bw.WriteString(delim)
			bw.WriteString(cl)
			bw.WriteString(delim)
			if indexed {
				bw.WriteString(strconv.Itoa(i))
				bw.WriteString(delim)
				bw.WriteString(strconv.Itoa(j))
				bw.WriteString(delim)
			}
			bw.WriteString(formatValue(rows[i][j]))
			bw.WriteByte('\n')
		}
	}

	return bw.Flush() // bufio.Writer keeps the first write error
}

// checkWritable rejects labels that would not read back as the same field.
// A leading label must also not look like a comment.
func checkWritable(label string, sep rune, leading bool) error {
	switch {
	case sep == tokenize.Whitespace && strings.IndexFunc(label, unicode.IsSpace) >= 0:
		return configErrorf("label %q contains white space", label)
	case sep != tokenize.Whitespace && strings.ContainsRune(label, sep):
		return configErrorf("label %q contains separator %q", label, sep)
	case strings.ContainsAny(label, "\r\n"):
		return configErrorf("label %q contains a line break", label)
	case strings.TrimSpace(label) != label:
		return configErrorf("label %q has surrounding white space", label)
	case leading && strings.HasPrefix(label, tokenize.CommentPrefix):
		return configErrorf("row label %q would read as a comment", label)
	}

	return nil
}
