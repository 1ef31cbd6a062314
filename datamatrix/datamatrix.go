// SPDX-License-Identifier: MIT
// Package datamatrix - the labeled matrix value.
//
// Purpose:
//   - Pair a dense grid with one label index per axis.
//   - Answer positional and label-addressed queries with explicit errors;
//     a failed lookup never yields a default value.
//
// Immutability:
//   - No method mutates the receiver. Data, Dense, RowLabels and ColLabels
//     return copies, so a DataMatrix can be shared freely once built.

package datamatrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/datamatrix/labels"
	"github.com/katalvlaran/datamatrix/matrix"
)

// DataMatrix is an immutable dense matrix with labeled rows and columns.
type DataMatrix struct {
	grid    *matrix.Dense // rows.Len() × cols.Len()
	rows    *labels.Index // sealed
	cols    *labels.Index // sealed; the same *Index as rows for symmetric builds
	missing float64       // fill used for cells no record wrote
}

var _ fmt.Stringer = (*DataMatrix)(nil)

// newDataMatrix assembles a DataMatrix from validated parts.
func newDataMatrix(grid *matrix.Dense, rows, cols *labels.Index, missing float64) *DataMatrix {
	return &DataMatrix{grid: grid, rows: rows, cols: cols, missing: missing}
}

// New builds a DataMatrix from explicit rows and labels.
// MAIN DESCRIPTION:
//   - Direct construction for callers that already hold the values.
//
// Errors:
//   - ErrShape: no rows, ragged rows, or label counts that do not match the shape.
//   - ErrConfiguration: empty or duplicate labels.
//   - ErrValueParse: NaN/±Inf values.
//
// Complexity: O(r*c).
func New(data [][]float64, rowLabels, colLabels []string) (*DataMatrix, error) {
	grid, err := matrix.FromRows(data)
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("%w: %w", ErrValueParse, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if len(rowLabels) != grid.Rows() || len(colLabels) != grid.Cols() {
		return nil, shapeErrorf("%d×%d labels for a %d×%d matrix",
			len(rowLabels), len(colLabels), grid.Rows(), grid.Cols())
	}
	rows, err := labels.FromLabels(rowLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: rows: %w", ErrConfiguration, err)
	}
	cols, err := labels.FromLabels(colLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %w", ErrConfiguration, err)
	}

	return newDataMatrix(grid, rows, cols, DefaultMissingValue), nil
}

// NRows returns the number of rows.
func (dm *DataMatrix) NRows() int { return dm.grid.Rows() }

// NCols returns the number of columns.
func (dm *DataMatrix) NCols() int { return dm.grid.Cols() }

// At returns the value at zero-based (i, j); ErrIndexOutOfRange otherwise.
func (dm *DataMatrix) At(i, j int) (float64, error) {
	v, err := dm.grid.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("datamatrix: At(%d,%d): %w", i, j, err)
	}

	return v, nil
}

// GetByLabel returns the value at (row label, column label).
// Errors: ErrUnknownLabel naming the axis and the missing label.
func (dm *DataMatrix) GetByLabel(row, col string) (float64, error) {
	i, err := dm.RowIndex(row)
	if err != nil {
		return 0, err
	}
	j, err := dm.ColIndex(col)
	if err != nil {
		return 0, err
	}

	return dm.grid.At(i, j)
}

// RowIndex returns the zero-based position of a row label.
func (dm *DataMatrix) RowIndex(label string) (int, error) {
	i, err := dm.rows.IndexOf(label)
	if err != nil {
		return 0, fmt.Errorf("datamatrix: row: %w", err)
	}

	return i, nil
}

// ColIndex returns the zero-based position of a column label.
func (dm *DataMatrix) ColIndex(label string) (int, error) {
	j, err := dm.cols.IndexOf(label)
	if err != nil {
		return 0, fmt.Errorf("datamatrix: column: %w", err)
	}

	return j, nil
}

// RowLabel returns the label of row i.
func (dm *DataMatrix) RowLabel(i int) (string, error) {
	l, err := dm.rows.LabelAt(i)
	if err != nil {
		return "", fmt.Errorf("datamatrix: row %d: %w", i, ErrIndexOutOfRange)
	}

	return l, nil
}

// ColLabel returns the label of column j.
func (dm *DataMatrix) ColLabel(j int) (string, error) {
	l, err := dm.cols.LabelAt(j)
	if err != nil {
		return "", fmt.Errorf("datamatrix: column %d: %w", j, ErrIndexOutOfRange)
	}

	return l, nil
}

// RowLabels returns a copy of the row labels in position order.
func (dm *DataMatrix) RowLabels() []string { return dm.rows.Labels() }

// ColLabels returns a copy of the column labels in position order.
func (dm *DataMatrix) ColLabels() []string { return dm.cols.Labels() }

// Data returns a deep copy of the values, row-major.
func (dm *DataMatrix) Data() [][]float64 { return dm.grid.ToRows() }

// Dense returns an independent copy of the backing grid.
func (dm *DataMatrix) Dense() *matrix.Dense {
	return dm.grid.Clone().(*matrix.Dense)
}

// MissingValue returns the fill used for cells that no record wrote.
func (dm *DataMatrix) MissingValue() float64 { return dm.missing }

// IsSquare reports NRows() == NCols().
func (dm *DataMatrix) IsSquare() bool { return dm.grid.Rows() == dm.grid.Cols() }

// IsSymmetric reports whether the matrix is square and a[i][j] equals a[j][i]
// within eps for every pair. Labels are not compared.
func (dm *DataMatrix) IsSymmetric(eps float64) bool {
	return matrix.ValidateSymmetric(dm.grid, eps) == nil
}

// String renders a tab-separated table with a header row of column labels
// and the row label leading each line.
func (dm *DataMatrix) String() string {
	var b strings.Builder
	for _, l := range dm.cols.Labels() {
		b.WriteByte('\t')
		b.WriteString(l)
	}
	b.WriteByte('\n')
	rows := dm.grid.ToRows()
	for i, l := range dm.rows.Labels() {
		b.WriteString(l)
		for _, v := range rows[i] {
			b.WriteByte('\t')
			b.WriteString(formatValue(v))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// formatValue prints the shortest exact representation; NaN/Inf spelled as ParseFloat reads them.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
