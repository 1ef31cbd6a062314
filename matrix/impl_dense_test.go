// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/datamatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89)) // set element at row 1, column 2

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val) // retrieved value matches the written one
}

// TestNumericPolicy checks that NaN/Inf are rejected by default and accepted when disabled.
func TestNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Fill(math.Inf(1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Fill(math.NaN()))
	v, err := relaxed.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v)) // NaN stored as the fill marker
}

// TestFromRows covers the row-wise constructor: happy path, ragged and empty input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{0, 1, 2}, {3, 4, 5}}, m.ToRows())

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape) // ragged rows

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape) // nothing to ingest

	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf) // default policy is strict
}

// TestCloneIndependence ensures Clone() and ToRows() do not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original remains unchanged

	rows := m.ToRows()
	rows[0][0] = 42 // mutate the snapshot
	orig, _ = m.At(0, 0)
	require.Equal(t, 1.0, orig)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 9
	v, _ := m.At(0, 1)
	require.Equal(t, 0.0, v)
}

// TestDoEarlyExit verifies row-major visiting order and early stop.
func TestDoEarlyExit(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3 // stop after the first value >= 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4.5}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
