// SPDX-License-Identifier: MIT
package datamatrix_test

import (
	"testing"

	"github.com/katalvlaran/datamatrix/datamatrix"
	"github.com/katalvlaran/datamatrix/matrix"
	"github.com/stretchr/testify/require"
)

// sample returns a 2×3 matrix with distinct row and column labels.
func sample(t *testing.T) *datamatrix.DataMatrix {
	t.Helper()
	dm, err := datamatrix.New(
		[][]float64{{1, 2, 3}, {4, 5, 6}},
		[]string{"r1", "r2"},
		[]string{"c1", "c2", "c3"},
	)
	require.NoError(t, err)

	return dm
}

func TestNew_Accessors(t *testing.T) {
	dm := sample(t)

	require.Equal(t, 2, dm.NRows())
	require.Equal(t, 3, dm.NCols())
	require.False(t, dm.IsSquare())
	require.False(t, dm.IsSymmetric(1))

	v, err := dm.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, 2.0, getByLabel(t, dm, "r1", "c2"))

	j, err := dm.ColIndex("c3")
	require.NoError(t, err)
	require.Equal(t, 2, j)
	l, err := dm.RowLabel(1)
	require.NoError(t, err)
	require.Equal(t, "r2", l)
}

func TestNew_Errors(t *testing.T) {
	_, err := datamatrix.New(nil, nil, nil)
	require.ErrorIs(t, err, datamatrix.ErrShape)

	_, err = datamatrix.New([][]float64{{1, 2}, {3}}, []string{"a", "b"}, []string{"x", "y"})
	require.ErrorIs(t, err, datamatrix.ErrShape)

	_, err = datamatrix.New([][]float64{{1, 2}}, []string{"a", "b"}, []string{"x", "y"})
	require.ErrorIs(t, err, datamatrix.ErrShape)

	_, err = datamatrix.New([][]float64{{1, 2}}, []string{"a"}, []string{"x", "x"})
	require.ErrorIs(t, err, datamatrix.ErrConfiguration)

	_, err = datamatrix.New([][]float64{{1, 2}}, []string{""}, []string{"x", "y"})
	require.ErrorIs(t, err, datamatrix.ErrConfiguration)
}

func TestLookups_NeverDefault(t *testing.T) {
	dm := sample(t)

	_, err := dm.GetByLabel("nope", "c1")
	require.ErrorIs(t, err, datamatrix.ErrUnknownLabel)
	require.Contains(t, err.Error(), "row")

	_, err = dm.GetByLabel("r1", "nope")
	require.ErrorIs(t, err, datamatrix.ErrUnknownLabel)
	require.Contains(t, err.Error(), "column")

	_, err = dm.RowIndex("c1") // column labels are not row labels
	require.ErrorIs(t, err, datamatrix.ErrUnknownLabel)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = dm.At(ij[0], ij[1])
		require.ErrorIs(t, err, datamatrix.ErrIndexOutOfRange)
	}
	_, err = dm.RowLabel(2)
	require.ErrorIs(t, err, datamatrix.ErrIndexOutOfRange)
	_, err = dm.ColLabel(-1)
	require.ErrorIs(t, err, datamatrix.ErrIndexOutOfRange)
}

func TestCopiesAreIndependent(t *testing.T) {
	dm := sample(t)

	rows := dm.Data()
	rows[0][0] = 100
	labels := dm.RowLabels()
	labels[0] = "changed"
	d := dm.Dense()
	require.NoError(t, d.Set(0, 0, 200))

	v, err := dm.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, []string{"r1", "r2"}, dm.RowLabels())
}

func TestDense_MatchesData(t *testing.T) {
	dm := sample(t)
	d := dm.Dense()
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.Equal(t, dm.Data(), d.ToRows())
	require.NoError(t, matrix.ValidateNotNil(d))
}

func TestIsSymmetric_Tolerance(t *testing.T) {
	dm, err := datamatrix.New(
		[][]float64{{0, 1}, {1.05, 0}},
		[]string{"a", "b"}, []string{"a", "b"},
	)
	require.NoError(t, err)
	require.True(t, dm.IsSquare())
	require.False(t, dm.IsSymmetric(0.01))
	require.True(t, dm.IsSymmetric(0.1))
}

func TestString_Table(t *testing.T) {
	dm, err := datamatrix.New(
		[][]float64{{1, 2.5}, {3, 4}},
		[]string{"r1", "r2"}, []string{"c1", "c2"},
	)
	require.NoError(t, err)
	require.Equal(t, "\tc1\tc2\nr1\t1\t2.5\nr2\t3\t4\n", dm.String())
}
