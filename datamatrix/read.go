// SPDX-License-Identifier: MIT
// Package datamatrix - one-call readers for the common layouts.

package datamatrix

// ReadColumn reads a file with one value per record in its first field.
// With labels, the values are reshaped row-major into len(labels)² cells.
// Without labels, the value count must be a perfect square and labels are
// synthesized as in FromData.
func ReadColumn(path string, labels ...string) (*DataMatrix, error) {
	b := NewBuilder(WithDataColumn(1))
	if len(labels) > 0 {
		return b.Labels(labels...).FromFile(path)
	}

	values, err := readValues(b, path)
	if err != nil {
		return nil, err
	}

	return NewBuilder().FromData(values)
}

// ReadMatrix reads a triples file: row label, column label and value at the
// given 1-based positions.
func ReadMatrix(path string, rowCol, colCol, dataCol int, symmetric bool) (*DataMatrix, error) {
	return NewBuilder().
		LabelColumns(rowCol, colCol).
		DataColumn(dataCol).
		Symmetric(symmetric).
		FromFile(path)
}

// ReadMatrixIndexed reads a five-column file whose integer index columns
// decide label positions.
func ReadMatrixIndexed(path string, rowCol, colCol, rowIdxCol, colIdxCol, dataCol int, symmetric bool) (*DataMatrix, error) {
	return NewBuilder().
		LabelColumns(rowCol, colCol).
		IndexColumns(rowIdxCol, colIdxCol).
		DataColumn(dataCol).
		Symmetric(symmetric).
		FromFile(path)
}
