// SPDX-License-Identifier: MIT
package datamatrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/datamatrix/datamatrix"
)

func ExampleBuilder_FromReader() {
	input := `
# from  to     km
Paris   Rome   1105.7
Paris   Berlin 878.3
Rome    Berlin 1184.2
`
	dm, err := datamatrix.NewBuilder().
		LabelColumns(1, 2).
		DataColumn(3).
		Symmetric(true).
		FromReader(strings.NewReader(input), "")
	if err != nil {
		fmt.Println(err)
		return
	}
	km, _ := dm.GetByLabel("Berlin", "Paris")
	fmt.Println(dm.RowLabels(), km)
	// Output: [Paris Rome Berlin] 878.3
}

func ExampleBuilder_FromData() {
	dm, _ := datamatrix.NewBuilder().FromData([]float64{0, 1, 2, 3})
	v, _ := dm.GetByLabel("row-2", "col-1")
	fmt.Println(dm.NRows(), dm.NCols(), v)
	// Output: 2 2 2
}

func ExampleDataMatrix_GetByLabel() {
	dm, _ := datamatrix.New([][]float64{{0, 1}, {1, 0}}, []string{"a", "b"}, []string{"a", "b"})
	_, err := dm.GetByLabel("a", "z")
	fmt.Println(err != nil)
	// Output: true
}
