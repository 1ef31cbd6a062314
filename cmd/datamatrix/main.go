// SPDX-License-Identifier: MIT

// Command datamatrix loads a labeled matrix from delimited text and
// inspects or re-exports it.
//
// Examples:
//
//	datamatrix info --label-columns 1,2 --data-column 3 --symmetric pairs.txt
//	datamatrix get  --config cities.yaml cities.csv.gz Tokyo Toronto
//	datamatrix show --labels A,B --data-column 1 values.txt
//	datamatrix export --format indexed --out-separator , pairs.txt > pairs.csv
package main

import (
	"fmt"
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
