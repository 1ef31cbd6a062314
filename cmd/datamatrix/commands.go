// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/datamatrix/datamatrix"
	"github.com/katalvlaran/datamatrix/matrix"
)

// Table styling for "show".
var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

const defaultShowLimit = 20

func newInfoCmd(lf *loadFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the shape and properties of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := lf.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:      %s\n", args[0])
			fmt.Fprintf(out, "rows:      %d\n", dm.NRows())
			fmt.Fprintf(out, "columns:   %d\n", dm.NCols())
			fmt.Fprintf(out, "square:    %t\n", dm.IsSquare())
			fmt.Fprintf(out, "symmetric: %t\n", dm.IsSymmetric(matrix.DefaultEpsilon))
			fmt.Fprintf(out, "missing:   %s\n", strconv.FormatFloat(dm.MissingValue(), 'g', -1, 64))

			return nil
		},
	}
}

func newGetCmd(lf *loadFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE ROW COL",
		Short: "Print the value at a row and column label",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := lf.load(cmd, args[0])
			if err != nil {
				return err
			}
			v, err := dm.GetByLabel(args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))

			return nil
		},
	}
}

func newLabelsCmd(lf *loadFlags) *cobra.Command {
	var axis string
	cmd := &cobra.Command{
		Use:   "labels FILE",
		Short: "Print the labels of one axis in position order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pick func(*datamatrix.DataMatrix) []string
			switch axis {
			case "row", "rows":
				pick = (*datamatrix.DataMatrix).RowLabels
			case "col", "cols", "column", "columns":
				pick = (*datamatrix.DataMatrix).ColLabels
			default:
				return fmt.Errorf("unknown axis %q (want row or col)", axis)
			}
			dm, err := lf.load(cmd, args[0])
			if err != nil {
				return err
			}
			for i, l := range pick(dm) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, l)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "row", "row or col")

	return cmd
}

func newShowCmd(lf *loadFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Render the matrix as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := lf.load(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(dm, limit))

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max", "n", defaultShowLimit, "show at most this many rows and columns (0 = all)")

	return cmd
}

func newExportCmd(lf *loadFlags) *cobra.Command {
	var (
		format string
		outSep string
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the matrix as delimited triples to stdout",
		Long: `Write every cell as "row col value" (--format triples) or
"row col i j value" (--format indexed). The output loads again with
--label-columns 1,2 --data-column 3, or with --index-columns 3,4 --data-column 5.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := datamatrix.ParseSeparator(outSep)
			if err != nil {
				return err
			}
			dm, err := lf.load(cmd, args[0])
			if err != nil {
				return err
			}
			switch format {
			case "triples":
				return dm.WriteTriples(cmd.OutOrStdout(), sep)
			case "indexed":
				return dm.WriteIndexed(cmd.OutOrStdout(), sep)
			default:
				return fmt.Errorf("unknown format %q (want triples or indexed)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "triples", "triples or indexed")
	cmd.Flags().StringVar(&outSep, "out-separator", "tab", "output separator")

	return cmd
}

// renderTable draws at most limit rows and columns (limit <= 0 means all);
// truncated axes end with an ellipsis row or column.
func renderTable(dm *datamatrix.DataMatrix, limit int) string {
	nr, nc := dm.NRows(), dm.NCols()
	if limit > 0 {
		nr, nc = min(nr, limit), min(nc, limit)
	}
	colLabels := dm.ColLabels()[:nc]
	rowLabels := dm.RowLabels()[:nr]
	data := dm.Data()

	headers := append([]string{""}, colLabels...)
	if nc < dm.NCols() {
		headers = append(headers, "…")
	}
	rows := make([][]string, 0, nr+1)
	for i, l := range rowLabels {
		row := make([]string, 0, len(headers))
		row = append(row, l)
		for j := 0; j < nc; j++ {
			row = append(row, strconv.FormatFloat(data[i][j], 'g', 6, 64))
		}
		if nc < dm.NCols() {
			row = append(row, "…")
		}
		rows = append(rows, row)
	}
	if nr < dm.NRows() {
		row := make([]string, len(headers))
		row[0] = "…"
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		}).
		String()
}
