// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/datamatrix/datamatrix"
)

// loadFlags mirrors the builder configuration on the command line.
// Flags that were not given leave the config file (or builder default) alone.
type loadFlags struct {
	configPath     string
	labelColumns   []int
	indexColumns   []int
	dataColumn     int
	separator      string
	skipHeader     bool
	symmetric      bool
	labels         []string
	missing        float64
	allowNonFinite bool
	verbose        bool
}

// newRootCmd assembles the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	lf := &loadFlags{}
	root := &cobra.Command{
		Use:   "datamatrix",
		Short: "Load labeled matrices from delimited text",
		Long: `datamatrix reads pairwise values (triples, five-column files with
ordering keys, or a single value column with explicit labels) into a dense
labeled matrix. Column positions are 1-based. Files ending in .gz or .zst are
decompressed, and .csv/.tsv/.psv/.ssv select their separator automatically.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&lf.configPath, "config", "c", "", "YAML file with the input layout")
	pf.IntSliceVar(&lf.labelColumns, "label-columns", nil, "row,col label positions (1-based)")
	pf.IntSliceVar(&lf.indexColumns, "index-columns", nil, "row,col ordering key positions (1-based)")
	pf.IntVarP(&lf.dataColumn, "data-column", "d", 0, "value position (1-based)")
	pf.StringVarP(&lf.separator, "separator", "s", "", "field separator: one character or tab|comma|space|pipe|semicolon")
	pf.BoolVar(&lf.skipHeader, "skip-header", false, "discard the first line")
	pf.BoolVar(&lf.symmetric, "symmetric", false, "mirror every value to (j,i)")
	pf.StringSliceVar(&lf.labels, "labels", nil, "explicit labels for single-column input")
	pf.Float64Var(&lf.missing, "missing", datamatrix.DefaultMissingValue, "value for cells no record sets")
	pf.BoolVar(&lf.allowNonFinite, "allow-non-finite", false, "accept NaN and Inf values")
	pf.BoolVarP(&lf.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newInfoCmd(lf),
		newGetCmd(lf),
		newLabelsCmd(lf),
		newShowCmd(lf),
		newExportCmd(lf),
	)

	return root
}

// logger returns a stderr logger when --verbose is set, otherwise a silent one.
func (lf *loadFlags) logger(cmd *cobra.Command) *log.Logger {
	if !lf.verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.ErrOrStderr(), "datamatrix: ", log.Ltime|log.Lmicroseconds)
}

// builder merges the config file with the flags the user actually set.
func (lf *loadFlags) builder(cmd *cobra.Command) (datamatrix.Builder, error) {
	logger := lf.logger(cmd)
	cfg := &datamatrix.Config{}
	if lf.configPath != "" {
		var err error
		if cfg, err = datamatrix.LoadConfig(lf.configPath); err != nil {
			return datamatrix.Builder{}, err
		}
		logger.Printf("loaded config %s", lf.configPath)
	}

	var opts []datamatrix.Option
	changed := cmd.Flags().Changed
	if changed("label-columns") {
		if len(lf.labelColumns) != 2 {
			return datamatrix.Builder{}, fmt.Errorf("%w: --label-columns needs 2 positions", datamatrix.ErrConfiguration)
		}
		opts = append(opts, datamatrix.WithLabelColumns(lf.labelColumns[0], lf.labelColumns[1]))
	}
	if changed("index-columns") {
		if len(lf.indexColumns) != 2 {
			return datamatrix.Builder{}, fmt.Errorf("%w: --index-columns needs 2 positions", datamatrix.ErrConfiguration)
		}
		opts = append(opts, datamatrix.WithIndexColumns(lf.indexColumns[0], lf.indexColumns[1]))
	}
	if changed("data-column") {
		opts = append(opts, datamatrix.WithDataColumn(lf.dataColumn))
	}
	if changed("separator") {
		sep, err := datamatrix.ParseSeparator(lf.separator)
		if err != nil {
			return datamatrix.Builder{}, err
		}
		opts = append(opts, datamatrix.WithSeparator(sep))
	}
	if changed("skip-header") {
		opts = append(opts, datamatrix.WithSkipHeader(lf.skipHeader))
	}
	if changed("symmetric") {
		opts = append(opts, datamatrix.WithSymmetric(lf.symmetric))
	}
	if changed("labels") {
		opts = append(opts, datamatrix.WithLabels(lf.labels))
	}
	if changed("missing") {
		opts = append(opts, datamatrix.WithMissingValue(lf.missing))
	}
	if changed("allow-non-finite") {
		opts = append(opts, datamatrix.WithAllowNonFinite(lf.allowNonFinite))
	}

	return cfg.Builder(opts...)
}

// load builds the matrix for path and logs its shape.
func (lf *loadFlags) load(cmd *cobra.Command, path string) (*datamatrix.DataMatrix, error) {
	b, err := lf.builder(cmd)
	if err != nil {
		return nil, err
	}
	dm, err := b.FromFile(path)
	if err != nil {
		return nil, err
	}
	lf.logger(cmd).Printf("loaded %s: %d×%d", path, dm.NRows(), dm.NCols())

	return dm, nil
}
