// SPDX-License-Identifier: MIT
// Package datamatrix: builder configuration.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Option setters only RECORD values; validation happens once, at the
//     terminal FromFile/FromReader/FromData call, so every problem surfaces
//     as ErrConfiguration instead of a panic.
//   - Column positions are 1-based; 0 means "not configured".
//
// Deterministic defaults:
//   - no label/data/index columns
//   - separator guessed from the file name (Whitespace when unknown)
//   - symmetric=false, skipHeader=false
//   - missing value 0.0, non-finite values rejected

package datamatrix

import "github.com/katalvlaran/datamatrix/tokenize"

// DefaultMissingValue fills cells that no record wrote.
const DefaultMissingValue = 0.0

// DefaultSeparator is used when neither a separator nor a guessable file name is given.
const DefaultSeparator = tokenize.Whitespace

// Option customizes a Builder by mutating its configuration.
// Options are applied in order; later ones override earlier ones.
type Option func(*builderConfig)

// builderConfig aggregates every knob. It is copied by VALUE with each Builder.
type builderConfig struct {
	rowLabelCol, colLabelCol int // label positions (1-based)
	labelColsSet             bool

	dataCol    int // value position (1-based)
	dataColSet bool

	rowKeyCol, colKeyCol int // secondary ordering key positions (1-based)
	keyColsSet           bool

	separator    rune
	separatorSet bool

	symmetric  bool
	skipHeader bool

	labels    []string // explicit labels (single-column mode / FromData)
	labelsSet bool

	missing        float64 // fill for unwritten cells
	allowNonFinite bool    // accept NaN/±Inf values and fill
}

// defaultConfig returns the documented zero-configuration state.
func defaultConfig() builderConfig {
	return builderConfig{
		separator: DefaultSeparator,
		missing:   DefaultMissingValue,
	}
}

// WithLabelColumns sets the 1-based positions of the row and column label fields.
func WithLabelColumns(row, col int) Option {
	return func(c *builderConfig) {
		c.rowLabelCol, c.colLabelCol, c.labelColsSet = row, col, true
	}
}

// WithDataColumn sets the 1-based position of the numeric value field.
func WithDataColumn(pos int) Option {
	return func(c *builderConfig) { c.dataCol, c.dataColSet = pos, true }
}

// WithIndexColumns sets the 1-based positions of the integer ordering keys for
// the row and column label of each record. When set, labels are positioned by
// ascending key instead of first appearance.
func WithIndexColumns(rowKey, colKey int) Option {
	return func(c *builderConfig) {
		c.rowKeyCol, c.colKeyCol, c.keyColsSet = rowKey, colKey, true
	}
}

// WithSymmetric mirrors every (i,j) write into (j,i) and makes both axes share
// one label space.
func WithSymmetric(on bool) Option {
	return func(c *builderConfig) { c.symmetric = on }
}

// WithSeparator overrides the field separator. tokenize.Whitespace splits on
// any run of white space.
func WithSeparator(sep rune) Option {
	return func(c *builderConfig) { c.separator, c.separatorSet = sep, true }
}

// WithSkipHeader discards the first physical input line.
func WithSkipHeader(on bool) Option {
	return func(c *builderConfig) { c.skipHeader = on }
}

// WithLabels supplies the labels of both axes directly (single-column files
// and FromData). The slice is copied.
func WithLabels(list []string) Option {
	cp := append([]string(nil), list...)
	return func(c *builderConfig) { c.labels, c.labelsSet = cp, true }
}

// WithMissingValue sets the value of cells that no record wrote.
// Non-finite values require WithAllowNonFinite(true).
func WithMissingValue(v float64) Option {
	return func(c *builderConfig) { c.missing = v }
}

// WithAllowNonFinite lets NaN/±Inf be stored (as data or as the missing value).
func WithAllowNonFinite(on bool) Option {
	return func(c *builderConfig) { c.allowNonFinite = on }
}
