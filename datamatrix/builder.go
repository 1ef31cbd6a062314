// SPDX-License-Identifier: MIT
// Package datamatrix - Builder.
//
// Purpose:
//   - Fluent, value-typed configuration (every call returns a modified COPY).
//   - Exhaustive validation at the terminal call (FromFile/FromReader/FromData).
//   - Three input layouts:
//       labeled records  – label columns + data column (+ optional index columns)
//       single column    – explicit labels + data column, n² values row-major
//       flat data        – FromData, square reshape
//
// Determinism:
//   - Label positions depend only on input order (or keys); no map iteration.

package datamatrix

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"

	"github.com/katalvlaran/datamatrix/labels"
	"github.com/katalvlaran/datamatrix/matrix"
	"github.com/katalvlaran/datamatrix/tokenize"
)

// Synthesized label prefixes for FromData without explicit labels.
const (
	rowLabelPrefix = "row-"
	colLabelPrefix = "col-"
)

// Builder configures and constructs a DataMatrix. The zero value is not
// usable; start from NewBuilder. Builders are values: configuring a copy never
// affects the original, so a configured Builder can be reused for many inputs.
type Builder struct {
	cfg builderConfig
}

// NewBuilder returns a Builder with documented defaults plus opts.
func NewBuilder(opts ...Option) Builder {
	return Builder{cfg: defaultConfig()}.With(opts...)
}

// With applies options in order and returns the modified copy.
// nil options are skipped.
func (b Builder) With(opts ...Option) Builder {
	for _, fn := range opts {
		if fn != nil {
			fn(&b.cfg)
		}
	}

	return b
}

// LabelColumns sets the 1-based row/column label positions.
func (b Builder) LabelColumns(row, col int) Builder { return b.With(WithLabelColumns(row, col)) }

// DataColumn sets the 1-based value position.
func (b Builder) DataColumn(pos int) Builder { return b.With(WithDataColumn(pos)) }

// IndexColumns sets the 1-based positions of the row/column ordering keys.
func (b Builder) IndexColumns(rowKey, colKey int) Builder {
	return b.With(WithIndexColumns(rowKey, colKey))
}

// Symmetric toggles mirrored insertion.
func (b Builder) Symmetric(on bool) Builder { return b.With(WithSymmetric(on)) }

// Separator overrides the field separator.
func (b Builder) Separator(sep rune) Builder { return b.With(WithSeparator(sep)) }

// SkipHeader toggles discarding the first physical line.
func (b Builder) SkipHeader(on bool) Builder { return b.With(WithSkipHeader(on)) }

// Labels supplies both axes' labels directly.
func (b Builder) Labels(list ...string) Builder { return b.With(WithLabels(list)) }

// MissingValue sets the fill of cells no record wrote.
func (b Builder) MissingValue(v float64) Builder { return b.With(WithMissingValue(v)) }

// AllowNonFinite lets NaN/±Inf be stored.
func (b Builder) AllowNonFinite(on bool) Builder { return b.With(WithAllowNonFinite(on)) }

// role is one configured column position, for validation messages.
type role struct {
	name string
	pos  int
}

// roles lists the configured column roles (file input only).
func (c builderConfig) roles() []role {
	var out []role
	if c.labelColsSet {
		out = append(out, role{"row label", c.rowLabelCol}, role{"column label", c.colLabelCol})
	}
	if c.dataColSet {
		out = append(out, role{"data", c.dataCol})
	}
	if c.keyColsSet {
		out = append(out, role{"row index", c.rowKeyCol}, role{"column index", c.colKeyCol})
	}

	return out
}

// Validate reports configuration problems for file input (fileInput=true) or
// for FromData (fileInput=false). It is run by every terminal call; calling it
// directly lets callers fail fast, e.g. while loading a config file.
//
// Implementation:
//   - Stage 1: settings shared by both modes (labels list, missing value).
//   - Stage 2: file-only settings: separator, mandatory data column, label
//     source, conflicts, 1-based and distinct positions.
func (b Builder) Validate(fileInput bool) error {
	c := b.cfg

	if c.labelsSet {
		if len(c.labels) == 0 {
			return configErrorf("explicit label list is empty")
		}
		if _, err := labels.FromLabels(c.labels); err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	if (math.IsNaN(c.missing) || math.IsInf(c.missing, 0)) && !c.allowNonFinite {
		return configErrorf("missing value %v is not finite; allow non-finite values to use it", c.missing)
	}
	if !fileInput {
		return nil
	}

	if c.separatorSet {
		if err := tokenize.ValidateSeparator(c.separator); err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	if !c.dataColSet {
		return configErrorf("data column is required")
	}
	switch {
	case c.labelsSet && c.labelColsSet:
		return configErrorf("explicit labels conflict with label columns")
	case c.labelsSet && c.keyColsSet:
		return configErrorf("explicit labels conflict with index columns")
	case c.keyColsSet && !c.labelColsSet:
		return configErrorf("index columns need label columns")
	case !c.labelsSet && !c.labelColsSet:
		return configErrorf("label columns or explicit labels are required")
	}

	seen := make(map[int]string, 5)
	for _, r := range c.roles() {
		if r.pos < 1 {
			return configErrorf("%s column %d: positions are 1-based", r.name, r.pos)
		}
		if other, dup := seen[r.pos]; dup {
			return configErrorf("%s and %s columns both use position %d", other, r.name, r.pos)
		}
		seen[r.pos] = r.name
	}

	return nil
}

// separatorFor resolves the effective separator for an input name.
func (b Builder) separatorFor(name string) rune {
	if b.cfg.separatorSet {
		return b.cfg.separator
	}
	if name != "" {
		return tokenize.GuessSeparator(name)
	}

	return DefaultSeparator
}

// FromFile builds a DataMatrix from a delimited text file (plain, .gz or .zst).
// MAIN DESCRIPTION:
//   - Validate → open → stream records through the mapper → finalize.
//
// Errors:
//   - ErrConfiguration, ErrMalformedRow, ErrValueParse, ErrShape,
//     ErrFileNotFound, ErrIO. The file is closed on every path.
func (b Builder) FromFile(path string) (dm *DataMatrix, err error) {
	if err = b.Validate(true); err != nil {
		return nil, err
	}
	rc, err := tokenize.Open(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			dm, err = nil, fileError(path, cerr)
		}
	}()

	return b.build(rc, path)
}

// FromReader builds a DataMatrix from r. name is used for separator guessing
// and error messages; it may be empty. r is not closed.
func (b Builder) FromReader(r io.Reader, name string) (*DataMatrix, error) {
	if err := b.Validate(true); err != nil {
		return nil, err
	}

	return b.build(r, name)
}

// FromData reshapes flat row-major values into a square DataMatrix of side
// sqrt(len(data)). Labels come from Labels(...) or are synthesized as
// "row-1".."row-n" and "col-1".."col-n". File-only settings are ignored.
//
// Errors:
//   - ErrShape: empty input, length not a perfect square, label count != side,
//     or asymmetric data when Symmetric(true).
//   - ErrValueParse: non-finite values without AllowNonFinite.
//   - ErrConfiguration: invalid labels or missing value.
func (b Builder) FromData(data []float64) (*DataMatrix, error) {
	if err := b.Validate(false); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, shapeErrorf("no values")
	}
	n := isqrt(len(data))
	if n*n != len(data) {
		return nil, shapeErrorf("%d values do not form a square matrix", len(data))
	}
	if !b.cfg.allowNonFinite {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: position %d: %w", ErrValueParse, k, matrix.ErrNaNInf)
			}
		}
	}

	rowLabels, colLabels := b.cfg.labels, b.cfg.labels
	if !b.cfg.labelsSet {
		rowLabels, colLabels = synthLabels(rowLabelPrefix, n), synthLabels(colLabelPrefix, n)
	} else if len(rowLabels) != n {
		return nil, shapeErrorf("%d labels for a %d×%d matrix", len(rowLabels), n, n)
	}

	return b.square(data, n, rowLabels, colLabels)
}

// build dispatches on the configured layout.
func (b Builder) build(r io.Reader, name string) (*DataMatrix, error) {
	sc := tokenize.NewScanner(r,
		tokenize.WithSeparator(b.separatorFor(name)),
		tokenize.WithSkipHeader(b.cfg.skipHeader),
	)
	if b.cfg.labelsSet {
		return b.buildColumn(sc, name)
	}

	return b.buildEntries(sc, name)
}

// buildEntries handles the labeled-record layouts.
// Implementation:
//   - Stage 1: map every record; register labels (keyed when index columns are set).
//     A symmetric build registers both labels on one shared index.
//   - Stage 2: seal indices (SortedByKey reorders here).
//   - Stage 3: allocate rows×cols filled with the missing value and write
//     every entry; mirror when symmetric (last write wins).
//
// Complexity: O(N + R*C) time, O(N + R*C) space for N records.
func (b Builder) buildEntries(sc *tokenize.Scanner, name string) (*DataMatrix, error) {
	m := newColumnMapper(b.cfg, name)
	ordering := labels.InsertionOrder
	if m.keyed {
		ordering = labels.SortedByKey
	}
	rowIx := labels.New(ordering)
	colIx := rowIx // symmetric: one shared label space
	if !b.cfg.symmetric {
		colIx = labels.New(ordering)
	}

	var entries []entry
	for sc.Scan() {
		e, err := m.mapEntry(sc.Record())
		if err != nil {
			return nil, err
		}
		rowIx.ResolveOrInsertKeyed(e.row, e.rowKey)
		colIx.ResolveOrInsertKeyed(e.col, e.colKey)
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fileError(name, err)
	}
	if len(entries) == 0 {
		return nil, shapeErrorf("%s: no data records", displayName(name))
	}
	rowIx.Seal()
	colIx.Seal()

	grid, err := b.newGrid(rowIx.Len(), colIx.Len())
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		i, _ := rowIx.IndexOf(e.row) // registered in stage 1
		j, _ := colIx.IndexOf(e.col)
		if err = grid.Set(i, j, e.value); err == nil && b.cfg.symmetric {
			err = grid.Set(j, i, e.value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %w", ErrValueParse, displayName(name), e.line, err)
		}
	}

	return newDataMatrix(grid, rowIx, colIx, b.cfg.missing), nil
}

// buildColumn handles the single-column layout with explicit labels.
func (b Builder) buildColumn(sc *tokenize.Scanner, name string) (*DataMatrix, error) {
	values, err := b.collectValues(sc, name)
	if err != nil {
		return nil, err
	}
	n := len(b.cfg.labels)
	if len(values) != n*n {
		return nil, shapeErrorf("%s: %d labels need %d values, found %d", displayName(name), n, n*n, len(values))
	}

	return b.square(values, n, b.cfg.labels, b.cfg.labels)
}

// collectValues maps every record to its data-column value.
func (b Builder) collectValues(sc *tokenize.Scanner, name string) ([]float64, error) {
	m := newColumnMapper(b.cfg, name)
	var values []float64
	for sc.Scan() {
		v, err := m.mapValue(sc.Record())
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fileError(name, err)
	}

	return values, nil
}

// readValues streams the data column of path without shaping it.
// Only the data column, separator and header settings of b are consulted.
func readValues(b Builder, path string) (values []float64, err error) {
	if !b.cfg.dataColSet || b.cfg.dataCol < 1 {
		return nil, configErrorf("data column is required")
	}
	if b.cfg.separatorSet {
		if err = tokenize.ValidateSeparator(b.cfg.separator); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	rc, err := tokenize.Open(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			values, err = nil, fileError(path, cerr)
		}
	}()
	sc := tokenize.NewScanner(rc,
		tokenize.WithSeparator(b.separatorFor(path)),
		tokenize.WithSkipHeader(b.cfg.skipHeader),
	)

	return b.collectValues(sc, path)
}

// square writes n² row-major values into an n×n grid with the given labels.
// When symmetric is configured the result must be symmetric within the grid eps.
func (b Builder) square(values []float64, n int, rowLabels, colLabels []string) (*DataMatrix, error) {
	grid, err := b.newGrid(n, n)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		if err = grid.Set(k/n, k%n, v); err != nil {
			return nil, fmt.Errorf("%w: position %d: %w", ErrValueParse, k, err)
		}
	}
	if b.cfg.symmetric {
		if err = matrix.ValidateSymmetric(grid, matrix.DefaultEpsilon); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShape, err)
		}
	}
	rowIx, err := labels.FromLabels(rowLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	colIx, err := labels.FromLabels(colLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return newDataMatrix(grid, rowIx, colIx, b.cfg.missing), nil
}

// newGrid allocates a rows×cols Dense under the configured numeric policy and
// fills it with the missing value.
func (b Builder) newGrid(rows, cols int) (*matrix.Dense, error) {
	var opts []matrix.Option
	if b.cfg.allowNonFinite {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}
	grid, err := matrix.NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if b.cfg.missing != 0 || math.Signbit(b.cfg.missing) {
		if err = grid.Fill(b.cfg.missing); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	return grid, nil
}

// fileError classifies an open/read failure.
func fileError(path string, err error) error {
	kind := ErrIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrFileNotFound
	}

	return &FileError{Path: path, Err: kind, Cause: err}
}

// displayName returns a printable input name.
func displayName(name string) string {
	if name == "" {
		return "<input>"
	}

	return name
}

// synthLabels returns prefix1..prefixN.
func synthLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

// isqrt returns floor(sqrt(n)) for n >= 0, exact for all int sizes in use.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
