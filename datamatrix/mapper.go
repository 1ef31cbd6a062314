// SPDX-License-Identifier: MIT
// Package datamatrix - column mapper.
//
// Purpose:
//   - Turn one tokenized record into semantic fields: row label, column label,
//     value and (optionally) integer ordering keys.
//   - Own the "too few fields" and "not a number" checks so every failure
//     carries the source name and physical line.

package datamatrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/datamatrix/labels"
	"github.com/katalvlaran/datamatrix/matrix"
	"github.com/katalvlaran/datamatrix/tokenize"
)

// unused marks a role that is not configured.
const unused = -1

// entry is one mapped record.
type entry struct {
	row, col       string  // labels
	rowKey, colKey int64   // ordering keys (SortedByKey only)
	value          float64 // parsed value
	line           int     // physical line for diagnostics
}

// columnMapper holds zero-based field positions resolved from builderConfig.
type columnMapper struct {
	rowLabel, colLabel int
	data               int
	rowKey, colKey     int
	need               int  // minimum field count
	keyed              bool // ordering keys configured
	allowNonFinite     bool
	source             string // file/reader name for errors
}

// newColumnMapper converts 1-based configured positions to zero-based ones.
// The configuration must already be validated.
func newColumnMapper(c builderConfig, source string) columnMapper {
	m := columnMapper{
		rowLabel:       unused,
		colLabel:       unused,
		data:           c.dataCol - 1,
		rowKey:         unused,
		colKey:         unused,
		allowNonFinite: c.allowNonFinite,
		source:         source,
	}
	if c.labelColsSet {
		m.rowLabel, m.colLabel = c.rowLabelCol-1, c.colLabelCol-1
	}
	if c.keyColsSet {
		m.rowKey, m.colKey, m.keyed = c.rowKeyCol-1, c.colKeyCol-1, true
	}
	for _, p := range []int{m.rowLabel, m.colLabel, m.data, m.rowKey, m.colKey} {
		if p+1 > m.need {
			m.need = p + 1
		}
	}

	return m
}

// checkWidth fails with ErrMalformedRow when rec is too short.
func (m columnMapper) checkWidth(rec tokenize.Record) error {
	if len(rec.Fields) >= m.need {
		return nil
	}

	return &RowError{
		Source:  m.source,
		Line:    rec.Line,
		Need:    m.need,
		Content: strings.Join(rec.Fields, " "),
		Err:     ErrMalformedRow,
	}
}

// parseValue parses a float field and applies the finite-only policy.
func (m columnMapper) parseValue(rec tokenize.Record, pos int) (float64, error) {
	field := rec.Fields[pos]
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, &RowError{Source: m.source, Line: rec.Line, Content: field, Err: ErrValueParse, Cause: err}
	}
	if !m.allowNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, &RowError{Source: m.source, Line: rec.Line, Content: field, Err: ErrValueParse, Cause: matrix.ErrNaNInf}
	}

	return v, nil
}

// parseKey parses an integer ordering key.
func (m columnMapper) parseKey(rec tokenize.Record, pos int) (int64, error) {
	field := rec.Fields[pos]
	k, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, &RowError{Source: m.source, Line: rec.Line, Content: field, Err: ErrValueParse, Cause: err}
	}

	return k, nil
}

// label returns a non-empty label field.
func (m columnMapper) label(rec tokenize.Record, pos int) (string, error) {
	l := rec.Fields[pos]
	if l == "" {
		return "", &RowError{
			Source:  m.source,
			Line:    rec.Line,
			Content: strings.Join(rec.Fields, " "),
			Err:     ErrMalformedRow,
			Cause:   labels.ErrEmptyLabel,
		}
	}

	return l, nil
}

// mapEntry extracts a labeled entry (triples / five-column layouts).
// Stages: width check → labels → keys (if configured) → value.
func (m columnMapper) mapEntry(rec tokenize.Record) (entry, error) {
	if err := m.checkWidth(rec); err != nil {
		return entry{}, err
	}
	var (
		e   = entry{line: rec.Line}
		err error
	)
	if e.row, err = m.label(rec, m.rowLabel); err != nil {
		return entry{}, err
	}
	if e.col, err = m.label(rec, m.colLabel); err != nil {
		return entry{}, err
	}
	if m.keyed {
		if e.rowKey, err = m.parseKey(rec, m.rowKey); err != nil {
			return entry{}, err
		}
		if e.colKey, err = m.parseKey(rec, m.colKey); err != nil {
			return entry{}, err
		}
	}
	if e.value, err = m.parseValue(rec, m.data); err != nil {
		return entry{}, err
	}

	return e, nil
}

// mapValue extracts the value only (single-column layout).
func (m columnMapper) mapValue(rec tokenize.Record) (float64, error) {
	if err := m.checkWidth(rec); err != nil {
		return 0, err
	}

	return m.parseValue(rec, m.data)
}
