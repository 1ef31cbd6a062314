// SPDX-License-Identifier: MIT
// Package datamatrix - YAML configuration.
//
// A config file describes one input layout so it can be reused across
// files and from the command line:
//
//	label_columns: [1, 2]
//	index_columns: [4, 5]
//	data_column: 3
//	separator: comma        # a single character, or tab|comma|space|whitespace|pipe|semicolon
//	skip_header: true
//	symmetric: true
//	missing_value: 0        # omitted means DefaultMissingValue
//	allow_non_finite: false
//
// Unknown keys are rejected so typos surface as ErrConfiguration.

package datamatrix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/datamatrix/tokenize"
)

// separatorNames maps the spelled-out separator names accepted in configs.
var separatorNames = map[string]rune{
	"tab":        '\t',
	"comma":      ',',
	"space":      tokenize.Whitespace,
	"whitespace": tokenize.Whitespace,
	"pipe":       '|',
	"semicolon":  ';',
}

// Config is the file form of a Builder configuration. Zero-valued and
// omitted fields leave the corresponding builder default in place.
type Config struct {
	LabelColumns   []int    `yaml:"label_columns,omitempty"` // [row, col], 1-based
	IndexColumns   []int    `yaml:"index_columns,omitempty"` // [row, col], 1-based
	DataColumn     int      `yaml:"data_column,omitempty"`   // 1-based
	Separator      string   `yaml:"separator,omitempty"`
	SkipHeader     bool     `yaml:"skip_header,omitempty"`
	Symmetric      bool     `yaml:"symmetric,omitempty"`
	Labels         []string `yaml:"labels,omitempty"`
	MissingValue   *float64 `yaml:"missing_value,omitempty"`
	AllowNonFinite bool     `yaml:"allow_non_finite,omitempty"`
}

// LoadConfig reads and parses a YAML config file.
// Errors: ErrFileNotFound / ErrIO when the file cannot be read,
// ErrConfiguration when it does not parse or describes an invalid layout.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML into a Config and checks that the fields are
// well formed. Cross-field rules are checked by Builder.Validate.
// An empty document yields an empty Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if _, err := cfg.Options(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Options translates the config into builder options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if len(c.LabelColumns) > 0 {
		if len(c.LabelColumns) != 2 {
			return nil, configErrorf("label_columns needs 2 positions, got %d", len(c.LabelColumns))
		}
		opts = append(opts, WithLabelColumns(c.LabelColumns[0], c.LabelColumns[1]))
	}
	if len(c.IndexColumns) > 0 {
		if len(c.IndexColumns) != 2 {
			return nil, configErrorf("index_columns needs 2 positions, got %d", len(c.IndexColumns))
		}
		opts = append(opts, WithIndexColumns(c.IndexColumns[0], c.IndexColumns[1]))
	}
	if c.DataColumn != 0 {
		opts = append(opts, WithDataColumn(c.DataColumn))
	}
	if c.Separator != "" {
		sep, err := ParseSeparator(c.Separator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeparator(sep))
	}
	if c.Labels != nil {
		opts = append(opts, WithLabels(c.Labels))
	}
	if c.MissingValue != nil {
		opts = append(opts, WithMissingValue(*c.MissingValue))
	}
	opts = append(opts,
		WithSkipHeader(c.SkipHeader),
		WithSymmetric(c.Symmetric),
		WithAllowNonFinite(c.AllowNonFinite),
	)

	return opts, nil
}

// Builder returns a Builder configured from c plus any extra options,
// which are applied last.
func (c *Config) Builder(extra ...Option) (Builder, error) {
	opts, err := c.Options()
	if err != nil {
		return Builder{}, err
	}

	return NewBuilder(opts...).With(extra...), nil
}

// ParseSeparator accepts a single character or one of the names
// tab, comma, space, whitespace, pipe, semicolon. "\t" is accepted as tab.
func ParseSeparator(s string) (rune, error) {
	if sep, ok := separatorNames[s]; ok {
		return sep, nil
	}
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, configErrorf("separator %q must be a single character", s)
	}
	sep, _ := utf8.DecodeRuneInString(s)
	if err := tokenize.ValidateSeparator(sep); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return sep, nil
}
