// SPDX-License-Identifier: MIT

package tokenize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readBufferSize is the buffered read size over the raw file handle.
const readBufferSize = 128 * 1024

// Compression identifies the container format of an input file.
type Compression int

const (
	// None is a plain text file.
	None Compression = iota
	// Gzip is an RFC 1952 stream (.gz).
	Gzip
	// Zstd is a Zstandard stream (.zst).
	Zstd
)

// CompressionOf maps a file name to its container format by extension.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	default:
		return None
	}
}

// stackedCloser releases every layer of a decoded file, innermost last.
type stackedCloser struct {
	io.Reader
	closers []func() error
}

// Close closes every layer even when an earlier one fails; the first error wins.
func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open returns a reader over the decoded content of path.
// MAIN DESCRIPTION:
//   - Plain files are returned buffered; .gz and .zst are decompressed transparently.
//
// Implementation:
//   - Stage 1: reject the empty path (ErrEmptyPath).
//   - Stage 2: os.Open; errors keep their *fs.PathError so errors.Is(err, fs.ErrNotExist) works.
//   - Stage 3: wrap with the decompressor chosen by CompressionOf.
//
// Behavior highlights:
//   - Close releases the decompressor and the file handle; on a decoder
//     construction failure the file is closed before returning.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	buffered := bufio.NewReaderSize(f, readBufferSize)

	switch CompressionOf(path) {
	case Gzip:
		zr, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("tokenize: gzip %s: %w", path, err), f.Close())
		}
		return &stackedCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("tokenize: zstd %s: %w", path, err), f.Close())
		}
		rc := zr.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []func() error{rc.Close, f.Close}}, nil
	default:
		return &stackedCloser{Reader: buffered, closers: []func() error{f.Close}}, nil
	}
}
