// SPDX-License-Identifier: MIT
package tokenize_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/datamatrix/tokenize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const payload = "Alice Bob 1.2\nBob John 2.4\n"

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := tokenize.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, rc.Close()) }()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpen_Plain(t *testing.T) {
	p := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(p, []byte(payload), 0o600))
	require.Equal(t, payload, readAll(t, p))
}

func TestOpen_Gzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.txt.gz")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.Equal(t, tokenize.Gzip, tokenize.CompressionOf(p))
	require.Equal(t, payload, readAll(t, p))
}

func TestOpen_Zstd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.txt.zst")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.Equal(t, tokenize.Zstd, tokenize.CompressionOf(p))
	require.Equal(t, payload, readAll(t, p))
}

func TestOpen_Errors(t *testing.T) {
	_, err := tokenize.Open("")
	require.ErrorIs(t, err, tokenize.ErrEmptyPath)

	_, err = tokenize.Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "corrupt.gz")
	require.NoError(t, os.WriteFile(bad, []byte("definitely not gzip"), 0o600))
	_, err = tokenize.Open(bad)
	require.Error(t, err)
}
