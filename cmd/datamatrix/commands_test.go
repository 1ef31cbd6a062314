// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datamatrix/datamatrix"
)

const (
	threeColumns = "../../datamatrix/testdata/three_columns_short.txt"
	citiesCSV    = "../../datamatrix/testdata/cities_by_distance.csv"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

var tripleFlags = []string{"--label-columns", "1,2", "--data-column", "3", "--symmetric"}

func TestGet(t *testing.T) {
	out, _, err := run(t, append([]string{"get", threeColumns, "Bob", "Alice"}, tripleFlags...)...)
	require.NoError(t, err)
	require.Equal(t, "1.2\n", out)

	_, _, err = run(t, append([]string{"get", threeColumns, "Bob", "Zed"}, tripleFlags...)...)
	require.ErrorIs(t, err, datamatrix.ErrUnknownLabel)
}

func TestInfo_WithConfigAndVerbose(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cities.yaml")
	cfg := "label_columns: [1, 2]\ndata_column: 3\nindex_columns: [4, 5]\nskip_header: true\nsymmetric: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, logs, err := run(t, "info", "--config", cfgPath, "--verbose", citiesCSV)
	require.NoError(t, err)
	require.Contains(t, out, "rows:      15")
	require.Contains(t, out, "symmetric: true")
	require.Contains(t, logs, "loaded config")

	// Flags override the config file.
	out, _, err = run(t, "info", "--config", cfgPath, "--missing=-1", citiesCSV)
	require.NoError(t, err)
	require.Contains(t, out, "missing:   -1")
}

func TestLabels(t *testing.T) {
	out, _, err := run(t, append([]string{"labels", "--axis", "col", threeColumns}, tripleFlags...)...)
	require.NoError(t, err)
	require.Equal(t, "0\tAlice\n1\tBob\n2\tJohn\n", out)

	_, _, err = run(t, append([]string{"labels", "--axis", "diagonal", threeColumns}, tripleFlags...)...)
	require.Error(t, err)
}

func TestShow_Truncates(t *testing.T) {
	out, _, err := run(t, append([]string{"show", "--max", "2", threeColumns}, tripleFlags...)...)
	require.NoError(t, err)
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "1.2")
	require.Contains(t, out, "…")
	require.NotContains(t, out, "John")
}

func TestExport_Reloads(t *testing.T) {
	out, _, err := run(t, append([]string{"export", "--out-separator", "comma", threeColumns}, tripleFlags...)...)
	require.NoError(t, err)
	require.Equal(t, 9, strings.Count(out, "\n"))
	require.Contains(t, out, "Alice,Bob,1.2\n")

	p := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(p, []byte(out), 0o600))
	got, _, err := run(t, "get", "--label-columns", "1,2", "--data-column", "3", p, "John", "Bob")
	require.NoError(t, err)
	require.Equal(t, "2\n", got)
}

func TestConfigurationErrors(t *testing.T) {
	_, _, err := run(t, "info", "--label-columns", "1,2", threeColumns)
	require.ErrorIs(t, err, datamatrix.ErrConfiguration)

	_, _, err = run(t, "info", "--label-columns", "1", "--data-column", "3", threeColumns)
	require.ErrorIs(t, err, datamatrix.ErrConfiguration)

	_, _, err = run(t, "info", "--config", filepath.Join(t.TempDir(), "absent.yaml"), threeColumns)
	require.ErrorIs(t, err, datamatrix.ErrFileNotFound)
}
