// SPDX-License-Identifier: MIT
package tokenize_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/datamatrix/tokenize"
	"github.com/stretchr/testify/require"
)

func TestScanner_CommentsAndBlankLines(t *testing.T) {
	in := "# header comment\nAlice Bob 1.2\n\n   \nBob John 2.4\r\n# trailing\n"
	recs, err := tokenize.NewScanner(strings.NewReader(in)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []tokenize.Record{
		{Line: 2, Fields: []string{"Alice", "Bob", "1.2"}},
		{Line: 5, Fields: []string{"Bob", "John", "2.4"}},
	}, recs)
}

// TestScanner_SkipHeaderIsPhysical drops the first line even when it is a comment.
func TestScanner_SkipHeaderIsPhysical(t *testing.T) {
	in := "# not a header but still dropped\nfrom,to,km\nTokyo,Seoul,1159.89\n"
	sc := tokenize.NewScanner(strings.NewReader(in),
		tokenize.WithSeparator(','), tokenize.WithSkipHeader(true))

	recs, err := sc.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2) // "from,to,km" survives: only line 1 is skipped
	require.Equal(t, 2, recs[0].Line)
	require.Equal(t, []string{"Tokyo", "Seoul", "1159.89"}, recs[1].Fields)
	require.Equal(t, 3, sc.Line())
}

func TestScanner_StripsBOM(t *testing.T) {
	recs, err := tokenize.NewScanner(strings.NewReader("\uFEFFa,b,1\n"),
		tokenize.WithSeparator(',')).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "1"}, recs[0].Fields)
}

func TestScanner_BadSeparator(t *testing.T) {
	sc := tokenize.NewScanner(strings.NewReader("a b 1\n"), tokenize.WithSeparator('\n'))
	require.False(t, sc.Scan())
	require.ErrorIs(t, sc.Err(), tokenize.ErrBadSeparator)
}

func TestScanner_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", tokenize.MaxLineBytes+1)
	sc := tokenize.NewScanner(strings.NewReader("a b 1\n" + long + "\n"))
	require.True(t, sc.Scan())
	require.False(t, sc.Scan())
	require.ErrorIs(t, sc.Err(), tokenize.ErrLineTooLong)
}
