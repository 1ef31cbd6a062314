// SPDX-License-Identifier: MIT
package labels_test

import (
	"testing"

	"github.com/katalvlaran/datamatrix/labels"
	"github.com/stretchr/testify/require"
)

// TestInsertionOrder_Idempotent checks first-seen positions and repeated resolution.
func TestInsertionOrder_Idempotent(t *testing.T) {
	ix := labels.New(labels.InsertionOrder)

	require.Equal(t, 0, ix.ResolveOrInsert("Bob"))   // first label gets 0
	require.Equal(t, 1, ix.ResolveOrInsert("Alice")) // next new label gets 1
	require.Equal(t, 0, ix.ResolveOrInsert("Bob"))   // repeated resolution is stable
	require.Equal(t, 2, ix.ResolveOrInsertKeyed("John", 99))
	ix.Seal()

	require.Equal(t, 3, ix.Len())
	require.Equal(t, []string{"Bob", "Alice", "John"}, ix.Labels())
}

// TestSortedByKey_OrdersByKey checks that key order beats appearance order.
func TestSortedByKey_OrdersByKey(t *testing.T) {
	ix := labels.New(labels.SortedByKey)
	ix.ResolveOrInsertKeyed("Bob", 1)
	ix.ResolveOrInsertKeyed("John", 2)
	ix.ResolveOrInsertKeyed("Alice", 0)
	ix.ResolveOrInsertKeyed("Bob", 7) // first key wins
	require.False(t, ix.Sealed())
	ix.Seal()
	require.True(t, ix.Sealed())

	require.Equal(t, []string{"Alice", "Bob", "John"}, ix.Labels())
	i, err := ix.IndexOf("Alice")
	require.NoError(t, err)
	require.Equal(t, 0, i)
	l, err := ix.LabelAt(2)
	require.NoError(t, err)
	require.Equal(t, "John", l)
}

// TestSortedByKey_TiesAndGaps keeps positions dense with sparse or equal keys.
func TestSortedByKey_TiesAndGaps(t *testing.T) {
	ix := labels.New(labels.SortedByKey)
	ix.ResolveOrInsertKeyed("c", 50)
	ix.ResolveOrInsertKeyed("a", 10)
	ix.ResolveOrInsertKeyed("b", 10) // tie with "a": appearance order decides
	ix.ResolveOrInsertKeyed("d", -3)
	ix.Seal()
	ix.Seal() // idempotent

	require.Equal(t, []string{"d", "a", "b", "c"}, ix.Labels())
	for pos, l := range ix.Labels() {
		got, err := ix.IndexOf(l)
		require.NoError(t, err)
		require.Equal(t, pos, got) // label -> position -> label roundtrip
	}
}

// TestLookupErrors covers unknown labels and out-of-range positions.
func TestLookupErrors(t *testing.T) {
	ix := labels.New(labels.InsertionOrder)
	ix.ResolveOrInsert("x")

	_, err := ix.IndexOf("Nonexistent")
	require.ErrorIs(t, err, labels.ErrUnknownLabel)
	require.False(t, ix.Contains("Nonexistent"))
	require.True(t, ix.Contains("x"))

	_, err = ix.LabelAt(1)
	require.ErrorIs(t, err, labels.ErrOutOfRange)
	_, err = ix.LabelAt(-1)
	require.ErrorIs(t, err, labels.ErrOutOfRange)
}

// TestFromLabels validates fixed label lists.
func TestFromLabels(t *testing.T) {
	ix, err := labels.FromLabels([]string{"A", "B"})
	require.NoError(t, err)
	require.True(t, ix.Sealed())
	require.Equal(t, labels.InsertionOrder, ix.Ordering())
	require.Equal(t, []string{"A", "B"}, ix.Labels())

	_, err = labels.FromLabels([]string{"A", "A"})
	require.ErrorIs(t, err, labels.ErrDuplicateLabel)

	_, err = labels.FromLabels([]string{"A", ""})
	require.ErrorIs(t, err, labels.ErrEmptyLabel)
}

// TestCloneIndependence ensures clones and Labels() snapshots share no storage.
func TestCloneIndependence(t *testing.T) {
	ix := labels.New(labels.SortedByKey)
	ix.ResolveOrInsertKeyed("b", 2)
	ix.ResolveOrInsertKeyed("a", 1)
	ix.Seal()

	cp := ix.Clone()
	cp.ResolveOrInsertKeyed("z", 0)
	cp.Seal()

	require.Equal(t, 2, ix.Len())
	require.Equal(t, []string{"z", "a", "b"}, cp.Labels())

	snap := ix.Labels()
	snap[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, ix.Labels())
}

func TestOrderingString(t *testing.T) {
	require.Equal(t, "insertion", labels.InsertionOrder.String())
	require.Equal(t, "sorted-by-key", labels.SortedByKey.String())
	require.Equal(t, "Ordering(7)", labels.Ordering(7).String())
}
