// SPDX-License-Identifier: MIT
// Package labels - Index implementation.
//
// Purpose:
//   - Resolve labels to positions in O(1) (hash map) and positions to labels in O(1) (slice).
//   - Keep the ordering policy explicit (Ordering) instead of inferring it.
//
// Determinism:
//   - Positions depend only on the order of calls (and keys under SortedByKey);
//     map iteration order is never observed.

package labels

import (
	"fmt"
	"sort"
)

// Ordering selects how final positions are assigned.
type Ordering int

const (
	// InsertionOrder assigns positions by first appearance.
	InsertionOrder Ordering = iota

	// SortedByKey assigns positions by ascending secondary key at Seal time.
	SortedByKey
)

// String returns a stable name for diagnostics.
func (o Ordering) String() string {
	switch o {
	case InsertionOrder:
		return "insertion"
	case SortedByKey:
		return "sorted-by-key"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Index is a bidirectional label <-> position table for one axis.
// The zero value is not usable; construct with New or FromLabels.
type Index struct {
	ordering Ordering
	byLabel  map[string]int // label -> position
	labels   []string       // position -> label
	keys     []int64        // SortedByKey only: key per position (parallel to labels)
	sealed   bool           // positions are final
}

// New returns an empty Index using the given ordering.
// Complexity: O(1).
func New(ordering Ordering) *Index {
	return &Index{
		ordering: ordering,
		byLabel:  make(map[string]int),
	}
}

// FromLabels builds a sealed InsertionOrder index from a fixed label list.
// MAIN DESCRIPTION:
//   - Used when labels are supplied by the caller instead of discovered in data.
//
// Errors:
//   - ErrEmptyLabel for "" entries; ErrDuplicateLabel when a label repeats.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromLabels(list []string) (*Index, error) {
	ix := New(InsertionOrder)
	for i, l := range list {
		if l == "" {
			return nil, fmt.Errorf("labels: position %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := ix.byLabel[l]; dup {
			return nil, fmt.Errorf("labels: %q: %w", l, ErrDuplicateLabel)
		}
		ix.ResolveOrInsert(l)
	}
	ix.sealed = true

	return ix, nil
}

// Ordering returns the strategy this index was created with.
func (ix *Index) Ordering() Ordering { return ix.ordering }

// ResolveOrInsert returns the position of label, inserting it at the next free
// position if it is new. Repeated calls with the same label return the same
// position (idempotent).
//
// Under SortedByKey the label gets key 0 when inserted through this method;
// the returned position is provisional until Seal.
// Complexity: O(1) amortized.
func (ix *Index) ResolveOrInsert(label string) int {
	return ix.ResolveOrInsertKeyed(label, 0)
}

// ResolveOrInsertKeyed behaves like ResolveOrInsert and records key for a new
// label. The first key recorded for a label wins; later keys are ignored.
// Under InsertionOrder the key is ignored.
// Complexity: O(1) amortized.
func (ix *Index) ResolveOrInsertKeyed(label string, key int64) int {
	if i, ok := ix.byLabel[label]; ok {
		return i
	}
	i := len(ix.labels)
	ix.byLabel[label] = i
	ix.labels = append(ix.labels, label)
	if ix.ordering == SortedByKey {
		ix.keys = append(ix.keys, key)
	}
	ix.sealed = false

	return i
}

// Seal fixes the final positions. For SortedByKey the labels are stably sorted
// by key and the label map is rebuilt; for InsertionOrder positions are already
// final. Seal is idempotent.
// Complexity: O(n log n) for SortedByKey, O(1) otherwise.
func (ix *Index) Seal() {
	if ix.sealed {
		return
	}
	if ix.ordering == SortedByKey && len(ix.labels) > 1 {
		order := make([]int, len(ix.labels)) // provisional positions
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return ix.keys[order[a]] < ix.keys[order[b]] })

		labels := make([]string, len(order))
		keys := make([]int64, len(order))
		for pos, prev := range order {
			labels[pos] = ix.labels[prev]
			keys[pos] = ix.keys[prev]
			ix.byLabel[labels[pos]] = pos
		}
		ix.labels, ix.keys = labels, keys
	}
	ix.sealed = true
}

// Sealed reports whether positions are final.
func (ix *Index) Sealed() bool { return ix.sealed }

// IndexOf returns the position of label or ErrUnknownLabel.
// Complexity: O(1).
func (ix *Index) IndexOf(label string) (int, error) {
	if i, ok := ix.byLabel[label]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("labels: %q: %w", label, ErrUnknownLabel)
}

// Contains reports whether label is indexed.
func (ix *Index) Contains(label string) bool {
	_, ok := ix.byLabel[label]
	return ok
}

// LabelAt returns the label at position i or ErrOutOfRange.
// Complexity: O(1).
func (ix *Index) LabelAt(i int) (string, error) {
	if i < 0 || i >= len(ix.labels) {
		return "", fmt.Errorf("labels: position %d of %d: %w", i, len(ix.labels), ErrOutOfRange)
	}

	return ix.labels[i], nil
}

// Len returns the number of distinct labels.
func (ix *Index) Len() int { return len(ix.labels) }

// Labels returns a copy of the labels in position order.
// Complexity: O(n).
func (ix *Index) Labels() []string {
	out := make([]string, len(ix.labels))
	copy(out, ix.labels)

	return out
}

// Clone returns an independent copy sharing no storage with ix.
// Complexity: O(n).
func (ix *Index) Clone() *Index {
	cp := &Index{
		ordering: ix.ordering,
		byLabel:  make(map[string]int, len(ix.byLabel)),
		labels:   ix.Labels(),
		sealed:   ix.sealed,
	}
	for l, i := range ix.byLabel {
		cp.byLabel[l] = i
	}
	if ix.keys != nil {
		cp.keys = make([]int64, len(ix.keys))
		copy(cp.keys, ix.keys)
	}

	return cp
}
