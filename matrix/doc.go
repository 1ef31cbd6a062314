// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric grid that backs a labeled data matrix.
//
// What & Why:
//
//	Dense is a row-major float64 buffer with bounds-checked accessors that return
//	sentinel errors instead of panicking. A per-instance numeric policy decides
//	whether NaN/±Inf may be stored, and validators (ValidateSquare,
//	ValidateSymmetric) centralize the structural checks used by callers.
//
// Complexity:
//
//	NewDense and FromRows allocate once: O(r*c).
//	At, Set and Shape are O(1). Clone, Fill, ToRows and String are O(r*c).
package matrix
