// SPDX-License-Identifier: MIT

// Package matrix provides a dense N-dimensional array with index↔coordinate
// mapping and neighbour enumeration, shared by the grid-shaped engines of
// puzzlecore (seats, heightgrid).
//
// What:
//
//   - Matrix[T] stores N-dimensional data in a flat slice with a companion
//     dimension vector and precomputed stride factors:
//     stride[0] = 1, stride[k] = stride[k-1]·dim[k-1].
//   - Index and Coords form a bijection between coordinates and flat indexes;
//     out-of-range input reports ok=false instead of panicking.
//   - Neighbours(i, diagonals) yields every in-range cell whose coordinates
//     differ by ±1 in at least one dimension (diagonals=true) or in exactly
//     one dimension (diagonals=false).
//
// Complexity:
//
//   - Index, Coords:       O(N)        (N = number of dimensions)
//   - Neighbours:          O(3^N · N)
//   - New, Clone, Fill:    O(∏ dim[k])
//
// Errors:
//
//   - ErrBadShape:          no dimensions, or a dimension ≤ 0.
//   - ErrOutOfRange:        coordinates outside the matrix.
//   - ErrDimensionMismatch: coordinate count differs from the dimensionality,
//     or a backing slice length differs from ∏ dim[k].
package matrix
