// SPDX-License-Identifier: MIT

// Package cuboid implements constructive solid geometry over N-dimensional,
// axis-aligned, integer cuboids: additive and subtractive composition with an
// exact volume readout.
//
// What:
//
//   - Cuboid is a closed box [Min, Max] over signed 64-bit coordinates with
//     Min[k] ≤ Max[k] on every axis; its volume is ∏ (Max[k]−Min[k]+1).
//   - Space is a set of pairwise disjoint cuboids.
//     Add(C) subtracts C from every stored cuboid and then stores C whole.
//     Subtract(C) replaces every stored cuboid E intersecting C with at most
//     2N fragments covering exactly E \ C.
//   - Volume() is the sum of stored cuboid volumes, which equals the number
//     of lattice points covered because stored cuboids never overlap.
//
// Fragmentation:
//
//	For E and I = E ∩ C, walk axes k = 0..N−1 keeping a remainder R (= E at
//	the start). If I.Min[k] > R.Min[k] the slab of R below I along k is
//	emitted and R.Min[k] becomes I.Min[k]; symmetrically for the slab above.
//	At the end R == I and is dropped.
//
// Complexity:
//
//   - Add/Subtract: O(|S| · N) per call, producing up to 2N·|S| fragments.
//   - Volume:       O(|S| · N).
//
// Errors:
//
//   - ErrDimensionMismatch: operands of different dimensionality.
//   - ErrEmptyCuboid:       a cuboid with no axes.
//   - ErrInverted:          Min[k] > Max[k] on some axis (strict constructors).
package cuboid
