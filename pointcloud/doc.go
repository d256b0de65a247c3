// SPDX-License-Identifier: MIT

// Package pointcloud aligns sparse N-dimensional integer point clouds that
// were observed in unknown orientations and positions.
//
// What:
//
//   - RotationGroup enumerates the proper rotations of the N-cube as
//     sequences of quarter turns in coordinate planes (24 for N=3).
//   - Fingerprint lists the sorted per-axis distance vectors of every point
//     pair; it is invariant under rotation, reflection and translation.
//   - Merge searches for a rotation and translation under which two clouds
//     share at least Threshold points and returns their union.
//   - Align repeatedly merges a worklist of clouds into one, recovering the
//     position of every scanner in the frame of the first cloud.
//
// Complexity:
//
//   - Fingerprint: O(n² log n) for n points.
//   - Merge: O(|R| · |C| · |B|) with |R| rotations and |C| candidate pairs;
//     the fingerprint filter keeps |C| close to the number of true matches.
//   - Align: O(k²) Merge attempts for k clouds, since failed pairs are
//     remembered until one side changes.
//
// Errors:
//
//   - ErrDimensionMismatch: points of different dimensionality.
//   - ErrEmptyCloud:        a cloud without points passed to Align.
//   - ErrOptionViolation:   an invalid Option.
//
// A failed search is not an error: Merge and Align report it with ok=false.
package pointcloud
