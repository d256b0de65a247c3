// SPDX-License-Identifier: MIT

// Package seats runs the seating-area cellular automaton on a 2-D grid of
// floor tiles and seats.
//
// Rules (crowd limit k):
//
//   - an empty seat becomes occupied when none of its neighbours is occupied;
//   - an occupied seat empties when at least k neighbours are occupied;
//   - floor never changes.
//
// Neighbourhoods are fixed at construction:
//
//   - Adjacent:    the up to 8 directly adjacent seats (k defaults to 4);
//   - LineOfSight: in each of the 8 directions, the first seat seen across
//     floor tiles (k defaults to 5).
//
// Every generation is computed from a snapshot into a second buffer and the
// buffers are swapped, so all cells update simultaneously.
//
// Complexity: O(W·H) per generation after an O(W·H·max(W,H)) setup.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: malformed layout.
//   - ErrOptionViolation: an invalid Option.
//   - ErrNoFixpoint: Run exceeded the generation limit.
package seats
