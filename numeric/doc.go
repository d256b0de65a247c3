// SPDX-License-Identifier: MIT

// Package numeric holds the small integer helpers shared by the puzzle
// engines: base conversion of digit and bit vectors, wrap-around and mirror
// indexing, absolute value and Manhattan distance.
//
// Errors:
//
//   - ErrBase:     base outside [2, 36].
//   - ErrDigit:    digit outside [0, base).
//   - ErrOverflow: value does not fit in 64 bits.
package numeric
