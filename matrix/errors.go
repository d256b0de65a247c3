// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when extra context is needed; callers match with errors.Is.
var (
	// ErrBadShape is returned when the requested shape is invalid (no dimensions or dim ≤ 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that coordinates fall outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a coordinate vector or backing slice of the wrong size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
