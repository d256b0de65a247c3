// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBase indicates a base outside [2, 36].
	ErrBase = errors.New("numeric: base must be within [2, 36]")

	// ErrDigit indicates a digit outside [0, base).
	ErrDigit = errors.New("numeric: digit out of range for base")

	// ErrOverflow indicates a value that does not fit in uint64.
	ErrOverflow = errors.New("numeric: value overflows uint64")
)

// ParseBinary interprets bits MSB-first as an unsigned integer.
// Bits beyond the 64 least significant ones are shifted out.
func ParseBinary(bits []bool) uint64 {
	var v uint64
	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}

	return v
}

// ParseBase interprets digits MSB-first in the given base.
func ParseBase(digits []int, base int) (uint64, error) {
	if base < 2 || base > 36 {
		return 0, ErrBase
	}
	var v uint64
	for i, d := range digits {
		if d < 0 || d >= base {
			return 0, fmt.Errorf("%w: digit %d at position %d", ErrDigit, d, i)
		}
		hi, lo := bits.Mul64(v, uint64(base))
		if hi != 0 {
			return 0, ErrOverflow
		}
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		v = sum
	}

	return v, nil
}

// Digits returns n written in base, MSB-first. Zero yields []int{0}.
func Digits(n uint64, base int) ([]int, error) {
	if base < 2 || base > 36 {
		return nil, ErrBase
	}
	if n == 0 {
		return []int{0}, nil
	}
	var out []int
	for b := uint64(base); n > 0; n /= b {
		out = append(out, int(n%b))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Bits returns the lowest width bits of n, MSB-first.
func Bits(n uint64, width int) []bool {
	out := make([]bool, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = n&1 == 1
		n >>= 1
	}

	return out
}
