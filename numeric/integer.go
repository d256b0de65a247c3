// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Wrap maps any v onto [0, m) with wrap-around, so Wrap(-1, 5) == 4.
// m must be positive.
func Wrap[T constraints.Signed](v, m T) T {
	return ((v % m) + m) % m
}

// Mirror reflects an index within [0, m): Mirror(0, m) == m-1.
func Mirror[T constraints.Integer](v, m T) T {
	return m - v - 1
}

// Sum adds all values.
func Sum[T constraints.Integer](vs ...T) T {
	var s T
	for _, v := range vs {
		s += v
	}

	return s
}

// Manhattan returns Σ|a[k]-b[k]| over the shorter of the two vectors.
func Manhattan[T constraints.Signed](a, b []T) T {
	n := min(len(a), len(b))
	var d T
	for k := 0; k < n; k++ {
		d += Abs(a[k] - b[k])
	}

	return d
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
