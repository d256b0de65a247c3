// SPDX-License-Identifier: MIT

package matrix

// neighbourOffsets enumerates {-1,0,1}^n without the zero vector.
// Offsets are ordered with the first dimension varying fastest.
func neighbourOffsets(n int) [][]int {
	total := 1
	for k := 0; k < n; k++ {
		total *= 3
	}
	out := make([][]int, 0, total-1)
	for code := 0; code < total; code++ {
		off := make([]int, n)
		zero := true
		c := code
		for k := 0; k < n; k++ {
			off[k] = c%3 - 1
			c /= 3
			if off[k] != 0 {
				zero = false
			}
		}
		if !zero {
			out = append(out, off)
		}
	}

	return out
}

// orthogonal reports whether off has exactly one non-zero component.
func orthogonal(off []int) bool {
	nonZero := 0
	for _, v := range off {
		if v != 0 {
			nonZero++
		}
	}

	return nonZero == 1
}

// Neighbours returns the flat indexes of all in-range cells adjacent to idx.
// With diagonals=true a neighbour differs by ±1 in one or more dimensions
// (at most 3^N−1 of them); with diagonals=false it differs in exactly one
// dimension (at most 2N). Returns nil when idx is out of range.
// Complexity: O(3^N · N).
func (m *Matrix[T]) Neighbours(idx int, diagonals bool) []int {
	coords, ok := m.Coords(idx)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(m.offsets))
	for _, off := range m.offsets {
		if !diagonals && !orthogonal(off) {
			continue
		}
		n, inRange := idx, true
		for k, d := range off {
			c := coords[k] + d
			if c < 0 || c >= m.dims[k] {
				inRange = false
				break
			}
			n += d * m.strides[k]
		}
		if inRange {
			out = append(out, n)
		}
	}

	return out
}

// Step returns the flat index reached from idx by adding delta to its
// coordinates; ok is false when the result leaves the matrix.
// Complexity: O(N).
func (m *Matrix[T]) Step(idx int, delta ...int) (int, bool) {
	if len(delta) != len(m.dims) {
		return 0, false
	}
	coords, ok := m.Coords(idx)
	if !ok {
		return 0, false
	}
	for k, d := range delta {
		coords[k] += d
	}

	return m.Index(coords...)
}

// Offsets returns copies of the unit offsets used by Neighbours, in the same
// order: all of {-1,0,1}^N without the zero vector, or only the 2N axis
// steps when diagonals is false.
func (m *Matrix[T]) Offsets(diagonals bool) [][]int {
	out := make([][]int, 0, len(m.offsets))
	for _, off := range m.offsets {
		if diagonals || orthogonal(off) {
			out = append(out, append([]int(nil), off...))
		}
	}

	return out
}
