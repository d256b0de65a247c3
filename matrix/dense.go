// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
)

// denseErrorf wraps an underlying error with method and coordinate context.
func denseErrorf(method string, coords []int, err error) error {
	return fmt.Errorf("Matrix.%s(%v): %w", method, coords, err)
}

// Matrix is a dense N-dimensional array of T.
// dims holds the size of every dimension, strides the flat offset of a unit
// step along each dimension, and data holds ∏ dims elements.
type Matrix[T any] struct {
	dims    []int
	strides []int
	data    []T
	offsets [][]int // neighbour offsets in {-1,0,1}^N, zero vector excluded
}

// New creates a zero-valued matrix with the given dimensions.
// Stage 1 (Validate): at least one dimension, every dimension > 0.
// Stage 2 (Prepare): compute strides and neighbour offsets.
// Stage 3 (Finalize): allocate flat storage.
// Complexity: O(∏ dims) time and memory.
func New[T any](dims ...int) (*Matrix[T], error) {
	length, err := shapeLength(dims)
	if err != nil {
		return nil, err
	}

	return build(dims, make([]T, length)), nil
}

// FromSlice wraps data (without copying) as a matrix of the given dimensions.
// Returns ErrDimensionMismatch if len(data) != ∏ dims.
func FromSlice[T any](data []T, dims ...int) (*Matrix[T], error) {
	length, err := shapeLength(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != length {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrDimensionMismatch, len(data), dims)
	}

	return build(dims, data), nil
}

// shapeLength validates dims and returns their product.
func shapeLength(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, ErrBadShape
	}
	length := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("%w: %v", ErrBadShape, dims)
		}
		length *= d
	}

	return length, nil
}

func build[T any](dims []int, data []T) *Matrix[T] {
	d := append([]int(nil), dims...)
	strides := make([]int, len(d))
	for k := range d {
		if k == 0 {
			strides[k] = 1
			continue
		}
		strides[k] = strides[k-1] * d[k-1]
	}

	return &Matrix[T]{
		dims:    d,
		strides: strides,
		data:    data,
		offsets: neighbourOffsets(len(d)),
	}
}

// Len returns the number of elements (∏ dims).
func (m *Matrix[T]) Len() int { return len(m.data) }

// Rank returns the number of dimensions.
func (m *Matrix[T]) Rank() int { return len(m.dims) }

// Dims returns a copy of the dimension vector.
func (m *Matrix[T]) Dims() []int { return append([]int(nil), m.dims...) }

// Data exposes the flat backing slice. Element i corresponds to Coords(i).
func (m *Matrix[T]) Data() []T { return m.data }

// Index maps coordinates to a flat index.
// ok is false when the coordinate count is wrong or any coordinate is out of range.
// Complexity: O(N).
func (m *Matrix[T]) Index(coords ...int) (int, bool) {
	if len(coords) != len(m.dims) {
		return 0, false
	}
	idx := 0
	for k, c := range coords {
		if c < 0 || c >= m.dims[k] {
			return 0, false
		}
		idx += c * m.strides[k]
	}

	return idx, true
}

// Coords maps a flat index back to coordinates.
// ok is false when idx is outside [0, Len()).
// Complexity: O(N).
func (m *Matrix[T]) Coords(idx int) ([]int, bool) {
	if idx < 0 || idx >= len(m.data) {
		return nil, false
	}
	coords := make([]int, len(m.dims))
	for k := len(m.dims) - 1; k >= 0; k-- {
		coords[k] = idx / m.strides[k]
		idx %= m.strides[k]
	}

	return coords, true
}

// At retrieves the element at coords.
// Complexity: O(N).
func (m *Matrix[T]) At(coords ...int) (T, error) {
	var zero T
	if len(coords) != len(m.dims) {
		return zero, denseErrorf("At", coords, ErrDimensionMismatch)
	}
	idx, ok := m.Index(coords...)
	if !ok {
		return zero, denseErrorf("At", coords, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// Set assigns v at coords.
// Complexity: O(N).
func (m *Matrix[T]) Set(v T, coords ...int) error {
	if len(coords) != len(m.dims) {
		return denseErrorf("Set", coords, ErrDimensionMismatch)
	}
	idx, ok := m.Index(coords...)
	if !ok {
		return denseErrorf("Set", coords, ErrOutOfRange)
	}
	m.data[idx] = v

	return nil
}

// AtIndex returns the element at flat index idx; ok is false when out of range.
func (m *Matrix[T]) AtIndex(idx int) (T, bool) {
	if idx < 0 || idx >= len(m.data) {
		var zero T
		return zero, false
	}

	return m.data[idx], true
}

// SetIndex assigns v at flat index idx; it reports whether idx was in range.
func (m *Matrix[T]) SetIndex(idx int, v T) bool {
	if idx < 0 || idx >= len(m.data) {
		return false
	}
	m.data[idx] = v

	return true
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy of the matrix storage. Elements are copied by value.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{dims: m.dims, strides: m.strides, data: data, offsets: m.offsets}
}
