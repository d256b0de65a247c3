// SPDX-License-Identifier: MIT

package cuboid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cuboid operations.
var (
	// ErrDimensionMismatch indicates operands with different dimensionality.
	ErrDimensionMismatch = errors.New("cuboid: dimension mismatch")

	// ErrEmptyCuboid indicates a cuboid without axes.
	ErrEmptyCuboid = errors.New("cuboid: cuboid must have at least one axis")

	// ErrInverted indicates Min[k] > Max[k] on some axis.
	ErrInverted = errors.New("cuboid: min exceeds max")
)

// Point is a position in N-dimensional integer space.
type Point []int64

// Cuboid is an axis-aligned box, closed on both ends.
// Invariant: len(Min) == len(Max) and Min[k] ≤ Max[k] for every axis k.
type Cuboid struct {
	Min, Max Point
}

// New builds the cuboid spanned by two opposite corners, ordering each axis.
// Returns ErrEmptyCuboid for zero-length points and ErrDimensionMismatch for
// points of different length.
func New(a, b Point) (Cuboid, error) {
	if len(a) == 0 || len(b) == 0 {
		return Cuboid{}, ErrEmptyCuboid
	}
	if len(a) != len(b) {
		return Cuboid{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	lo := make(Point, len(a))
	hi := make(Point, len(a))
	for k := range a {
		lo[k], hi[k] = min(a[k], b[k]), max(a[k], b[k])
	}

	return Cuboid{Min: lo, Max: hi}, nil
}

// FromRanges builds a cuboid from per-axis inclusive [lo, hi] ranges.
// Unlike New it does not reorder: an inverted range yields ErrInverted.
func FromRanges(ranges ...[2]int64) (Cuboid, error) {
	if len(ranges) == 0 {
		return Cuboid{}, ErrEmptyCuboid
	}
	c := Cuboid{Min: make(Point, len(ranges)), Max: make(Point, len(ranges))}
	for k, r := range ranges {
		if r[0] > r[1] {
			return Cuboid{}, fmt.Errorf("%w: axis %d [%d, %d]", ErrInverted, k, r[0], r[1])
		}
		c.Min[k], c.Max[k] = r[0], r[1]
	}

	return c, nil
}

// Dims returns the dimensionality of c.
func (c Cuboid) Dims() int { return len(c.Min) }

// Volume returns ∏ (Max[k]−Min[k]+1).
func (c Cuboid) Volume() uint64 {
	v := uint64(1)
	for k := range c.Min {
		v *= uint64(c.Max[k]) - uint64(c.Min[k]) + 1
	}

	return v
}

// Contains reports whether p lies inside c.
func (c Cuboid) Contains(p Point) bool {
	if len(p) != len(c.Min) {
		return false
	}
	for k, v := range p {
		if v < c.Min[k] || v > c.Max[k] {
			return false
		}
	}

	return true
}

// Intersect returns c ∩ o. ok is false when the cuboids are disjoint or of
// different dimensionality.
func (c Cuboid) Intersect(o Cuboid) (Cuboid, bool) {
	if len(c.Min) != len(o.Min) {
		return Cuboid{}, false
	}
	out := Cuboid{Min: make(Point, len(c.Min)), Max: make(Point, len(c.Min))}
	for k := range c.Min {
		lo, hi := max(c.Min[k], o.Min[k]), min(c.Max[k], o.Max[k])
		if lo > hi {
			return Cuboid{}, false
		}
		out.Min[k], out.Max[k] = lo, hi
	}

	return out, true
}

// Clone returns a deep copy of c.
func (c Cuboid) Clone() Cuboid {
	return Cuboid{
		Min: append(Point(nil), c.Min...),
		Max: append(Point(nil), c.Max...),
	}
}

// String renders c as "x=lo..hi,y=lo..hi,..." for the first three axes and
// "a3=lo..hi" beyond.
func (c Cuboid) String() string {
	var sb strings.Builder
	for k := range c.Min {
		if k > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%d..%d", axisName(k), c.Min[k], c.Max[k])
	}

	return sb.String()
}

func axisName(k int) string {
	if k < 3 {
		return string("xyz"[k])
	}

	return fmt.Sprintf("a%d", k)
}

// Step is one reboot instruction: switch every cell of Cuboid on or off.
type Step struct {
	On     bool
	Cuboid Cuboid
}
