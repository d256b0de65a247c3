// SPDX-License-Identifier: MIT

package pointcloud

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for point-cloud operations.
var (
	// ErrDimensionMismatch indicates points of different dimensionality.
	ErrDimensionMismatch = errors.New("pointcloud: dimension mismatch")

	// ErrEmptyCloud indicates a cloud with no points.
	ErrEmptyCloud = errors.New("pointcloud: empty cloud")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("pointcloud: invalid option supplied")
)

// Point is an N-dimensional integer point.
type Point []int

// Add returns p+q.
func (p Point) Add(q Point) Point {
	out := make(Point, len(p))
	for k := range p {
		out[k] = p[k] + q[k]
	}

	return out
}

// Sub returns p−q.
func (p Point) Sub(q Point) Point {
	out := make(Point, len(p))
	for k := range p {
		out[k] = p[k] - q[k]
	}

	return out
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return slices.Equal(p, q) }

// String renders p as "(x,y,z)".
func (p Point) String() string {
	parts := make([]string, len(p))
	for k, v := range p {
		parts[k] = strconv.Itoa(v)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

func comparePoints(a, b Point) int { return slices.Compare(a, b) }

// hashInts feeds vs to d as little-endian 64-bit words.
func hashInts(d *xxhash.Digest, vs []int) {
	var buf [8]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
}

func hashPoint(p Point) uint64 {
	d := xxhash.New()
	hashInts(d, p)

	return d.Sum64()
}

// Cloud is an unordered set of points of equal dimensionality.
type Cloud []Point

// NewCloud validates that all points share one dimensionality and returns
// them as a Cloud. Duplicate points are dropped.
func NewCloud(points []Point) (Cloud, error) {
	if len(points) == 0 {
		return Cloud{}, nil
	}
	n := len(points[0])
	set := newPointSet(len(points))
	out := make(Cloud, 0, len(points))
	for i, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(p), n, ErrDimensionMismatch)
		}
		if set.add(p) {
			out = append(out, slices.Clone(p))
		}
	}

	return out, nil
}

// Dims returns the dimensionality, or 0 for an empty cloud.
func (c Cloud) Dims() int {
	if len(c) == 0 {
		return 0
	}

	return len(c[0])
}

// Sorted returns a lexicographically sorted copy of c.
func (c Cloud) Sorted() Cloud {
	out := slices.Clone(c)
	slices.SortFunc(out, comparePoints)

	return out
}

// Canonical hashes the lexicographically sorted point list. Two clouds
// holding the same set of points hash equally regardless of order.
func (c Cloud) Canonical() uint64 {
	d := xxhash.New()
	for _, p := range c.Sorted() {
		hashInts(d, p)
	}

	return d.Sum64()
}

// Equal reports whether c and o hold the same set of points.
func (c Cloud) Equal(o Cloud) bool {
	if len(c) != len(o) {
		return false
	}
	a, b := c.Sorted(), o.Sorted()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Apply returns the cloud with every point mapped through ts in order.
func (c Cloud) Apply(ts ...Transform) Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = ApplyPoint(p, ts...)
	}

	return out
}

// pointSet is an exact membership index keyed by xxhash buckets.
type pointSet struct {
	buckets map[uint64][]Point
}

func newPointSet(capacity int) *pointSet {
	return &pointSet{buckets: make(map[uint64][]Point, capacity)}
}

func (s *pointSet) contains(p Point) bool {
	for _, q := range s.buckets[hashPoint(p)] {
		if q.Equal(p) {
			return true
		}
	}

	return false
}

// add inserts p and reports whether it was new.
func (s *pointSet) add(p Point) bool {
	h := hashPoint(p)
	for _, q := range s.buckets[h] {
		if q.Equal(p) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], p)

	return true
}
