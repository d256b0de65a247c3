// SPDX-License-Identifier: MIT

package pointcloud

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Op is one elementary transformation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	// TranslateToOrigin subtracts Origin from every point.
	TranslateToOrigin Op = iota
	// Rotate90 turns plane (I, J) a quarter turn: (x_I, x_J) → (−x_J, x_I).
	Rotate90
	// Rotate180 turns plane (I, J) half a turn.
	Rotate180
	// Rotate270 turns plane (I, J) three quarter turns.
	Rotate270
)

// Transform is an elementary transformation. Origin is used by
// TranslateToOrigin; I and J name the rotation plane otherwise.
type Transform struct {
	Op     Op
	Origin Point
	I, J   int
}

// Translate returns the transform moving origin to the zero point.
func Translate(origin Point) Transform {
	return Transform{Op: TranslateToOrigin, Origin: slices.Clone(origin)}
}

// Rotate returns a rotation by quarter turns (1, 2 or 3) in plane (i, j).
func Rotate(quarters, i, j int) Transform {
	return Transform{Op: Rotate90 + Op((quarters%4+3)%4), I: i, J: j}
}

// ApplyPoint maps p through ts in order and returns a new point.
func ApplyPoint(p Point, ts ...Transform) Point {
	out := slices.Clone(p)
	for _, t := range ts {
		switch t.Op {
		case TranslateToOrigin:
			for k := range out {
				out[k] -= t.Origin[k]
			}
		case Rotate90:
			out[t.I], out[t.J] = -out[t.J], out[t.I]
		case Rotate180:
			out[t.I], out[t.J] = -out[t.I], -out[t.J]
		case Rotate270:
			out[t.I], out[t.J] = out[t.J], -out[t.I]
		}
	}

	return out
}

// Invert returns the sequence undoing ts.
func Invert(ts []Transform) []Transform {
	out := make([]Transform, len(ts))
	for i, t := range ts {
		inv := t
		switch t.Op {
		case TranslateToOrigin:
			inv.Origin = Point(make([]int, len(t.Origin))).Sub(t.Origin)
		case Rotate90:
			inv.Op = Rotate270
		case Rotate270:
			inv.Op = Rotate90
		}
		out[len(ts)-1-i] = inv
	}

	return out
}

// RotationGroup returns every proper rotation of the n-cube exactly once,
// each as a shortest sequence of quarter turns in planes (i, j), i < j.
// The first element is the identity (an empty sequence). It holds
// 2^(n−1)·n! rotations: 1, 4, 24, 192 for n = 1..4.
//
// Stages:
//  1. Start from the identity.
//  2. Extend each known rotation by a 90°, 180° or 270° turn in every plane.
//  3. Keep an extension when the ordered images of the unit basis vectors
//     have not been seen before.
func RotationGroup(n int) [][]Transform {
	basis := make([]Point, n)
	for k := range basis {
		basis[k] = make(Point, n)
		basis[k][k] = 1
	}
	images := func(ts []Transform) Cloud {
		return Cloud(basis).Apply(ts...)
	}
	// seen buckets basis images by hash; order matters, so compare pointwise
	seen := make(map[uint64][]Cloud)
	add := func(img Cloud) bool {
		d := xxhash.New()
		for _, e := range img {
			hashInts(d, e)
		}
		h := d.Sum64()
		for _, o := range seen[h] {
			if slices.EqualFunc(o, img, Point.Equal) {
				return false
			}
		}
		seen[h] = append(seen[h], img)

		return true
	}

	group := [][]Transform{{}}
	add(images(nil))
	for head := 0; head < len(group); head++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for q := 1; q <= 3; q++ {
					next := append(slices.Clone(group[head]), Rotate(q, i, j))
					if add(images(next)) {
						group = append(group, next)
					}
				}
			}
		}
	}

	return group
}

// Oriented is a cloud together with the transformations that produced it.
type Oriented struct {
	Cloud      Cloud
	Transforms []Transform
}

// Rotations returns c under every rotation of RotationGroup, dropping
// rotations that reproduce an already listed point set. For a cloud without
// rotational symmetry in three dimensions this yields 24 orientations.
func Rotations(c Cloud) []Oriented {
	group := RotationGroup(c.Dims())
	out := make([]Oriented, 0, len(group))
	seen := make(map[uint64][]Cloud, len(group))
	for _, ts := range group {
		rc := c.Apply(ts...)
		h := rc.Canonical()
		if slices.ContainsFunc(seen[h], rc.Equal) {
			continue
		}
		seen[h] = append(seen[h], rc)
		out = append(out, Oriented{Cloud: rc, Transforms: ts})
	}

	return out
}
