// SPDX-License-Identifier: MIT

package pointcloud

import (
	"fmt"
	"slices"
)

// MergeResult describes an accepted overlap of cloud B onto cloud A.
// Points of B map into A's frame by Rotation followed by adding Offset;
// Offset is therefore the position of B's origin in A's frame.
type MergeResult struct {
	Cloud    Cloud
	Rotation []Transform
	Offset   Point
	Shared   int
}

// Transforms returns the full B→A mapping as a transform sequence.
func (r MergeResult) Transforms() []Transform {
	neg := Point(make([]int, len(r.Offset))).Sub(r.Offset)

	return append(slices.Clone(r.Rotation), Translate(neg))
}

// Map carries a point of B's frame into A's frame.
func (r MergeResult) Map(p Point) Point {
	return ApplyPoint(p, r.Rotation...).Add(r.Offset)
}

// Merge looks for a rotation of b and a translation under which at least
// Threshold points of b coincide exactly with points of a. On success the
// result holds the union of a and the mapped b, in a's frame.
//
// Stages:
//  1. Validate options and dimensionality.
//  2. Collect candidate correspondences (all pairs, or the fingerprint
//     matches when the filter is on).
//  3. For each rotation of b and each candidate (p∈a, q∈b′), translate by
//     p−q and count coinciding points.
//  4. Accept the first translation reaching Threshold.
//
// ok is false when no transform reaches the threshold.
func Merge(a, b Cloud, opts ...Option) (res MergeResult, ok bool, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return MergeResult{}, false, err
	}

	return merge(a, b, o)
}

func merge(a, b Cloud, o Options) (MergeResult, bool, error) {
	if len(a) > 0 && len(b) > 0 && a.Dims() != b.Dims() {
		return MergeResult{}, false, fmt.Errorf("merge %d-D with %d-D: %w", a.Dims(), b.Dims(), ErrDimensionMismatch)
	}
	k := o.Threshold
	if len(a) < k || len(b) < k {
		return MergeResult{}, false, nil
	}

	var candidates []Pair
	// a single shared point leaves no distance to fingerprint
	if o.UseFingerprint && k >= 2 {
		var matches int
		matches, candidates = SharedDistances(a, b)
		if matches < k*(k-1)/2 {
			return MergeResult{}, false, nil
		}
	} else {
		candidates = make([]Pair, 0, len(a)*len(b))
		for i := range a {
			for j := range b {
				candidates = append(candidates, Pair{i, j})
			}
		}
	}

	inA := newPointSet(len(a))
	for _, p := range a {
		inA.add(p)
	}

	for _, rot := range Rotations(b) {
		tried := newPointSet(len(candidates))
		for _, c := range candidates {
			offset := a[c.A].Sub(rot.Cloud[c.B])
			if !tried.add(offset) {
				continue
			}
			shared := countShared(inA, rot.Cloud, offset, k)
			if shared < k {
				continue
			}

			merged := slices.Clone(a)
			for _, q := range rot.Cloud {
				if m := q.Add(offset); !inA.contains(m) {
					merged = append(merged, m)
				}
			}

			return MergeResult{
				Cloud:    merged,
				Rotation: rot.Transforms,
				Offset:   offset,
				Shared:   shared,
			}, true, nil
		}
	}

	return MergeResult{}, false, nil
}

// countShared counts points of b+offset found in a, giving up as soon as
// the threshold becomes unreachable.
func countShared(a *pointSet, b Cloud, offset Point, k int) int {
	shared := 0
	for i, q := range b {
		if shared+len(b)-i < k {
			return shared
		}
		if a.contains(q.Add(offset)) {
			shared++
		}
	}

	return shared
}
