// SPDX-License-Identifier: MIT

package pointcloud

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/numeric"
)

// Alignment is the outcome of Align: every input cloud merged into the
// frame of the first one.
type Alignment struct {
	Cloud Cloud
	// Scanners[i] is the origin of input cloud i in the frame of cloud 0.
	Scanners []Point
}

// MaxManhattan returns the largest Manhattan distance between two scanners.
func (al Alignment) MaxManhattan() int {
	best := 0
	for i := range al.Scanners {
		for j := i + 1; j < len(al.Scanners); j++ {
			best = max(best, numeric.Manhattan(al.Scanners[i], al.Scanners[j]))
		}
	}

	return best
}

// group is a worklist entry: a merged cloud and the scanner origins of its
// members, expressed in its own frame.
type group struct {
	cloud   Cloud
	members []int
	origins map[int]Point
	gen     int
}

// Align merges clouds pairwise until one remains. Pairs that failed to
// merge are not retried until one side has absorbed another cloud.
// ok is false when the worklist stalls with more than one cloud left.
func Align(clouds []Cloud, opts ...Option) (al Alignment, ok bool, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Alignment{}, false, err
	}
	if len(clouds) == 0 {
		return Alignment{}, false, ErrEmptyCloud
	}

	work := make([]*group, len(clouds))
	for i, c := range clouds {
		if len(c) == 0 {
			return Alignment{}, false, fmt.Errorf("cloud %d: %w", i, ErrEmptyCloud)
		}
		if c.Dims() != clouds[0].Dims() {
			return Alignment{}, false, fmt.Errorf("cloud %d: %w", i, ErrDimensionMismatch)
		}
		work[i] = &group{
			cloud:   c,
			members: []int{i},
			origins: map[int]Point{i: make(Point, c.Dims())},
			gen:     i,
		}
	}

	nextGen := len(clouds)
	failed := make(map[[2]int]bool)
	for len(work) > 1 {
		merged := false
	search:
		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				key := [2]int{work[i].gen, work[j].gen}
				if failed[key] {
					continue
				}
				res, found, err := merge(work[i].cloud, work[j].cloud, o)
				if err != nil {
					return Alignment{}, false, err
				}
				if !found {
					failed[key] = true
					continue
				}

				into, from := work[i], work[j]
				o.OnMerge(into.members, from.members, res.Shared)
				g := &group{
					cloud:   res.Cloud,
					members: append(append([]int(nil), into.members...), from.members...),
					origins: make(map[int]Point, len(into.origins)+len(from.origins)),
					gen:     nextGen,
				}
				nextGen++
				for m, p := range into.origins {
					g.origins[m] = p
				}
				for m, p := range from.origins {
					g.origins[m] = res.Map(p)
				}
				work[i] = g
				work = append(work[:j], work[j+1:]...)
				merged = true

				break search
			}
		}
		if !merged {
			return Alignment{}, false, nil
		}
	}

	final := work[0]
	scanners := make([]Point, len(clouds))
	for m, p := range final.origins {
		scanners[m] = p
	}

	return Alignment{Cloud: final.cloud, Scanners: scanners}, true, nil
}
