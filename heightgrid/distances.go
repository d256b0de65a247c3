// SPDX-License-Identifier: MIT

package heightgrid

import (
	"fmt"
	"slices"
)

// Result holds the outcome of DistancesFrom:
//   - Dist: hop count per cell (row-major), Unreachable where never reached.
//   - Found, Goal: whether and where a goal cell stopped the search.
type Result struct {
	Dist  []int
	Goal  Coord
	Found bool

	width  int
	parent []int
}

// At returns the hop count of c, or Unreachable.
func (r *Result) At(c Coord) int {
	if c.X < 0 || c.X >= r.width || c.Y < 0 || c.Y*r.width+c.X >= len(r.Dist) {
		return Unreachable
	}

	return r.Dist[c.Y*r.width+c.X]
}

// PathTo reconstructs the cells from the search origin to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest Coord) ([]Coord, error) {
	if r.At(dest) == Unreachable {
		return nil, fmt.Errorf("%v: %w", dest, ErrNoPath)
	}
	var path []Coord
	for cur := dest.Y*r.width + dest.X; cur >= 0; cur = r.parent[cur] {
		path = append(path, Coord{cur % r.width, cur / r.width})
	}
	slices.Reverse(path)

	return path, nil
}

// walker encapsulates mutable search state.
type walker struct {
	grid     *Grid
	opts     Options
	res      *Result
	frontier []int
}

// DistancesFrom relaxes hop counts outward from from.
//
// Stages:
//  1. Validate options and the origin.
//  2. Set d[from] = 0, every other cell Unreachable.
//  3. Repeatedly expand the frontier of newly lowered cells: for every
//     admissible step u→v with d[u]+1 < d[v], lower d[v] and queue v.
//  4. Stop early at the first goal cell if a Goal is set.
//
// If no goal is reachable the fully relaxed grid is returned with
// Found=false.
// Complexity: O(W×H) time and memory.
func (g *Grid) DistancesFrom(from Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(from) {
		return nil, fmt.Errorf("origin %v: %w", from, ErrOutOfRange)
	}

	n := g.Width * g.Height
	w := &walker{
		grid: g,
		opts: o,
		res: &Result{
			Dist:   make([]int, n),
			width:  g.Width,
			parent: make([]int, n),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreachable
		w.res.parent[i] = -1
	}

	done, err := w.lower(g.index(from), 0, -1)
	if err != nil || done {
		return w.res, err
	}

	return w.res, w.loop()
}

// lower fixes the distance of cell i, runs OnVisit and checks the goal.
// It reports whether the search should stop.
func (w *walker) lower(i, d, parent int) (bool, error) {
	w.res.Dist[i] = d
	w.res.parent[i] = parent
	c := w.grid.Coordinate(i)
	if err := w.opts.OnVisit(c, d); err != nil {
		return true, fmt.Errorf("heightgrid: OnVisit error at %v: %w", c, err)
	}
	if w.opts.Goal != nil && w.opts.Goal(c, w.grid.heights[i]) {
		w.res.Goal, w.res.Found = c, true
		return true, nil
	}
	w.frontier = append(w.frontier, i)

	return false, nil
}

// loop expands the frontier until it is empty, a goal is hit, or a hook
// fails.
func (w *walker) loop() error {
	var next []int
	for len(w.frontier) > 0 {
		current := w.frontier
		w.frontier = next[:0]
		for _, u := range current {
			du := w.res.Dist[u]
			if w.opts.MaxDepth > 0 && du >= w.opts.MaxDepth {
				continue
			}
			uc := w.grid.Coordinate(u)
			hu := w.grid.heights[u]
			for _, d := range neighborOffsets {
				vc := Coord{uc.X + d[0], uc.Y + d[1]}
				if !w.grid.InBounds(vc) {
					continue
				}
				v := w.grid.index(vc)
				if du+1 >= w.res.Dist[v] || !w.opts.StepRule(hu, w.grid.heights[v]) {
					continue
				}
				done, err := w.lower(v, du+1, u)
				if err != nil || done {
					return err
				}
			}
		}
		next = current
	}

	return nil
}
