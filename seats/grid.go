// SPDX-License-Identifier: MIT

package seats

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzlecore/matrix"
)

// neighbourhood lists up to 8 neighbour indexes of one seat.
type neighbourhood struct {
	idx [8]int32
	n   uint8
}

// Grid is a seating layout evolving under the automaton rules.
type Grid struct {
	cells      *matrix.Matrix[State]
	spare      *matrix.Matrix[State]
	seats      []int32 // flat indexes of non-floor cells
	neighbours []neighbourhood
	crowd      int
	maxGen     int
	generation int
}

// Parse builds a grid from rows of '.', 'L' and '#'.
func Parse(rows []string, opts ...Option) (*Grid, error) {
	cells := make([][]State, len(rows))
	for y, row := range rows {
		cells[y] = make([]State, len(row))
		for x := 0; x < len(row); x++ {
			s, ok := parseState(row[x])
			if !ok {
				return nil, fmt.Errorf("%q at (%d,%d): %w", row[x], x, y, ErrBadCell)
			}
			cells[y][x] = s
		}
	}

	return New(cells, opts...)
}

// New builds a grid from rows of states.
//
// Stage 1 (Validate): non-empty, rectangular, options valid.
// Stage 2 (Prepare): copy cells into a matrix indexed (x, y).
// Stage 3 (Neighbours): record every seat's neighbourhood for the mode.
func New(rows [][]State, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)

	cells, err := matrix.New[State](w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		for x, s := range row {
			if s > Occupied {
				return nil, fmt.Errorf("%v at (%d,%d): %w", s, x, y, ErrBadCell)
			}
			_ = cells.Set(s, x, y)
		}
	}

	g := &Grid{
		cells:  cells,
		spare:  cells.Clone(),
		crowd:  o.crowdLimit(),
		maxGen: o.MaxGenerations,
	}
	data := cells.Data()
	dirs := cells.Offsets(true)
	for i, s := range data {
		if s == Floor {
			continue
		}
		g.seats = append(g.seats, int32(i))

		var nb neighbourhood
		for _, d := range dirs {
			j, ok := cells.Step(i, d...)
			for o.Mode == LineOfSight && ok && data[j] == Floor {
				j, ok = cells.Step(j, d...)
			}
			if ok && data[j] != Floor {
				nb.idx[nb.n] = int32(j)
				nb.n++
			}
		}
		g.neighbours = append(g.neighbours, nb)
	}

	return g, nil
}

// Step advances one generation and reports whether any seat changed.
func (g *Grid) Step() bool {
	cur, next := g.cells.Data(), g.spare.Data()
	copy(next, cur)
	changed := false
	for k, i := range g.seats {
		nb := &g.neighbours[k]
		occupied := 0
		for _, j := range nb.idx[:nb.n] {
			if cur[j] == Occupied {
				occupied++
			}
		}
		switch {
		case cur[i] == Empty && occupied == 0:
			next[i] = Occupied
			changed = true
		case cur[i] == Occupied && occupied >= g.crowd:
			next[i] = Empty
			changed = true
		}
	}
	g.cells, g.spare = g.spare, g.cells
	if changed {
		g.generation++
	}

	return changed
}

// Run steps until nothing changes and returns the number of generations in
// which something changed. With a generation bound it fails with
// ErrNoFixpoint once the bound is reached while seats still change.
func (g *Grid) Run() (int, error) {
	start := g.generation
	for {
		if g.maxGen > 0 && g.generation-start >= g.maxGen {
			return g.generation - start, fmt.Errorf("after %d generations: %w", g.maxGen, ErrNoFixpoint)
		}
		if !g.Step() {
			return g.generation - start, nil
		}
	}
}

// Generation returns the number of changing generations so far.
func (g *Grid) Generation() int { return g.generation }

// Occupied counts occupied seats.
func (g *Grid) Occupied() int {
	data := g.cells.Data()
	n := 0
	for _, i := range g.seats {
		if data[i] == Occupied {
			n++
		}
	}

	return n
}

// Size returns the width and height.
func (g *Grid) Size() (w, h int) {
	dims := g.cells.Dims()

	return dims[0], dims[1]
}

// At returns the state at column x, row y.
func (g *Grid) At(x, y int) (State, error) {
	return g.cells.At(x, y)
}

// String renders the grid as rows of '.', 'L' and '#'.
func (g *Grid) String() string {
	w, h := g.Size()
	data := g.cells.Data()
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(stateRunes[data[y*w+x]])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
