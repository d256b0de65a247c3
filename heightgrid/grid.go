// SPDX-License-Identifier: MIT

package heightgrid

import "fmt"

const (
	minHeight = 1
	maxHeight = 26
)

// orthogonal neighbour offsets: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is an immutable height map with start and end cells.
type Grid struct {
	Width, Height int
	Start, End    Coord
	heights       []int
}

// Parse reads rows of 'a'..'z' with exactly one 'S' and one 'E'.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	heights := make([][]int, len(rows))
	var start, end []Coord
	for y, row := range rows {
		heights[y] = make([]int, len(row))
		for x := 0; x < len(row); x++ {
			switch c := row[x]; {
			case c >= 'a' && c <= 'z':
				heights[y][x] = int(c-'a') + minHeight
			case c == 'S':
				heights[y][x] = minHeight
				start = append(start, Coord{x, y})
			case c == 'E':
				heights[y][x] = maxHeight
				end = append(end, Coord{x, y})
			default:
				return nil, fmt.Errorf("%q at %v: %w", c, Coord{x, y}, ErrBadCell)
			}
		}
	}
	if len(start) != 1 || len(end) != 1 {
		return nil, fmt.Errorf("%d starts, %d ends: %w", len(start), len(end), ErrMissingEndpoint)
	}

	return New(heights, start[0], end[0])
}

// New builds a grid from heights[y][x]. The input is copied; heights must
// be non-negative.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(heights [][]int, start, end Coord) (*Grid, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(heights), len(heights[0])
	g := &Grid{Width: w, Height: h, Start: start, End: end, heights: make([]int, 0, w*h)}
	for y, row := range heights {
		if len(row) != w {
			return nil, fmt.Errorf("row %d: %w", y, ErrNonRectangular)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("height %d at %v: %w", v, Coord{x, y}, ErrBadCell)
			}
		}
		g.heights = append(g.heights, row...)
	}
	for _, c := range []Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("endpoint %v: %w", c, ErrOutOfRange)
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{idx % g.Width, idx / g.Width}
}

// At returns the height of c.
func (g *Grid) At(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%v: %w", c, ErrOutOfRange)
	}

	return g.heights[g.index(c)], nil
}

// CellsAt returns every cell of height h in row-major order.
func (g *Grid) CellsAt(h int) []Coord {
	var out []Coord
	for i, v := range g.heights {
		if v == h {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}
