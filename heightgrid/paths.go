// SPDX-License-Identifier: MIT

package heightgrid

import "fmt"

// ShortestPath returns the Climb hop count from g.Start to g.End.
func ShortestPath(g *Grid) (int, error) {
	res, err := g.DistancesFrom(g.Start, WithGoal(func(c Coord, _ int) bool { return c == g.End }))
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("%v to %v: %w", g.Start, g.End, ErrNoPath)
	}

	return res.At(res.Goal), nil
}

// ShortestFromLowest returns the smallest Climb hop count from any cell of
// the minimum height to g.End. It searches once, backwards from the end
// under Descend, and stops at the nearest lowest cell.
func ShortestFromLowest(g *Grid) (int, error) {
	res, err := g.DistancesFrom(g.End,
		WithStepRule(Descend),
		WithGoal(func(_ Coord, h int) bool { return h == minHeight }),
	)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("lowest cells to %v: %w", g.End, ErrNoPath)
	}

	return res.At(res.Goal), nil
}
