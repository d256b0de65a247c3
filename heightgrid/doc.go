// SPDX-License-Identifier: MIT

// Package heightgrid finds shortest hop counts over a 2-D height map where
// each step must satisfy a caller-supplied admissibility rule.
//
// What:
//
//   - Grid wraps a rectangular height map (row-major) with designated start
//     and end cells; Parse reads the letter notation ('a'..'z' → 1..26,
//     'S' = start at height 1, 'E' = end at height 26).
//   - DistancesFrom relaxes hop counts outward from one cell over the four
//     orthogonal neighbours, admitting a step u→v only when
//     StepRule(height(u), height(v)) holds.
//   - An optional Goal predicate stops the search at the first goal cell;
//     Result.PathTo rebuilds the route.
//
// Complexity:
//
//   - DistancesFrom: O(W×H) time and memory.
//
// Options:
//
//   - WithStepRule: admissibility of a step between two heights (default Climb).
//   - WithGoal:     goal predicate on (cell, height).
//   - WithOnVisit:  hook run when a cell's distance is fixed; an error aborts.
//   - WithMaxDepth: stop relaxing beyond a hop count.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrMissingEndpoint:
//     malformed input.
//   - ErrOutOfRange:      a cell outside the grid.
//   - ErrOptionViolation: an invalid Option.
//   - ErrNoPath:          returned by the shortest-path helpers only; the
//     distance grid itself marks unreachable cells with Unreachable.
package heightgrid
