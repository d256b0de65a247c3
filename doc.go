// SPDX-License-Identifier: MIT

// Package puzzlecore is a set of small, deterministic engines for grid,
// bit-stream and geometry puzzles. Each engine lives in its own package and
// has no dependency on a driver, input format or output surface.
//
// Packages:
//
//	matrix/     N-dimensional dense matrix with neighbour offsets
//	numeric/    integer helpers: base conversion, wrap/mirror, Manhattan
//	cuboid/     constructive solid geometry over axis-aligned boxes
//	bits/       BITS packet decoder, evaluator and encoder
//	snailfish/  snailfish number addition and reduction
//	pointcloud/ rotation/translation alignment of overlapping scans
//	bingo/      multi-card bingo with a draw index
//	seats/      seat-occupancy cellular automaton to a fixpoint
//	heightgrid/ hop-count search over a height map
//	segdisplay/ seven-segment wiring recovery
//	hatchery/   bucketed population growth
//	probe/      ballistic probe trajectories
//	diagnostic/ binary diagnostic report with trie filtering
//	alu/        four-register ALU and MONAD model-number solver
//
// Every engine reports malformed input through package sentinel errors
// (match with errors.Is), logs nothing, and is not safe for concurrent
// mutation.
package puzzlecore
