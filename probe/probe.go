// SPDX-License-Identifier: MIT

// Package probe models a probe launched from the origin under drag and
// gravity: each step x moves by vx and y by vy, then vx decays by one toward
// zero and vy drops by one.
package probe

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlecore/numeric"
)

// ErrUnsupportedTarget indicates a target area that is not strictly below
// the launch point, for which the set of hitting velocities is unbounded.
var ErrUnsupportedTarget = errors.New("probe: target must lie below the launch point")

// Target is an inclusive rectangle.
type Target struct {
	XMin, XMax int
	YMin, YMax int
}

// Contains reports whether (x, y) lies in t.
func (t Target) Contains(x, y int) bool {
	return x >= t.XMin && x <= t.XMax && y >= t.YMin && y <= t.YMax
}

// Position returns the probe position after n steps in closed form.
// Horizontal motion stops after |vx| steps; vertical motion is a plain
// arithmetic series.
func Position(vx, vy, n int) (x, y int) {
	m := min(n, numeric.Abs(vx))
	x = m*vx - numeric.Sign(vx)*m*(m-1)/2
	y = n*vy - n*(n-1)/2

	return x, y
}

// Hits reports whether a launch at (vx, vy) is inside t after some step.
func Hits(vx, vy int, t Target) bool {
	for n := 0; ; n++ {
		x, y := Position(vx, vy, n)
		if t.Contains(x, y) {
			return true
		}
		// below the target and no longer rising
		if y < t.YMin && vy-n <= 0 {
			return false
		}
		if (vx >= 0 && x > t.XMax) || (vx <= 0 && x < t.XMin) {
			return false
		}
	}
}

// MaxHeight is the apex of a launch with vertical velocity vy.
func MaxHeight(vy int) int {
	if vy <= 0 {
		return 0
	}

	return vy * (vy + 1) / 2
}

// Search tries every admissible launch velocity against t and returns the
// highest apex among hits and the number of distinct hitting velocities.
// Velocities outside vx ∈ [min(0,XMin), max(0,XMax)] overshoot on the first
// step, and vy outside [YMin, −YMin−1] skips past the target on the way
// down.
func Search(t Target) (maxHeight, count int, err error) {
	if t.YMax >= 0 || t.YMin > t.YMax || t.XMin > t.XMax {
		return 0, 0, fmt.Errorf("%+v: %w", t, ErrUnsupportedTarget)
	}
	for vx := min(0, t.XMin); vx <= max(0, t.XMax); vx++ {
		for vy := t.YMin; vy <= -t.YMin-1; vy++ {
			if Hits(vx, vy, t) {
				count++
				maxHeight = max(maxHeight, MaxHeight(vy))
			}
		}
	}

	return maxHeight, count, nil
}
