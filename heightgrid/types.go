// SPDX-License-Identifier: MIT

package heightgrid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for heightgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightgrid: all rows must have the same length")
	// ErrBadCell indicates a character or height outside the allowed set.
	ErrBadCell = errors.New("heightgrid: invalid cell")
	// ErrMissingEndpoint indicates a layout without exactly one 'S' and one 'E'.
	ErrMissingEndpoint = errors.New("heightgrid: layout needs exactly one start and one end")
	// ErrOutOfRange indicates coordinates outside the grid.
	ErrOutOfRange = errors.New("heightgrid: coordinates out of range")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heightgrid: invalid option supplied")
	// ErrNoPath indicates no goal cell is reachable.
	ErrNoPath = errors.New("heightgrid: no path to goal")
)

// Unreachable marks cells the search never reached.
const Unreachable = math.MaxInt

// Coord addresses a cell by column X and row Y.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// StepRule decides whether a step from a cell of height from to a
// neighbouring cell of height to is admissible.
type StepRule func(from, to int) bool

// Climb admits steps that rise by at most one.
func Climb(from, to int) bool { return to <= from+1 }

// Descend is Climb walked backwards: it admits steps that drop by at most
// one, so distances from the end under Descend equal distances to the end
// under Climb.
func Descend(from, to int) bool { return Climb(to, from) }

// Option configures DistancesFrom via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// StepRule admits steps between heights.
	StepRule StepRule

	// Goal, when set, stops the search at the first goal cell reached.
	Goal func(c Coord, height int) bool

	// OnVisit is called when a cell's distance is fixed. If it returns an
	// error, the search aborts and propagates that error.
	OnVisit func(c Coord, dist int) error

	// MaxDepth, if > 0, stops relaxing beyond this hop count.
	MaxDepth int

	err error
}

// DefaultOptions returns Climb as the step rule, no goal, a no-op OnVisit
// and no depth limit.
func DefaultOptions() Options {
	return Options{
		StepRule: Climb,
		OnVisit:  func(Coord, int) error { return nil },
	}
}

// WithStepRule sets the step admissibility rule; nil is invalid.
func WithStepRule(rule StepRule) Option {
	return func(o *Options) {
		if rule == nil {
			o.err = fmt.Errorf("%w: nil step rule", ErrOptionViolation)
			return
		}
		o.StepRule = rule
	}
}

// WithGoal stops the search at the first cell satisfying fn.
func WithGoal(fn func(c Coord, height int) bool) Option {
	return func(o *Options) {
		o.Goal = fn
	}
}

// WithOnVisit registers a callback run whenever a cell's distance is fixed.
func WithOnVisit(fn func(c Coord, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
