// SPDX-License-Identifier: MIT

package seats

import (
	"errors"
	"fmt"
)

// Sentinel errors for seat grids.
var (
	ErrEmptyGrid       = errors.New("seats: empty grid")
	ErrNonRectangular  = errors.New("seats: rows differ in length")
	ErrBadCell         = errors.New("seats: unknown cell")
	ErrOptionViolation = errors.New("seats: invalid option supplied")
	ErrNoFixpoint      = errors.New("seats: no fixpoint within generation limit")
)

// State is the content of one cell.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=State
type State uint8

const (
	Floor State = iota
	Empty
	Occupied
)

var stateRunes = [...]byte{Floor: '.', Empty: 'L', Occupied: '#'}

func parseState(c byte) (State, bool) {
	switch c {
	case '.':
		return Floor, true
	case 'L':
		return Empty, true
	case '#':
		return Occupied, true
	}

	return Floor, false
}

// Mode selects how neighbourhoods are derived.
type Mode uint8

const (
	// Adjacent uses the directly adjacent seats.
	Adjacent Mode = iota
	// LineOfSight uses the first seat visible in each direction.
	LineOfSight
)

// Option configures a Grid.
type Option func(*Options)

// Options holds the automaton parameters.
type Options struct {
	Mode Mode

	// CrowdLimit is the occupied-neighbour count that empties a seat.
	// Zero selects the mode's default (4 for Adjacent, 5 for LineOfSight).
	CrowdLimit int

	// MaxGenerations bounds Run; zero means unbounded.
	MaxGenerations int

	err error
}

// DefaultOptions returns Adjacent mode with the default crowd limit and no
// generation bound.
func DefaultOptions() Options {
	return Options{Mode: Adjacent}
}

// WithMode selects the neighbourhood rule.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Adjacent && m != LineOfSight {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithCrowdLimit sets the crowd limit; 1 ≤ k ≤ 8.
func WithCrowdLimit(k int) Option {
	return func(o *Options) {
		if k < 1 || k > 8 {
			o.err = fmt.Errorf("%w: crowd limit %d outside [1,8]", ErrOptionViolation, k)
			return
		}
		o.CrowdLimit = k
	}
}

// WithMaxGenerations bounds Run; n < 0 is invalid and 0 disables the bound.
func WithMaxGenerations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max generations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGenerations = n
	}
}

func (o Options) crowdLimit() int {
	switch {
	case o.CrowdLimit > 0:
		return o.CrowdLimit
	case o.Mode == LineOfSight:
		return 5
	default:
		return 4
	}
}
