// SPDX-License-Identifier: MIT

// Package hatchery simulates a population of periodically spawning
// creatures in constant memory.
//
// Each creature carries a timer. When the timer is 0 the creature spawns a
// newborn and its timer restarts at cycle−1; a newborn starts at
// cycle−1+maturity. Creatures are interchangeable, so the population is kept
// as counts per timer value and a tick is a rotation of those buckets.
package hatchery

import (
	"errors"
	"fmt"
)

// Lanternfish parameters: a 7-day cycle and a 2-day maturity delay.
const (
	DefaultCycle    = 7
	DefaultMaturity = 2
)

var (
	// ErrParams indicates a non-positive cycle or a negative maturity.
	ErrParams = errors.New("hatchery: invalid parameters")
	// ErrTimer indicates a timer outside [0, cycle+maturity).
	ErrTimer = errors.New("hatchery: timer out of range")
)

// Hatchery holds the population bucketed by timer value.
type Hatchery struct {
	cycle   int
	buckets []uint64
	day     int
}

// New returns an empty hatchery.
func New(maturity, cycle int) (*Hatchery, error) {
	if cycle < 1 || maturity < 0 {
		return nil, fmt.Errorf("cycle %d, maturity %d: %w", cycle, maturity, ErrParams)
	}

	return &Hatchery{cycle: cycle, buckets: make([]uint64, cycle+maturity)}, nil
}

// Populate adds one creature per timer.
func (h *Hatchery) Populate(timers []int) error {
	for i, t := range timers {
		if t < 0 || t >= len(h.buckets) {
			return fmt.Errorf("timer %d at %d: %w", t, i, ErrTimer)
		}
	}
	for _, t := range timers {
		h.buckets[t]++
	}

	return nil
}

// Tick advances one day.
func (h *Hatchery) Tick() {
	spawning := h.buckets[0]
	copy(h.buckets, h.buckets[1:])
	h.buckets[len(h.buckets)-1] = spawning
	h.buckets[h.cycle-1] += spawning
	h.day++
}

// Advance runs days ticks and returns the population afterwards.
func (h *Hatchery) Advance(days int) uint64 {
	for i := 0; i < days; i++ {
		h.Tick()
	}

	return h.Len()
}

// Len returns the population size. It wraps silently past 2^64.
func (h *Hatchery) Len() uint64 {
	var n uint64
	for _, b := range h.buckets {
		n += b
	}

	return n
}

// Day returns the number of ticks so far.
func (h *Hatchery) Day() int { return h.day }

// Buckets returns a copy of the per-timer counts.
func (h *Hatchery) Buckets() []uint64 { return append([]uint64(nil), h.buckets...) }
