// SPDX-License-Identifier: MIT

// Package segdisplay recovers the scrambled wiring of a seven-segment
// display from its ten unique signal patterns and decodes output digits.
//
// Patterns are handled as 7-bit masks (wire 'a' = bit 0). Digits 1, 4, 7
// and 8 are identified by segment count; the six- and five-segment digits
// follow from containment of 1 and 4.
package segdisplay

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBadPattern indicates a pattern with a wire outside 'a'..'g' or a
	// repeated wire.
	ErrBadPattern = errors.New("segdisplay: malformed pattern")
	// ErrInconsistent indicates patterns that do not describe ten distinct
	// digits of one wiring.
	ErrInconsistent = errors.New("segdisplay: patterns are inconsistent")
	// ErrUnknownDigit indicates an output pattern matching no digit.
	ErrUnknownDigit = errors.New("segdisplay: unknown digit")
)

// Display holds the deduced pattern of every digit.
type Display struct {
	digits [10]uint8
}

func mask(p string) (uint8, error) {
	var m uint8
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("%q: %w", p, ErrBadPattern)
		}
		bit := uint8(1) << (c - 'a')
		if m&bit != 0 {
			return 0, fmt.Errorf("%q: %w", p, ErrBadPattern)
		}
		m |= bit
	}

	return m, nil
}

func contains(outer, inner uint8) bool { return outer&inner == inner }

// Program deduces the digit patterns from ten unique signal patterns.
//
// Stages:
//  1. 1, 4, 7 and 8 by segment count (2, 4, 3, 7).
//  2. Six segments: 9 contains 4; else 0 contains 1; else 6.
//  3. Five segments: 3 contains 1; else 5 lies inside 6; else 2.
func Program(patterns []string) (*Display, error) {
	if len(patterns) != 10 {
		return nil, fmt.Errorf("%d patterns, want 10: %w", len(patterns), ErrInconsistent)
	}
	masks := make([]uint8, len(patterns))
	byCount := make(map[int][]uint8)
	for i, p := range patterns {
		m, err := mask(p)
		if err != nil {
			return nil, err
		}
		masks[i] = m
		byCount[bits.OnesCount8(m)] = append(byCount[bits.OnesCount8(m)], m)
	}

	var d Display
	for digit, n := range map[int]int{1: 2, 4: 4, 7: 3, 8: 7} {
		if len(byCount[n]) != 1 {
			return nil, fmt.Errorf("%d patterns of %d segments: %w", len(byCount[n]), n, ErrInconsistent)
		}
		d.digits[digit] = byCount[n][0]
	}
	one, four := d.digits[1], d.digits[4]

	if len(byCount[6]) != 3 || len(byCount[5]) != 3 {
		return nil, fmt.Errorf("six/five segment groups: %w", ErrInconsistent)
	}
	found := 0
	for _, m := range byCount[6] {
		switch {
		case contains(m, four):
			d.digits[9] = m
			found |= 1 << 9
		case contains(m, one):
			d.digits[0] = m
			found |= 1 << 0
		default:
			d.digits[6] = m
			found |= 1 << 6
		}
	}
	for _, m := range byCount[5] {
		switch {
		case contains(m, one):
			d.digits[3] = m
			found |= 1 << 3
		case contains(d.digits[6], m):
			d.digits[5] = m
			found |= 1 << 5
		default:
			d.digits[2] = m
			found |= 1 << 2
		}
	}
	if want := 1<<9 | 1<<6 | 1<<5 | 1<<3 | 1<<2 | 1<<0; found != want {
		return nil, fmt.Errorf("ambiguous digits: %w", ErrInconsistent)
	}

	return &d, nil
}

// Decode maps output patterns to digits.
func (d *Display) Decode(output []string) ([]int, error) {
	out := make([]int, len(output))
	for i, p := range output {
		m, err := mask(p)
		if err != nil {
			return nil, err
		}
		out[i] = -1
		for digit, dm := range d.digits {
			if dm == m {
				out[i] = digit
				break
			}
		}
		if out[i] < 0 {
			return nil, fmt.Errorf("%q: %w", p, ErrUnknownDigit)
		}
	}

	return out, nil
}

// Wiring returns, for each segment 'a'..'g' of a correctly wired display,
// the wire that drives it.
func (d *Display) Wiring() [7]byte {
	a := d.digits[7] &^ d.digits[1]
	c := d.digits[8] &^ d.digits[6]
	dd := d.digits[8] &^ d.digits[0]
	e := d.digits[8] &^ d.digits[9]
	f := d.digits[1] &^ c
	g := d.digits[9] &^ (d.digits[4] | a)
	b := d.digits[8] &^ (a | c | dd | e | f | g)

	var out [7]byte
	for i, m := range []uint8{a, b, c, dd, e, f, g} {
		out[i] = 'a' + byte(bits.TrailingZeros8(m))
	}

	return out
}

// Decode programs a display from patterns and decodes output with it.
func Decode(patterns, output []string) ([]int, error) {
	d, err := Program(patterns)
	if err != nil {
		return nil, err
	}

	return d.Decode(output)
}

// Value joins decimal digits into a number.
func Value(digits []int) int {
	v := 0
	for _, dg := range digits {
		v = v*10 + dg
	}

	return v
}

// CountEasy counts the digits with a unique segment count: 1, 4, 7 and 8.
func CountEasy(digits []int) int {
	n := 0
	for _, dg := range digits {
		switch dg {
		case 1, 4, 7, 8:
			n++
		}
	}

	return n
}
