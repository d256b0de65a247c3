// SPDX-License-Identifier: MIT

package diagnostic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlecore/numeric"
)

var (
	ErrEmpty    = errors.New("diagnostic: no codes")
	ErrWidth    = errors.New("diagnostic: codes differ in width")
	ErrBadDigit = errors.New("diagnostic: code is not binary")
)

// ColumnCount tallies one bit position.
type ColumnCount struct {
	Zeros, Ones int
}

// node is a trie node; child[b] is the subtree for next bit b.
type node struct {
	child [2]int32
	count int
}

// Report holds the parsed codes.
type Report struct {
	width int
	nodes []node
}

// New parses codes of '0' and '1'.
func New(codes []string) (*Report, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmpty
	}
	r := &Report{width: len(codes[0]), nodes: []node{{child: [2]int32{-1, -1}}}}
	for i, code := range codes {
		if len(code) != r.width {
			return nil, fmt.Errorf("code %d has width %d, want %d: %w", i, len(code), r.width, ErrWidth)
		}
		cur := int32(0)
		r.nodes[0].count++
		for k := 0; k < len(code); k++ {
			var b int
			switch code[k] {
			case '0':
			case '1':
				b = 1
			default:
				return nil, fmt.Errorf("code %d %q: %w", i, code, ErrBadDigit)
			}
			next := r.nodes[cur].child[b]
			if next < 0 {
				r.nodes = append(r.nodes, node{child: [2]int32{-1, -1}})
				next = int32(len(r.nodes) - 1)
				r.nodes[cur].child[b] = next
			}
			r.nodes[next].count++
			cur = next
		}
	}

	return r, nil
}

// Width returns the code width in bits.
func (r *Report) Width() int { return r.width }

// Len returns the number of codes.
func (r *Report) Len() int { return r.nodes[0].count }

func (r *Report) count(id int32) int {
	if id < 0 {
		return 0
	}

	return r.nodes[id].count
}

// Columns returns the bit counts per position, most significant first.
func (r *Report) Columns() []ColumnCount {
	out := make([]ColumnCount, r.width)
	level := []int32{0}
	for k := 0; k < r.width; k++ {
		var next []int32
		for _, id := range level {
			for b, c := range r.nodes[id].child {
				if c < 0 {
					continue
				}
				if b == 0 {
					out[k].Zeros += r.nodes[c].count
				} else {
					out[k].Ones += r.nodes[c].count
				}
				next = append(next, c)
			}
		}
		level = next
	}

	return out
}

// Gamma takes the most common bit of every column, 1 on ties.
func (r *Report) Gamma() uint64 {
	bits := make([]bool, r.width)
	for k, c := range r.Columns() {
		bits[k] = c.Ones >= c.Zeros
	}

	return numeric.ParseBinary(bits)
}

// Epsilon takes the least common bit of every column, 0 on ties.
func (r *Report) Epsilon() uint64 {
	return r.Gamma() ^ (uint64(1)<<r.width - 1)
}

// PowerConsumption is Gamma × Epsilon.
func (r *Report) PowerConsumption() uint64 {
	return r.Gamma() * r.Epsilon()
}

// Criterion picks the bit to keep given the counts of the remaining codes
// with a 0 and with a 1 in the current position. It is only consulted while
// both branches are populated.
type Criterion func(zeros, ones int) int

// MostCommon keeps the majority bit, 1 on ties.
func MostCommon(zeros, ones int) int {
	if ones >= zeros {
		return 1
	}

	return 0
}

// LeastCommon keeps the minority bit, 0 on ties.
func LeastCommon(zeros, ones int) int {
	if ones < zeros {
		return 1
	}

	return 0
}

// Filter eliminates codes position by position, keeping those whose bit
// matches keep, and returns the surviving code. Once a single branch
// remains it is followed regardless of keep.
func (r *Report) Filter(keep Criterion) uint64 {
	bits := make([]bool, r.width)
	cur := int32(0)
	for k := 0; k < r.width; k++ {
		ch := r.nodes[cur].child
		zeros, ones := r.count(ch[0]), r.count(ch[1])
		var b int
		switch {
		case zeros == 0:
			b = 1
		case ones == 0:
			b = 0
		default:
			b = keep(zeros, ones) & 1
		}
		bits[k] = b == 1
		cur = ch[b]
	}

	return numeric.ParseBinary(bits)
}

// OxygenRating filters by MostCommon.
func (r *Report) OxygenRating() uint64 { return r.Filter(MostCommon) }

// ScrubberRating filters by LeastCommon.
func (r *Report) ScrubberRating() uint64 { return r.Filter(LeastCommon) }

// LifeSupport is OxygenRating × ScrubberRating.
func (r *Report) LifeSupport() uint64 {
	return r.OxygenRating() * r.ScrubberRating()
}
