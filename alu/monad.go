// SPDX-License-Identifier: MIT

package alu

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/puzzlecore/numeric"
)

// BlockLen is the instruction count of one MONAD block.
const BlockLen = 18

// Stack base used by the z register.
const base = 26

// monadBlock is the shape every block must match. Upper-case operands are
// the per-block parameters.
var monadBlock = [BlockLen][3]string{
	{"inp", "w", ""},
	{"mul", "x", "0"},
	{"add", "x", "z"},
	{"mod", "x", "26"},
	{"div", "z", "D"},
	{"add", "x", "C"},
	{"eql", "x", "w"},
	{"eql", "x", "0"},
	{"mul", "y", "0"},
	{"add", "y", "25"},
	{"mul", "y", "x"},
	{"add", "y", "1"},
	{"mul", "z", "y"},
	{"mul", "y", "0"},
	{"add", "y", "w"},
	{"add", "y", "O"},
	{"mul", "y", "x"},
	{"add", "z", "y"},
}

// Block holds the parameters of one digit-checking block:
//   - Div is 1 for a block that pushes w+Offset onto z, 26 for one that
//     pops and compares top+Check with w.
//   - Partner is the index of the paired block, Delta the difference
//     digit[pop] − digit[push] the pair requires (set on both sides).
type Block struct {
	Index   int
	Div     int
	Check   int
	Offset  int
	Partner int
	Delta   int
}

// Pushes reports whether b pushes onto the stack.
func (b Block) Pushes() bool { return b.Div == 1 }

// Analyze splits p into MONAD blocks and pairs every pop with its push.
//
// Stages:
//  1. Match each 18-instruction slice against the block shape and read
//     the parameters D, C and O.
//  2. Check that no pushing block can satisfy its own comparison
//     (C > 9) and that every pushed value w+O fits one base-26 digit.
//  3. Pair blocks with a stack; a pop on an empty stack or a push left
//     over at the end means z can never return to zero.
func Analyze(p *Program) ([]Block, error) {
	n := len(p.Instructions)
	if n == 0 || n%BlockLen != 0 {
		return nil, fmt.Errorf("%d instructions: %w", n, ErrUnsupportedProgram)
	}

	blocks := make([]Block, n/BlockLen)
	for i := range blocks {
		b, err := p.matchBlock(i)
		if err != nil {
			return nil, err
		}
		blocks[i] = b
	}

	var stack []int
	for i := range blocks {
		b := &blocks[i]
		if b.Pushes() {
			stack = append(stack, i)
			continue
		}
		if len(stack) == 0 {
			return nil, fmt.Errorf("block %d pops an empty stack: %w", i, ErrNoSolution)
		}
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delta := blocks[j].Offset + b.Check
		b.Partner, b.Delta = j, delta
		blocks[j].Partner, blocks[j].Delta = i, delta
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%d unpaired pushes: %w", len(stack), ErrNoSolution)
	}

	return blocks, nil
}

func (p *Program) matchBlock(index int) (Block, error) {
	b := Block{Index: index, Partner: -1}
	for k, want := range monadBlock {
		in := p.Instructions[index*BlockLen+k]
		fail := func() (Block, error) {
			return Block{}, fmt.Errorf("line %d: %q, want %s %s %s: %w",
				in.Line, p.Format(in), want[0], want[1], want[2], ErrUnsupportedProgram)
		}

		if in.Op.String() != want[0] {
			return fail()
		}
		if a, err := p.register(want[1]); err != nil || a != in.A {
			return fail()
		}
		if in.Op == Inp {
			continue
		}
		switch want[2] {
		case "D", "C", "O":
			if in.B.IsReg {
				return fail()
			}
			switch want[2] {
			case "D":
				b.Div = in.B.Imm
			case "C":
				b.Check = in.B.Imm
			case "O":
				b.Offset = in.B.Imm
			}
		default:
			if r, err := p.register(want[2]); err == nil {
				if !in.B.IsReg || in.B.Reg != r {
					return fail()
				}
			} else if imm, _ := strconv.Atoi(want[2]); in.B.IsReg || in.B.Imm != imm {
				return fail()
			}
		}
	}

	switch {
	case b.Div != 1 && b.Div != base:
		return Block{}, fmt.Errorf("block %d divides z by %d: %w", index, b.Div, ErrUnsupportedProgram)
	case b.Div == 1 && b.Check <= 9:
		return Block{}, fmt.Errorf("block %d pushes conditionally (check %d): %w", index, b.Check, ErrUnsupportedProgram)
	case b.Offset < 0 || b.Offset+9 >= base:
		return Block{}, fmt.Errorf("block %d offset %d overflows a stack digit: %w", index, b.Offset, ErrUnsupportedProgram)
	}

	return b, nil
}

// Largest returns the greatest accepted model number.
func Largest(p *Program) (uint64, error) { return solve(p, true) }

// Smallest returns the least accepted model number.
func Smallest(p *Program) (uint64, error) { return solve(p, false) }

// solve fixes each pair's digits at the extreme allowed by its Delta and
// confirms the result by execution.
func solve(p *Program, largest bool) (uint64, error) {
	blocks, err := Analyze(p)
	if err != nil {
		return 0, err
	}

	digits := make([]int, len(blocks))
	for _, b := range blocks {
		if !b.Pushes() {
			continue
		}
		if numeric.Abs(b.Delta) > 8 {
			return 0, fmt.Errorf("blocks %d and %d differ by %d: %w", b.Index, b.Partner, b.Delta, ErrNoSolution)
		}
		// digit[pop] = digit[push] + Delta, both in 1..9
		push := 1 + max(0, -b.Delta)
		if largest {
			push = 9 - max(0, b.Delta)
		}
		digits[b.Index] = push
		digits[b.Partner] = push + b.Delta
	}

	m := NewMachine(p)
	if err := m.Run(digits); err != nil {
		return 0, err
	}
	if z, _ := m.Reg('z'); z != 0 {
		return 0, fmt.Errorf("%v leaves z=%d: %w", digits, z, ErrUnsupportedProgram)
	}

	return numeric.ParseBase(digits, 10)
}

// Accepts reports whether p ends with z = 0 on the given digits.
func Accepts(p *Program, digits []int) (bool, error) {
	m := NewMachine(p)
	if err := m.Run(digits); err != nil {
		return false, err
	}
	z, err := m.Reg('z')
	if err != nil {
		return false, err
	}

	return z == 0, nil
}
