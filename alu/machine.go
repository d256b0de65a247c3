// SPDX-License-Identifier: MIT

package alu

import "fmt"

// Machine executes a Program. Registers start at zero and persist across
// Run calls until Reset.
type Machine struct {
	prog *Program
	regs []int
}

// NewMachine returns a zeroed machine for p.
func NewMachine(p *Program) *Machine {
	return &Machine{prog: p, regs: make([]int, len(p.Registers))}
}

// Reset zeroes every register.
func (m *Machine) Reset() { clear(m.regs) }

// Reg returns the value of the named register.
func (m *Machine) Reg(name byte) (int, error) {
	i, err := m.prog.register(string(name))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", name, err)
	}

	return m.regs[i], nil
}

// Registers returns a copy of the register file in declaration order.
func (m *Machine) Registers() []int {
	return append([]int(nil), m.regs...)
}

// Run executes the whole program, consuming inputs in order with each inp.
// Division truncates toward zero. On error the registers hold the state
// before the failing instruction.
func (m *Machine) Run(inputs []int) error {
	next := 0
	for _, in := range m.prog.Instructions {
		if in.Op == Inp {
			if next >= len(inputs) {
				return fmt.Errorf("line %d: %w", in.Line, ErrInputExhausted)
			}
			m.regs[in.A] = inputs[next]
			next++
			continue
		}

		a, b := m.regs[in.A], in.B.Imm
		if in.B.IsReg {
			b = m.regs[in.B.Reg]
		}
		switch in.Op {
		case Add:
			a += b
		case Mul:
			a *= b
		case Div:
			if b == 0 {
				return fmt.Errorf("line %d: %s: %w", in.Line, m.prog.Format(in), ErrDivideByZero)
			}
			a /= b
		case Mod:
			if a < 0 || b <= 0 {
				return fmt.Errorf("line %d: %s with %d, %d: %w", in.Line, m.prog.Format(in), a, b, ErrDivideByZero)
			}
			a %= b
		case Eql:
			if a == b {
				a = 1
			} else {
				a = 0
			}
		}
		m.regs[in.A] = a
	}

	return nil
}

// Run executes p on a fresh machine and returns the final registers.
func Run(p *Program, inputs []int) ([]int, error) {
	m := NewMachine(p)
	if err := m.Run(inputs); err != nil {
		return nil, err
	}

	return m.regs, nil
}
