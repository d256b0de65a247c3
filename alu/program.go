// SPDX-License-Identifier: MIT

package alu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrSyntax             = errors.New("alu: malformed instruction")
	ErrUnknownOpcode      = errors.New("alu: unknown opcode")
	ErrUnknownRegister    = errors.New("alu: unknown register")
	ErrOptionViolation    = errors.New("alu: invalid option")
	ErrDivideByZero       = errors.New("alu: division by zero or invalid modulo")
	ErrInputExhausted     = errors.New("alu: input exhausted")
	ErrUnsupportedProgram = errors.New("alu: program is not a MONAD")
	ErrNoSolution         = errors.New("alu: no model number is accepted")
)

// DefaultRegisters names the registers of the standard ALU.
const DefaultRegisters = "wxyz"

// Options configures Parse.
type Options struct {
	// Registers holds one single-letter name per register.
	Registers string

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard four-register layout.
func DefaultOptions() Options {
	return Options{Registers: DefaultRegisters}
}

// WithRegisters names the registers; names must be distinct lowercase
// letters.
func WithRegisters(names string) Option {
	return func(o *Options) {
		seen := 0
		for i := 0; i < len(names); i++ {
			c := names[i]
			if c < 'a' || c > 'z' || seen&(1<<(c-'a')) != 0 {
				o.err = fmt.Errorf("registers %q: %w", names, ErrOptionViolation)
				return
			}
			seen |= 1 << (c - 'a')
		}
		if names == "" {
			o.err = fmt.Errorf("no registers: %w", ErrOptionViolation)
			return
		}
		o.Registers = names
	}
}

// Operand is the second argument of an instruction: a register index when
// IsReg, otherwise the immediate Imm.
type Operand struct {
	IsReg bool
	Reg   int
	Imm   int
}

// Instruction is one parsed line. A is the destination register; B is
// unused by Inp.
type Instruction struct {
	Op   Opcode
	A    int
	B    Operand
	Line int
}

// Program is a parsed instruction list bound to its register names.
type Program struct {
	Instructions []Instruction
	Registers    string
}

// Parse reads one instruction per line. Blank lines are skipped; Line
// numbers are 1-based.
func Parse(src string, opts ...Option) (*Program, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &Program{Registers: o.Registers}
	for n, line := range strings.Split(src, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		in, err := p.parseInstruction(f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", n+1, strings.TrimSpace(line), err)
		}
		in.Line = n + 1
		p.Instructions = append(p.Instructions, in)
	}

	return p, nil
}

func (p *Program) parseInstruction(f []string) (Instruction, error) {
	op, ok := opcodes[f[0]]
	if !ok {
		return Instruction{}, ErrUnknownOpcode
	}
	want := 3
	if op == Inp {
		want = 2
	}
	if len(f) != want {
		return Instruction{}, ErrSyntax
	}

	in := Instruction{Op: op}
	var err error
	if in.A, err = p.register(f[1]); err != nil {
		return Instruction{}, err
	}
	if op == Inp {
		return in, nil
	}
	if r, err := p.register(f[2]); err == nil {
		in.B = Operand{IsReg: true, Reg: r}
		return in, nil
	}
	imm, err := strconv.Atoi(f[2])
	if err != nil {
		if len(f[2]) == 1 && f[2][0] >= 'a' && f[2][0] <= 'z' {
			return Instruction{}, ErrUnknownRegister
		}
		return Instruction{}, ErrSyntax
	}
	in.B = Operand{Imm: imm}

	return in, nil
}

func (p *Program) register(name string) (int, error) {
	if len(name) == 1 {
		if i := strings.IndexByte(p.Registers, name[0]); i >= 0 {
			return i, nil
		}
	}

	return 0, ErrUnknownRegister
}

// Len returns the number of instructions.
func (p *Program) Len() int { return len(p.Instructions) }

// Format renders in as source text.
func (p *Program) Format(in Instruction) string {
	a := string(p.Registers[in.A])
	if in.Op == Inp {
		return in.Op.String() + " " + a
	}
	b := strconv.Itoa(in.B.Imm)
	if in.B.IsReg {
		b = string(p.Registers[in.B.Reg])
	}

	return in.Op.String() + " " + a + " " + b
}

// String renders the program one instruction per line.
func (p *Program) String() string {
	var sb strings.Builder
	for _, in := range p.Instructions {
		sb.WriteString(p.Format(in))
		sb.WriteByte('\n')
	}

	return sb.String()
}
