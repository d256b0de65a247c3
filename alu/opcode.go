// SPDX-License-Identifier: MIT

package alu

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Opcode -linecomment
type Opcode uint8

const (
	Inp Opcode = iota // inp
	Add               // add
	Mul               // mul
	Div               // div
	Mod               // mod
	Eql               // eql
)

var opcodes = map[string]Opcode{
	"inp": Inp, "add": Add, "mul": Mul, "div": Div, "mod": Mod, "eql": Eql,
}
