// SPDX-License-Identifier: MIT

// Package alu interprets programs for a four-register integer ALU and solves
// the model-number validation programs written for it.
//
// What:
//
//   - Parse turns program text (one instruction per line: inp, add, mul,
//     div, mod, eql) into a Program. Registers default to w, x, y and z;
//     WithRegisters names a different set.
//   - Machine executes a Program against a list of inputs.
//   - Analyze checks that a Program has the MONAD shape: a sequence of
//     18-instruction blocks that each read one digit and push it to, or
//     pop it from, a base-26 stack kept in z. It pairs every popping block
//     with the block that pushed, yielding one linear constraint
//     digit[pop] = digit[push] + Delta per pair.
//   - Largest and Smallest solve the constraints directly and confirm the
//     answer by running the program.
//
// Complexity:
//
//   - Parse, Run: O(n) in program length.
//   - Analyze:    O(n).
//   - Largest, Smallest: O(n); no search over the 9^14 input space.
//
// Errors:
//
//   - ErrSyntax, ErrUnknownOpcode, ErrUnknownRegister from Parse.
//   - ErrDivideByZero (div by 0, mod with a < 0 or b <= 0) and
//     ErrInputExhausted from Run.
//   - ErrUnsupportedProgram when a program does not have the MONAD shape,
//     ErrNoSolution when it has the shape but accepts no input.
package alu
