// SPDX-License-Identifier: MIT

// Package bits decodes BITS transmissions: a hexadecimal string carrying a
// recursive, bit-packed packet tree whose operator packets evaluate to
// unsigned 64-bit values.
//
// Grammar (MSB-first):
//
//	packet   := version(3) type(3) body
//	body     := literal | operator
//	literal  := nibble*            nibble = flag(1) data(4), last when flag=0
//	operator := length_type(1)
//	            ( 0 → bit_length(15) children filling exactly bit_length bits
//	            | 1 → count(11)      exactly count children )
//
// Evaluation (bottom-up, during Parse):
//
//	0 sum   1 product   2 minimum   3 maximum   4 literal
//	5 greater-than      6 less-than 7 equal-to  (1 or 0, exactly two children)
//
// Errors:
//
//   - ErrTruncated:    the stream ended inside a field.
//   - ErrOperandCount: a comparison without exactly two children, or a
//     minimum/maximum without children.
//   - ErrOverflow:     a literal wider than 64 bits.
//
// Inside a length-type-0 window a child that fails to parse ends the child
// list (the rest of the window is padding); anywhere else it is a hard error.
package bits
