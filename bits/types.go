// SPDX-License-Identifier: MIT

package bits

import (
	"errors"
)

// Sentinel errors for BITS decoding.
var (
	// ErrTruncated indicates the bit stream ended inside a field.
	ErrTruncated = errors.New("bits: bit stream truncated")

	// ErrOperandCount indicates an operator with an invalid number of children.
	ErrOperandCount = errors.New("bits: invalid operand count")

	// ErrOverflow indicates a literal that does not fit in 64 bits.
	ErrOverflow = errors.New("bits: literal overflows uint64")
)

// Type is the 3-bit packet type id.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Type -trimprefix=Type
type Type uint8

const (
	TypeSum     Type = iota // value = Σ children
	TypeProduct             // value = ∏ children
	TypeMinimum             // value = min children
	TypeMaximum             // value = max children
	TypeLiteral             // value carried in nibbles
	TypeGreater             // 1 if child[0] > child[1]
	TypeLess                // 1 if child[0] < child[1]
	TypeEqual               // 1 if child[0] == child[1]
)

// LengthType selects how an operator packet delimits its children.
type LengthType uint8

const (
	// LengthBits: a 15-bit count of payload bits follows.
	LengthBits LengthType = 0
	// LengthCount: an 11-bit count of child packets follows.
	LengthCount LengthType = 1
)

// Field widths of the wire format.
const (
	versionWidth     = 3
	typeWidth        = 3
	headerWidth      = versionWidth + typeWidth
	nibbleWidth      = 5
	bitLengthWidth   = 15
	countLengthWidth = 11
)

// Packet is one decoded node of a transmission.
// Literal packets have no Children; operator packets carry LengthType and
// Length (payload bits or child count, as read from the stream).
type Packet struct {
	Version    uint8
	Type       Type
	LengthType LengthType
	Length     int
	Children   []*Packet
	Value      uint64
}

// IsLiteral reports whether p carries a literal value.
func (p *Packet) IsLiteral() bool { return p.Type == TypeLiteral }
