// SPDX-License-Identifier: MIT

package bits

import (
	"errors"
	"fmt"
)

// DecodeHex expands a hexadecimal string into its bit sequence, four bits
// per digit, most significant first. Characters that are not hex digits are
// skipped.
func DecodeHex(s string) []bool {
	out := make([]bool, 0, 4*len(s))
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			continue
		}
		for shift := 3; shift >= 0; shift-- {
			out = append(out, v>>uint(shift)&1 == 1)
		}
	}

	return out
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// reader is a cursor over a bit slice.
type reader struct {
	bits []bool
	pos  int
}

func (r *reader) remaining() int { return len(r.bits) - r.pos }

// read consumes n ≤ 64 bits as an unsigned integer.
func (r *reader) read(n int) (uint64, error) {
	if r.remaining() < n {
		return 0, ErrTruncated
	}
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if r.bits[r.pos+i] {
			v |= 1
		}
	}
	r.pos += n

	return v, nil
}

// Parse decodes one packet from the start of bits and evaluates it.
// It returns the root packet and the number of bits consumed; trailing
// padding is left untouched.
//
// Stages:
//  1. Read the 6-bit header.
//  2. Literal: read nibbles until a cleared continuation flag.
//  3. Operator: read the length type and length, then parse children.
//  4. Evaluate the packet from its children's values.
//
// Complexity: O(len(bits)) time, O(depth) stack.
func Parse(bits []bool) (*Packet, int, error) {
	r := &reader{bits: bits}
	p, err := parsePacket(r)
	if err != nil {
		return nil, r.pos, err
	}

	return p, r.pos, nil
}

// ParseHex is DecodeHex followed by Parse.
func ParseHex(s string) (*Packet, error) {
	p, _, err := Parse(DecodeHex(s))

	return p, err
}

func parsePacket(r *reader) (*Packet, error) {
	version, err := r.read(versionWidth)
	if err != nil {
		return nil, fmt.Errorf("version at bit %d: %w", r.pos, err)
	}
	typ, err := r.read(typeWidth)
	if err != nil {
		return nil, fmt.Errorf("type at bit %d: %w", r.pos, err)
	}
	p := &Packet{Version: uint8(version), Type: Type(typ)}

	if p.Type == TypeLiteral {
		p.Value, err = parseLiteral(r)
		if err != nil {
			return nil, err
		}

		return p, nil
	}

	lt, err := r.read(1)
	if err != nil {
		return nil, fmt.Errorf("length type at bit %d: %w", r.pos, err)
	}
	p.LengthType = LengthType(lt)

	if p.LengthType == LengthBits {
		n, err := r.read(bitLengthWidth)
		if err != nil {
			return nil, fmt.Errorf("bit length at bit %d: %w", r.pos, err)
		}
		p.Length = int(n)
		if r.remaining() < p.Length {
			return nil, fmt.Errorf("payload of %d bits at bit %d: %w", p.Length, r.pos, ErrTruncated)
		}
		end := r.pos + p.Length
		sub := &reader{bits: r.bits[:end], pos: r.pos}
		for sub.pos < end {
			child, err := parsePacket(sub)
			if errors.Is(err, ErrTruncated) {
				// the remainder of the window is padding
				break
			}
			if err != nil {
				return nil, fmt.Errorf("child at bit %d: %w", sub.pos, err)
			}
			p.Children = append(p.Children, child)
		}
		r.pos = end
	} else {
		n, err := r.read(countLengthWidth)
		if err != nil {
			return nil, fmt.Errorf("child count at bit %d: %w", r.pos, err)
		}
		p.Length = int(n)
		p.Children = make([]*Packet, 0, p.Length)
		for i := 0; i < p.Length; i++ {
			child, err := parsePacket(r)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			p.Children = append(p.Children, child)
		}
	}

	if p.Value, err = evaluate(p.Type, p.Children); err != nil {
		return nil, err
	}

	return p, nil
}

func parseLiteral(r *reader) (uint64, error) {
	var v uint64
	for nibbles := 0; ; nibbles++ {
		group, err := r.read(nibbleWidth)
		if err != nil {
			return 0, fmt.Errorf("literal nibble %d: %w", nibbles, err)
		}
		if v>>60 != 0 {
			return 0, ErrOverflow
		}
		v = v<<4 | group&0xF
		if group&0x10 == 0 {
			return v, nil
		}
	}
}

func evaluate(t Type, children []*Packet) (uint64, error) {
	switch t {
	case TypeSum:
		var s uint64
		for _, c := range children {
			s += c.Value
		}

		return s, nil
	case TypeProduct:
		prod := uint64(1)
		for _, c := range children {
			prod *= c.Value
		}

		return prod, nil
	case TypeMinimum, TypeMaximum:
		if len(children) == 0 {
			return 0, fmt.Errorf("%s with no operands: %w", t, ErrOperandCount)
		}
		v := children[0].Value
		for _, c := range children[1:] {
			if (t == TypeMinimum && c.Value < v) || (t == TypeMaximum && c.Value > v) {
				v = c.Value
			}
		}

		return v, nil
	case TypeGreater, TypeLess, TypeEqual:
		if len(children) != 2 {
			return 0, fmt.Errorf("%s with %d operands: %w", t, len(children), ErrOperandCount)
		}
		a, b := children[0].Value, children[1].Value
		var ok bool
		switch t {
		case TypeGreater:
			ok = a > b
		case TypeLess:
			ok = a < b
		default:
			ok = a == b
		}
		if ok {
			return 1, nil
		}

		return 0, nil
	}

	return 0, nil
}
