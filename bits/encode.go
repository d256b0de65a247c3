// SPDX-License-Identifier: MIT

package bits

import (
	"fmt"
	"strings"
)

// Encode serialises p into its bit sequence. Operators are written with
// their LengthType; Length is recomputed from the children, so a tree built
// by hand needs only Version, Type, LengthType, Children and (for literals)
// Value. Fails with ErrOperandCount when a length does not fit its field.
func Encode(p *Packet) ([]bool, error) {
	var w writer
	if err := encodePacket(&w, p); err != nil {
		return nil, err
	}

	return w.bits, nil
}

// EncodeHex is Encode zero-padded to a whole number of hex digits.
func EncodeHex(p *Packet) (string, error) {
	bs, err := Encode(p)
	if err != nil {
		return "", err
	}
	for len(bs)%4 != 0 {
		bs = append(bs, false)
	}
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(bs); i += 4 {
		var v byte
		for k := 0; k < 4; k++ {
			v <<= 1
			if bs[i+k] {
				v |= 1
			}
		}
		sb.WriteByte(digits[v])
	}

	return sb.String(), nil
}

type writer struct {
	bits []bool
}

func (w *writer) write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, v>>uint(i)&1 == 1)
	}
}

func encodePacket(w *writer, p *Packet) error {
	w.write(uint64(p.Version), versionWidth)
	w.write(uint64(p.Type), typeWidth)

	if p.IsLiteral() {
		var groups []uint64
		v := p.Value
		for {
			groups = append(groups, v&0xF)
			v >>= 4
			if v == 0 {
				break
			}
		}
		for i := len(groups) - 1; i >= 0; i-- {
			flag := uint64(0)
			if i > 0 {
				flag = 0x10
			}
			w.write(flag|groups[i], nibbleWidth)
		}

		return nil
	}

	w.write(uint64(p.LengthType), 1)
	if p.LengthType == LengthCount {
		if len(p.Children) >= 1<<countLengthWidth {
			return fmt.Errorf("%d children: %w", len(p.Children), ErrOperandCount)
		}
		w.write(uint64(len(p.Children)), countLengthWidth)
		for _, c := range p.Children {
			if err := encodePacket(w, c); err != nil {
				return err
			}
		}

		return nil
	}

	var body writer
	for _, c := range p.Children {
		if err := encodePacket(&body, c); err != nil {
			return err
		}
	}
	if len(body.bits) >= 1<<bitLengthWidth {
		return fmt.Errorf("%d payload bits: %w", len(body.bits), ErrOperandCount)
	}
	w.write(uint64(len(body.bits)), bitLengthWidth)
	w.bits = append(w.bits, body.bits...)

	return nil
}
