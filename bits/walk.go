// SPDX-License-Identifier: MIT

package bits

import (
	"strconv"
	"strings"
)

// Walk visits p and its descendants in pre-order. Returning false from fn
// skips the children of the current packet.
func Walk(p *Packet, fn func(p *Packet, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p *Packet, depth int, fn func(*Packet, int) bool) {
	if p == nil || !fn(p, depth) {
		return
	}
	for _, c := range p.Children {
		walk(c, depth+1, fn)
	}
}

// Fold reduces the tree bottom-up: leaf computes the accumulator for a
// literal, node combines an operator with its children's accumulators.
func Fold[A any](p *Packet, leaf func(*Packet) A, node func(*Packet, []A) A) A {
	if p.IsLiteral() {
		return leaf(p)
	}
	acc := make([]A, len(p.Children))
	for i, c := range p.Children {
		acc[i] = Fold(c, leaf, node)
	}

	return node(p, acc)
}

// VersionSum returns the sum of the version fields of p and all descendants.
func VersionSum(p *Packet) uint64 {
	var s uint64
	Walk(p, func(q *Packet, _ int) bool {
		s += uint64(q.Version)
		return true
	})

	return s
}

// Count returns the number of packets in the tree.
func Count(p *Packet) int {
	n := 0
	Walk(p, func(*Packet, int) bool {
		n++
		return true
	})

	return n
}

var exprSymbol = [...]string{
	TypeSum:     "+",
	TypeProduct: "*",
	TypeMinimum: "min",
	TypeMaximum: "max",
	TypeGreater: ">",
	TypeLess:    "<",
	TypeEqual:   "==",
}

// Expr renders the tree as a prefix expression, e.g. "(+ 1 (* 2 3))".
func Expr(p *Packet) string {
	return Fold(p,
		func(l *Packet) string { return strconv.FormatUint(l.Value, 10) },
		func(op *Packet, args []string) string {
			var sb strings.Builder
			sb.WriteByte('(')
			sb.WriteString(exprSymbol[op.Type])
			for _, a := range args {
				sb.WriteByte(' ')
				sb.WriteString(a)
			}
			sb.WriteByte(')')

			return sb.String()
		})
}
