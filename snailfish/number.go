// SPDX-License-Identifier: MIT

package snailfish

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax indicates malformed bracket notation.
	ErrSyntax = errors.New("snailfish: syntax error")

	// ErrEmpty indicates a sum over no numbers.
	ErrEmpty = errors.New("snailfish: no numbers")
)

const (
	none int32 = -1

	// explodeDepth is the pair nesting at which a pair explodes.
	explodeDepth = 4
	// splitAt is the smallest leaf value that splits.
	splitAt = 10
)

type node struct {
	left, right, parent int32
	value               int
	leaf                bool
}

// Number is a snailfish number. The zero value is not usable; build one
// with Parse or Add.
type Number struct {
	nodes []node
	root  int32
}

func (n *Number) newLeaf(v int, parent int32) int32 {
	n.nodes = append(n.nodes, node{left: none, right: none, parent: parent, value: v, leaf: true})

	return int32(len(n.nodes) - 1)
}

func (n *Number) newPair(parent int32) int32 {
	n.nodes = append(n.nodes, node{left: none, right: none, parent: parent})

	return int32(len(n.nodes) - 1)
}

// Parse reads a number in bracket notation. Leaves may have several digits.
// The result is not reduced.
func Parse(s string) (*Number, error) {
	p := parser{src: strings.TrimSpace(s), num: &Number{}}
	root, err := p.value(none)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input")
	}
	p.num.root = root

	return p.num, nil
}

// MustParse is Parse that panics on error, for literals in tests and tables.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

type parser struct {
	src string
	pos int
	num *Number
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errorf("expected %q", c)
	}
	p.pos++

	return nil
}

func (p *parser) value(parent int32) (int32, error) {
	if p.pos >= len(p.src) {
		return none, p.errorf("unexpected end of input")
	}
	if p.src[p.pos] != '[' {
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		if start == p.pos {
			return none, p.errorf("expected digit or '['")
		}
		v, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return none, p.errorf("%v", err)
		}

		return p.num.newLeaf(v, parent), nil
	}

	p.pos++
	id := p.num.newPair(parent)
	left, err := p.value(id)
	if err != nil {
		return none, err
	}
	if err = p.expect(','); err != nil {
		return none, err
	}
	right, err := p.value(id)
	if err != nil {
		return none, err
	}
	if err = p.expect(']'); err != nil {
		return none, err
	}
	p.num.nodes[id].left, p.num.nodes[id].right = left, right

	return id, nil
}

// Clone returns a compact deep copy of n.
func (n *Number) Clone() *Number {
	out := &Number{nodes: make([]node, 0, len(n.nodes))}
	out.root = out.copyFrom(n, n.root, none)

	return out
}

func (n *Number) copyFrom(src *Number, id, parent int32) int32 {
	s := src.nodes[id]
	if s.leaf {
		return n.newLeaf(s.value, parent)
	}
	dst := n.newPair(parent)
	l := n.copyFrom(src, s.left, dst)
	r := n.copyFrom(src, s.right, dst)
	n.nodes[dst].left, n.nodes[dst].right = l, r

	return dst
}

// Add returns the reduced sum of a and b. Neither input is modified.
func Add(a, b *Number) *Number {
	out := &Number{nodes: make([]node, 0, len(a.nodes)+len(b.nodes)+1)}
	root := out.newPair(none)
	l := out.copyFrom(a, a.root, root)
	r := out.copyFrom(b, b.root, root)
	out.nodes[root].left, out.nodes[root].right = l, r
	out.root = root
	out.Reduce()

	return out
}

// Sum folds Add left to right over nums.
func Sum(nums ...*Number) (*Number, error) {
	if len(nums) == 0 {
		return nil, ErrEmpty
	}
	acc := nums[0].Clone()
	for _, x := range nums[1:] {
		acc = Add(acc, x)
	}

	return acc, nil
}

// LargestPairwiseMagnitude returns the largest magnitude of a+b over all
// ordered pairs of distinct numbers. It returns 0 for fewer than two inputs.
func LargestPairwiseMagnitude(nums []*Number) uint64 {
	var best uint64
	for i, a := range nums {
		for j, b := range nums {
			if i == j {
				continue
			}
			best = max(best, Add(a, b).Magnitude())
		}
	}

	return best
}

// Magnitude returns 3·mag(left) + 2·mag(right) for a pair, or the leaf value.
func (n *Number) Magnitude() uint64 {
	return n.magnitude(n.root)
}

func (n *Number) magnitude(id int32) uint64 {
	nd := n.nodes[id]
	if nd.leaf {
		return uint64(nd.value)
	}

	return 3*n.magnitude(nd.left) + 2*n.magnitude(nd.right)
}

// Depth returns the number of pairs on the deepest root-to-leaf path.
// A reduced number has depth at most 4.
func (n *Number) Depth() int {
	return n.depth(n.root)
}

func (n *Number) depth(id int32) int {
	nd := n.nodes[id]
	if nd.leaf {
		return 0
	}

	return 1 + max(n.depth(nd.left), n.depth(nd.right))
}

// MaxLeaf returns the largest leaf value.
func (n *Number) MaxLeaf() int {
	best := 0
	for _, id := range n.leaves() {
		best = max(best, n.nodes[id].value)
	}

	return best
}

// String renders n in bracket notation.
func (n *Number) String() string {
	var sb strings.Builder
	n.write(&sb, n.root)

	return sb.String()
}

func (n *Number) write(sb *strings.Builder, id int32) {
	nd := n.nodes[id]
	if nd.leaf {
		sb.WriteString(strconv.Itoa(nd.value))
		return
	}
	sb.WriteByte('[')
	n.write(sb, nd.left)
	sb.WriteByte(',')
	n.write(sb, nd.right)
	sb.WriteByte(']')
}
