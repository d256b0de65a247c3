// SPDX-License-Identifier: MIT

package snailfish

// Reduce applies explode and split actions in place until n is in normal
// form. Explodes always take priority over splits.
func (n *Number) Reduce() {
	for n.explode() || n.split() {
	}
}

// leaves returns leaf ids in left-to-right order.
func (n *Number) leaves() []int32 {
	out := make([]int32, 0, len(n.nodes)/2+1)
	stack := []int32{n.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := n.nodes[id]
		if nd.leaf {
			out = append(out, id)
			continue
		}
		stack = append(stack, nd.right, nd.left)
	}

	return out
}

// explodable returns the leftmost pair at depth ≥ explodeDepth whose
// children are both leaves, or none.
func (n *Number) explodable() int32 {
	type frame struct {
		id    int32
		depth int
	}
	stack := []frame{{n.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := n.nodes[f.id]
		if nd.leaf {
			continue
		}
		if f.depth >= explodeDepth && n.nodes[nd.left].leaf && n.nodes[nd.right].leaf {
			return f.id
		}
		stack = append(stack, frame{nd.right, f.depth + 1}, frame{nd.left, f.depth + 1})
	}

	return none
}

func (n *Number) explode() bool {
	pair := n.explodable()
	if pair == none {
		return false
	}
	l, r := n.nodes[pair].left, n.nodes[pair].right

	order := n.leaves()
	for i, id := range order {
		if id != l {
			continue
		}
		if i > 0 {
			n.nodes[order[i-1]].value += n.nodes[l].value
		}
		if i+2 < len(order) {
			n.nodes[order[i+2]].value += n.nodes[r].value
		}
		break
	}

	p := &n.nodes[pair]
	p.leaf, p.value, p.left, p.right = true, 0, none, none

	return true
}

func (n *Number) split() bool {
	for _, id := range n.leaves() {
		v := n.nodes[id].value
		if v < splitAt {
			continue
		}
		l := n.newLeaf(v/2, id)
		r := n.newLeaf(v-v/2, id)
		p := &n.nodes[id]
		p.leaf, p.value, p.left, p.right = false, 0, l, r

		return true
	}

	return false
}
