// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/matrix"
)

// ExampleMatrix_Neighbours shows coordinate mapping and neighbour lookup
// on a 3×2 grid stored in row-major order.
func ExampleMatrix_Neighbours() {
	m, _ := matrix.FromSlice([]rune("abcdef"), 3, 2)

	idx, _ := m.Index(1, 1)
	v, _ := m.AtIndex(idx)
	fmt.Printf("(1,1) -> %d %c\n", idx, v)

	for _, n := range m.Neighbours(idx, false) {
		c, _ := m.Coords(n)
		r, _ := m.AtIndex(n)
		fmt.Printf("%v %c\n", c, r)
	}

	// Output:
	// (1,1) -> 4 e
	// [1 0] b
	// [0 1] d
	// [2 1] f
}
