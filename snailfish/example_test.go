// SPDX-License-Identifier: MIT

package snailfish_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/snailfish"
)

// ExampleAdd shows an addition that needs both explodes and splits.
func ExampleAdd() {
	a := snailfish.MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]")
	b := snailfish.MustParse("[1,1]")
	sum := snailfish.Add(a, b)
	fmt.Println(sum)
	fmt.Println(sum.Magnitude())

	// Output:
	// [[[[0,7],4],[[7,8],[6,0]]],[8,1]]
	// 1384
}
