// SPDX-License-Identifier: MIT

package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/numeric"
)

func ExampleWrap() {
	fmt.Println(numeric.Wrap(-1, 5), numeric.Wrap(7, 5), numeric.Mirror(0, 5))
	// Output: 4 2 4
}

func ExampleParseBase() {
	v, err := numeric.ParseBase([]int{1, 0, 1, 1}, 2)
	if err != nil {
		panic(err)
	}
	d, _ := numeric.Digits(v, 3)
	fmt.Println(v, d, numeric.Manhattan([]int{1, -2}, []int{-3, 4}))
	// Output: 11 [1 0 2] 10
}
