// SPDX-License-Identifier: MIT

package diagnostic_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/diagnostic"
)

// ExampleReport_Filter eliminates codes by majority bit.
func ExampleReport_Filter() {
	r, err := diagnostic.New([]string{"110", "100", "011", "111"})
	if err != nil {
		panic(err)
	}
	fmt.Printf("gamma %03b, oxygen %03b, co2 %03b\n", r.Gamma(), r.OxygenRating(), r.ScrubberRating())
	// Output: gamma 111, oxygen 111, co2 011
}
