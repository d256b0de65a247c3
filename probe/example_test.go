// SPDX-License-Identifier: MIT

package probe_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/probe"
)

// ExampleSearch scans every launch velocity for the sample target.
func ExampleSearch() {
	t := probe.Target{XMin: 20, XMax: 30, YMin: -10, YMax: -5}
	best, count, err := probe.Search(t)
	if err != nil {
		panic(err)
	}
	fmt.Println(best, count)
	// Output: 45 112
}
