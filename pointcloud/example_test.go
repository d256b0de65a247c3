// SPDX-License-Identifier: MIT

package pointcloud_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/pointcloud"
)

// ExampleMerge aligns a square seen from a second scanner that is shifted
// and turned a quarter turn.
func ExampleMerge() {
	a := pointcloud.Cloud{{0, 0}, {4, 0}, {4, 1}, {0, 3}}
	b := a.Apply(pointcloud.Rotate(1, 0, 1), pointcloud.Translate(pointcloud.Point{5, 5}))

	res, ok, err := pointcloud.Merge(a, b, pointcloud.WithThreshold(4))
	if err != nil || !ok {
		fmt.Println("no overlap")
		return
	}
	fmt.Println(res.Shared, len(res.Cloud))
	fmt.Println("scanner b at", res.Offset)

	// Output:
	// 4 4
	// scanner b at (5,-5)
}
