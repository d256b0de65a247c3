// SPDX-License-Identifier: MIT

package heightgrid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlecore/heightgrid"
)

// BenchmarkDistancesFrom measures a full relaxation of a random 200×200
// height map with gentle slopes.
func BenchmarkDistancesFrom(b *testing.B) {
	rng := rand.New(rand.NewSource(12))
	const n = 200
	heights := make([][]int, n)
	for y := range heights {
		heights[y] = make([]int, n)
		for x := range heights[y] {
			heights[y][x] = 1 + (x+y)/16 + rng.Intn(2)
		}
	}
	g, err := heightgrid.New(heights, heightgrid.Coord{}, heightgrid.Coord{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.DistancesFrom(g.Start); err != nil {
			b.Fatal(err)
		}
	}
}
