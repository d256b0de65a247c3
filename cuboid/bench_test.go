// SPDX-License-Identifier: MIT

package cuboid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlecore/cuboid"
)

// BenchmarkApply measures 400 random on/off steps in a 3-D region.
// Complexity: O(steps · |S| · N).
func BenchmarkApply(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	steps := make([]cuboid.Step, 400)
	for i := range steps {
		var lo, hi cuboid.Point = make(cuboid.Point, 3), make(cuboid.Point, 3)
		for k := 0; k < 3; k++ {
			lo[k] = rng.Int63n(1000) - 500
			hi[k] = lo[k] + rng.Int63n(300)
		}
		c, _ := cuboid.New(lo, hi)
		steps[i] = cuboid.Step{On: rng.Intn(4) > 0, Cuboid: c}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sp, _ := cuboid.NewSpace(3)
		if err := sp.Apply(steps...); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
		_ = sp.Volume()
	}
}
