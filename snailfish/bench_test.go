// SPDX-License-Identifier: MIT

package snailfish_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlecore/snailfish"
)

// BenchmarkSum measures folding 100 random reduced numbers.
func BenchmarkSum(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	nums := make([]*snailfish.Number, 100)
	for i := range nums {
		n := snailfish.MustParse("[" + randomNumber(rng, 3) + "," + randomNumber(rng, 3) + "]")
		n.Reduce()
		nums[i] = n
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := snailfish.Sum(nums...); err != nil {
			b.Fatal(err)
		}
	}
}
