// SPDX-License-Identifier: MIT

package bits_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlecore/bits"
)

// BenchmarkParse measures decoding of a random tree of depth 6.
func BenchmarkParse(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	raw, err := bits.Encode(randomTree(rng, 6))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := bits.Parse(raw); err != nil {
			b.Fatal(err)
		}
	}
}
