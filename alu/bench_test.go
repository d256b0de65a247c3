// SPDX-License-Identifier: MIT

package alu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlecore/alu"
)

func BenchmarkLargest(b *testing.B) {
	p, err := alu.Parse(monad(rand.New(rand.NewSource(1)), "((()(()()())))", []int{1, -3, 0, 8, -8, 2, -1}))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alu.Largest(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	p, err := alu.Parse(monad(rand.New(rand.NewSource(1)), "((()(()()())))", []int{1, -3, 0, 8, -8, 2, -1}))
	if err != nil {
		b.Fatal(err)
	}
	m := alu.NewMachine(p)
	in := []int{9, 7, 8, 9, 9, 9, 6, 9, 9, 1, 9, 1, 9, 8}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reset()
		if err := m.Run(in); err != nil {
			b.Fatal(err)
		}
	}
}
