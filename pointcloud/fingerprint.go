// SPDX-License-Identifier: MIT

package pointcloud

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/puzzlecore/numeric"
)

// Distance is the sorted per-axis absolute difference between points I and
// J (I < J) of one cloud.
type Distance struct {
	Delta []int
	I, J  int
}

// Fingerprint returns the Distance of every unordered point pair, sorted
// lexicographically by Delta and then by (I, J).
func Fingerprint(c Cloud) []Distance {
	out := make([]Distance, 0, len(c)*(len(c)-1)/2)
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			out = append(out, Distance{Delta: delta(c[i], c[j]), I: i, J: j})
		}
	}
	slices.SortFunc(out, func(a, b Distance) int {
		if r := slices.Compare(a.Delta, b.Delta); r != 0 {
			return r
		}
		if r := cmp.Compare(a.I, b.I); r != 0 {
			return r
		}

		return cmp.Compare(a.J, b.J)
	})

	return out
}

func delta(p, q Point) []int {
	d := make([]int, len(p))
	for k := range p {
		d[k] = numeric.Abs(p[k] - q[k])
	}
	slices.Sort(d)

	return d
}

// Pair names a candidate correspondence: point A of the first cloud may be
// the same physical point as point B of the second.
type Pair struct {
	A, B int
}

// SharedDistances matches the fingerprints of a and b. It returns the
// number of matching distance pairs and the candidate point correspondences
// they imply, deduplicated and sorted.
func SharedDistances(a, b Cloud) (int, []Pair) {
	index := make(map[uint64][]Distance)
	for _, d := range Fingerprint(a) {
		h := hashDelta(d.Delta)
		index[h] = append(index[h], d)
	}

	matches := 0
	seen := make(map[Pair]bool)
	var pairs []Pair
	add := func(p Pair) {
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	for _, db := range Fingerprint(b) {
		for _, da := range index[hashDelta(db.Delta)] {
			if !slices.Equal(da.Delta, db.Delta) {
				continue
			}
			matches++
			add(Pair{da.I, db.I})
			add(Pair{da.I, db.J})
			add(Pair{da.J, db.I})
			add(Pair{da.J, db.J})
		}
	}
	slices.SortFunc(pairs, func(x, y Pair) int {
		if r := cmp.Compare(x.A, y.A); r != 0 {
			return r
		}

		return cmp.Compare(x.B, y.B)
	})

	return matches, pairs
}

func hashDelta(d []int) uint64 {
	h := xxhash.New()
	hashInts(h, d)

	return h.Sum64()
}
