// SPDX-License-Identifier: MIT

package snailfish_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/snailfish"
)

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"[1,2]",
		"[[1,2],3]",
		"[9,[8,7]]",
		"[[[[1,3],[5,3]],[[1,3],[8,7]]],[[[4,9],[6,9]],[[8,2],[7,3]]]]",
		"[[[[[12,8],1],2],3],4]",
		"7",
	} {
		n, err := snailfish.Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, s, n.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "[", "[1]", "[1,2", "[1,2]]", "[a,2]", "[1,[2,3,4]]", "[,]"} {
		_, err := snailfish.Parse(s)
		require.ErrorIs(t, err, snailfish.ErrSyntax, "%q", s)
	}
}

func TestParseDoesNotReduce(t *testing.T) {
	n := snailfish.MustParse("[[[[[9,8],1],2],3],4]")
	require.Equal(t, 5, n.Depth())
}

func TestExplode(t *testing.T) {
	cases := []struct{ in, want string }{
		{"[[[[[9,8],1],2],3],4]", "[[[[0,9],2],3],4]"},
		{"[7,[6,[5,[4,[3,2]]]]]", "[7,[6,[5,[7,0]]]]"},
		{"[[6,[5,[4,[3,2]]]],1]", "[[6,[5,[7,0]]],3]"},
		{"[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]", "[[3,[2,[8,0]]],[9,[5,[7,0]]]]"},
	}
	for _, tc := range cases {
		n := snailfish.MustParse(tc.in)
		n.Reduce()
		require.Equal(t, tc.want, n.String(), tc.in)
	}
}

func TestSplit(t *testing.T) {
	n := snailfish.MustParse("[11,[10,1]]")
	n.Reduce()
	require.Equal(t, "[[5,6],[[5,5],1]]", n.String())
}

func TestAdd(t *testing.T) {
	a := snailfish.MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]")
	b := snailfish.MustParse("[1,1]")
	sum := snailfish.Add(a, b)
	require.Equal(t, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", sum.String())
	require.Equal(t, "[[[[4,3],4],4],[7,[[8,4],9]]]", a.String(), "inputs stay untouched")
	require.Equal(t, uint64(1384), sum.Magnitude())
}

func TestAddIsNotCommutative(t *testing.T) {
	a := snailfish.MustParse("[1,1]")
	b := snailfish.MustParse("[2,2]")
	ab, ba := snailfish.Add(a, b), snailfish.Add(b, a)
	require.Equal(t, "[[1,1],[2,2]]", ab.String())
	require.Equal(t, "[[2,2],[1,1]]", ba.String())
	require.NotEqual(t, ab.String(), ba.String())
	require.Equal(t, uint64(35), ab.Magnitude())
	require.Equal(t, uint64(40), ba.Magnitude())
}

func TestSum(t *testing.T) {
	cases := []struct {
		upTo int
		want string
		mag  uint64
	}{
		{4, "[[[[1,1],[2,2]],[3,3]],[4,4]]", 445},
		{5, "[[[[3,0],[5,3]],[4,4]],[5,5]]", 791},
		{6, "[[[[5,0],[7,4]],[5,5]],[6,6]]", 1137},
	}
	for _, tc := range cases {
		var nums []*snailfish.Number
		for i := 1; i <= tc.upTo; i++ {
			nums = append(nums, snailfish.MustParse(fmt.Sprintf("[%d,%d]", i, i)))
		}
		got, err := snailfish.Sum(nums...)
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String())
		require.Equal(t, tc.mag, got.Magnitude())
	}

	_, err := snailfish.Sum()
	require.ErrorIs(t, err, snailfish.ErrEmpty)
}

func TestMagnitude(t *testing.T) {
	cases := map[string]uint64{
		"[[1,2],[[3,4],5]]":                                     143,
		"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]":                     1384,
		"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]": 3488,
		"9": 9,
	}
	for s, want := range cases {
		require.Equal(t, want, snailfish.MustParse(s).Magnitude(), s)
	}
}

func TestLargestPairwiseMagnitude(t *testing.T) {
	nums := []*snailfish.Number{snailfish.MustParse("[1,1]"), snailfish.MustParse("[2,2]")}
	// [[2,2],[1,1]] = 3·10 + 2·5
	require.Equal(t, uint64(40), snailfish.LargestPairwiseMagnitude(nums))
	require.Zero(t, snailfish.LargestPairwiseMagnitude(nums[:1]))
}

func TestCloneIsIndependent(t *testing.T) {
	n := snailfish.MustParse("[[[[[9,8],1],2],3],4]")
	c := n.Clone()
	c.Reduce()
	require.Equal(t, "[[[[[9,8],1],2],3],4]", n.String())
	require.Equal(t, "[[[[0,9],2],3],4]", c.String())
}

func randomNumber(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.Intn(3) == 0 {
		return fmt.Sprint(rng.Intn(10))
	}

	return "[" + randomNumber(rng, depth-1) + "," + randomNumber(rng, depth-1) + "]"
}

func TestAddReachesNormalForm(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	for i := 0; i < 200; i++ {
		a := snailfish.MustParse("[" + randomNumber(rng, 3) + "," + randomNumber(rng, 3) + "]")
		b := snailfish.MustParse("[" + randomNumber(rng, 3) + "," + randomNumber(rng, 3) + "]")
		sum := snailfish.Add(a, b)
		require.LessOrEqual(t, sum.Depth(), 4)
		require.LessOrEqual(t, sum.MaxLeaf(), 9)

		// normal form is a fixed point
		again := sum.Clone()
		again.Reduce()
		require.Equal(t, sum.String(), again.String())
	}
}
