// SPDX-License-Identifier: MIT

package cuboid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/puzzlecore/cuboid"
)

// box is a test shorthand for a 3-D cuboid from inclusive ranges.
func box(x0, x1, y0, y1, z0, z1 int64) cuboid.Cuboid {
	c, err := cuboid.FromRanges([2]int64{x0, x1}, [2]int64{y0, y1}, [2]int64{z0, z1})
	if err != nil {
		panic(err)
	}
	return c
}

// SpaceSuite exercises Space composition under various scenarios.
type SpaceSuite struct {
	suite.Suite
	space *cuboid.Space
}

func (s *SpaceSuite) SetupTest() {
	sp, err := cuboid.NewSpace(3)
	require.NoError(s.T(), err)
	s.space = sp
}

// TestAddIdempotent verifies add(C); add(C) covers exactly C.
func (s *SpaceSuite) TestAddIdempotent() {
	c := box(-3, 4, 0, 2, 5, 5)
	require.NoError(s.T(), s.space.Add(c))
	require.NoError(s.T(), s.space.Add(c))
	require.Equal(s.T(), c.Volume(), s.space.Volume())
	require.Equal(s.T(), 1, s.space.Len())
}

// TestAddThenSubtract verifies add(A); subtract(A) leaves nothing.
func (s *SpaceSuite) TestAddThenSubtract() {
	c := box(1, 10, 1, 10, 1, 10)
	require.NoError(s.T(), s.space.Add(c))
	require.NoError(s.T(), s.space.Subtract(c))
	require.Zero(s.T(), s.space.Volume())
	require.Zero(s.T(), s.space.Len())
}

// TestSmallReboot runs the four-step reboot sample (39 cells on).
func (s *SpaceSuite) TestSmallReboot() {
	err := s.space.Apply(
		cuboid.Step{On: true, Cuboid: box(10, 12, 10, 12, 10, 12)},
		cuboid.Step{On: true, Cuboid: box(11, 13, 11, 13, 11, 13)},
		cuboid.Step{On: false, Cuboid: box(9, 11, 9, 11, 9, 11)},
		cuboid.Step{On: true, Cuboid: box(10, 10, 10, 10, 10, 10)},
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint64(39), s.space.Volume())
}

// TestFragmentCount verifies that carving a hole out of the centre yields 2N slabs.
func (s *SpaceSuite) TestFragmentCount() {
	require.NoError(s.T(), s.space.Add(box(0, 4, 0, 4, 0, 4)))
	require.NoError(s.T(), s.space.Subtract(box(2, 2, 2, 2, 2, 2)))
	require.Equal(s.T(), 6, s.space.Len())
	require.Equal(s.T(), uint64(124), s.space.Volume())

	// A subtraction covering a whole face edge yields fewer fragments.
	sp, _ := cuboid.NewSpace(3)
	require.NoError(s.T(), sp.Add(box(0, 4, 0, 4, 0, 4)))
	require.NoError(s.T(), sp.Subtract(box(-10, 10, -10, 10, 3, 10)))
	require.Equal(s.T(), 1, sp.Len())
	require.Equal(s.T(), uint64(75), sp.Volume())
}

// TestErrors covers dimensionality and ordering violations.
func (s *SpaceSuite) TestErrors() {
	flat, err := cuboid.FromRanges([2]int64{0, 1}, [2]int64{0, 1})
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), s.space.Add(flat), cuboid.ErrDimensionMismatch)

	inverted := cuboid.Cuboid{Min: cuboid.Point{1, 0, 0}, Max: cuboid.Point{0, 0, 0}}
	require.ErrorIs(s.T(), s.space.Subtract(inverted), cuboid.ErrInverted)

	err = s.space.Apply(cuboid.Step{On: true, Cuboid: flat})
	require.ErrorIs(s.T(), err, cuboid.ErrDimensionMismatch)

	_, err = cuboid.NewSpace(0)
	require.ErrorIs(s.T(), err, cuboid.ErrEmptyCuboid)
	_, err = cuboid.FromRanges([2]int64{3, 1})
	require.ErrorIs(s.T(), err, cuboid.ErrInverted)
	_, err = cuboid.New(cuboid.Point{1}, cuboid.Point{1, 2})
	require.ErrorIs(s.T(), err, cuboid.ErrDimensionMismatch)
}

func TestSpaceSuite(t *testing.T) {
	suite.Run(t, new(SpaceSuite))
}

// TestNew_OrdersCorners checks that New normalises opposite corners.
func TestNew_OrdersCorners(t *testing.T) {
	c, err := cuboid.New(cuboid.Point{5, -1}, cuboid.Point{2, 3})
	require.NoError(t, err)
	require.Equal(t, cuboid.Point{2, -1}, c.Min)
	require.Equal(t, cuboid.Point{5, 3}, c.Max)
	require.Equal(t, uint64(20), c.Volume())
	require.Equal(t, "x=2..5,y=-1..3", c.String())
}

// TestVolume_WideAxis spans more than math.MaxInt64 cells on one axis.
func TestVolume_WideAxis(t *testing.T) {
	c, err := cuboid.FromRanges([2]int64{-(1 << 62), 1 << 62})
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63+1, c.Volume())

	c, err = cuboid.FromRanges([2]int64{math.MinInt64 + 1, math.MaxInt64}, [2]int64{3, 3})
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), c.Volume())
}

// TestIntersect covers overlapping, touching and disjoint boxes.
func TestIntersect(t *testing.T) {
	a := box(0, 5, 0, 5, 0, 5)

	got, ok := a.Intersect(box(3, 8, -2, 1, 5, 9))
	require.True(t, ok)
	require.Equal(t, box(3, 5, 0, 1, 5, 5), got)

	_, ok = a.Intersect(box(6, 8, 0, 5, 0, 5))
	require.False(t, ok)
}

// TestInvariants_Random applies random steps in a small 3-D box and checks,
// after every step, that stored cuboids are pairwise disjoint and that the
// volume matches a brute-force lattice enumeration.
func TestInvariants_Random(t *testing.T) {
	const lim = 6
	rng := rand.New(rand.NewSource(22))
	sp, err := cuboid.NewSpace(3)
	require.NoError(t, err)

	var grid [lim][lim][lim]bool
	for step := 0; step < 60; step++ {
		var lo, hi [3]int64
		for k := 0; k < 3; k++ {
			a, b := rng.Int63n(lim), rng.Int63n(lim)
			lo[k], hi[k] = min(a, b), max(a, b)
		}
		c := box(lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
		on := rng.Intn(3) > 0
		require.NoError(t, sp.Apply(cuboid.Step{On: on, Cuboid: c}))

		for x := lo[0]; x <= hi[0]; x++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for z := lo[2]; z <= hi[2]; z++ {
					grid[x][y][z] = on
				}
			}
		}

		var want uint64
		for x := 0; x < lim; x++ {
			for y := 0; y < lim; y++ {
				for z := 0; z < lim; z++ {
					if grid[x][y][z] {
						want++
					}
				}
			}
		}
		require.Equal(t, want, sp.Volume(), "step %d", step)

		cs := sp.Cuboids()
		for i := range cs {
			for j := i + 1; j < len(cs); j++ {
				_, overlap := cs[i].Intersect(cs[j])
				require.False(t, overlap, "step %d: %v overlaps %v", step, cs[i], cs[j])
			}
		}
	}
}

// rebootSteps is the larger reboot sample; its first twenty steps lie inside
// the -50..50 initialization region, the last two far outside it.
var rebootSteps = []cuboid.Step{
	{On: true, Cuboid: box(-20, 26, -36, 17, -47, 7)},
	{On: true, Cuboid: box(-20, 33, -21, 23, -26, 28)},
	{On: true, Cuboid: box(-22, 28, -29, 23, -38, 16)},
	{On: true, Cuboid: box(-46, 7, -6, 46, -50, -1)},
	{On: true, Cuboid: box(-49, 1, -3, 46, -24, 28)},
	{On: true, Cuboid: box(2, 47, -22, 22, -23, 27)},
	{On: true, Cuboid: box(-27, 23, -28, 26, -21, 29)},
	{On: true, Cuboid: box(-39, 5, -6, 47, -3, 44)},
	{On: true, Cuboid: box(-30, 21, -8, 43, -13, 34)},
	{On: true, Cuboid: box(-22, 26, -27, 20, -29, 19)},
	{On: false, Cuboid: box(-48, -32, 26, 41, -47, -37)},
	{On: true, Cuboid: box(-12, 35, 6, 50, -50, -2)},
	{On: false, Cuboid: box(-48, -32, -32, -16, -15, -5)},
	{On: true, Cuboid: box(-18, 26, -33, 15, -7, 46)},
	{On: false, Cuboid: box(-40, -22, -38, -28, 23, 41)},
	{On: true, Cuboid: box(-16, 35, -41, 10, -47, 6)},
	{On: false, Cuboid: box(-32, -23, 11, 30, -14, 3)},
	{On: true, Cuboid: box(-49, -5, -3, 45, -29, 18)},
	{On: false, Cuboid: box(18, 30, -20, -8, -3, 13)},
	{On: true, Cuboid: box(-41, 9, -7, 43, -33, 15)},
	{On: true, Cuboid: box(-54112, -39298, -85059, -49293, -27449, 7877)},
	{On: true, Cuboid: box(967, 23432, 45373, 81175, 27513, 53682)},
}

// TestReboot_InitializationRegion checks the 590,784-cell answer, both by
// running only the first twenty steps and by clipping the full run.
func TestReboot_InitializationRegion(t *testing.T) {
	sp, _ := cuboid.NewSpace(3)
	require.NoError(t, sp.Apply(rebootSteps[:20]...))
	require.Equal(t, uint64(590784), sp.Volume())

	full, _ := cuboid.NewSpace(3)
	require.NoError(t, full.Apply(rebootSteps...))
	clipped, err := full.Clip(box(-50, 50, -50, 50, -50, 50))
	require.NoError(t, err)
	require.Equal(t, uint64(590784), clipped.Volume())
	require.Greater(t, full.Volume(), clipped.Volume())
}
