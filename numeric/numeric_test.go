// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/numeric"
)

func TestParseBinary(t *testing.T) {
	require.Equal(t, uint64(0), numeric.ParseBinary(nil))
	require.Equal(t, uint64(22), numeric.ParseBinary([]bool{true, false, true, true, false}))
	require.Equal(t, uint64(2021), numeric.ParseBinary(numeric.Bits(2021, 12)))
}

func TestParseBase(t *testing.T) {
	v, err := numeric.ParseBase([]int{1, 0, 1, 1, 0}, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(22), v)

	v, err = numeric.ParseBase([]int{15, 15}, 16)
	require.NoError(t, err)
	require.Equal(t, uint64(255), v)

	_, err = numeric.ParseBase([]int{2}, 2)
	require.ErrorIs(t, err, numeric.ErrDigit)
	_, err = numeric.ParseBase([]int{1}, 1)
	require.ErrorIs(t, err, numeric.ErrBase)

	digits, err := numeric.Digits(math.MaxUint64, 16)
	require.NoError(t, err)
	v, err = numeric.ParseBase(digits, 16)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)

	_, err = numeric.ParseBase(append(digits, 0), 16)
	require.ErrorIs(t, err, numeric.ErrOverflow)
}

func TestDigits_RoundTrip(t *testing.T) {
	for _, base := range []int{2, 3, 10, 16, 36} {
		for _, n := range []uint64{0, 1, 7, 255, 1 << 40, 987654321} {
			d, err := numeric.Digits(n, base)
			require.NoError(t, err)
			back, err := numeric.ParseBase(d, base)
			require.NoError(t, err)
			require.Equal(t, n, back, "base %d", base)
		}
	}
	d, _ := numeric.Digits(10, 2)
	require.Equal(t, []int{1, 0, 1, 0}, d)
}

func TestBits(t *testing.T) {
	require.Equal(t, []bool{false, true, true}, numeric.Bits(3, 3))
	require.Equal(t, []bool{true, true}, numeric.Bits(7, 2))
}

func TestIntegerHelpers(t *testing.T) {
	require.Equal(t, 4, numeric.Wrap(-1, 5))
	require.Equal(t, 0, numeric.Wrap(10, 5))
	require.Equal(t, int64(3), numeric.Wrap(int64(-7), 5))
	require.Equal(t, 4, numeric.Mirror(0, 5))
	require.Equal(t, uint(0), numeric.Mirror(uint(4), uint(5)))
	require.Equal(t, 7, numeric.Abs(-7))
	require.Equal(t, 6, numeric.Sum(1, 2, 3))
	require.Equal(t, 12, numeric.Manhattan([]int{1, -2, 3}, []int{-1, 2, -3}))
	require.Equal(t, -1, numeric.Sign(-9))
	require.Equal(t, 0, numeric.Sign(0))
}
