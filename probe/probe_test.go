// SPDX-License-Identifier: MIT

package probe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/probe"
)

var sample = probe.Target{XMin: 20, XMax: 30, YMin: -10, YMax: -5}

func TestSearchSample(t *testing.T) {
	h, n, err := probe.Search(sample)
	require.NoError(t, err)
	require.Equal(t, 45, h)
	require.Equal(t, 112, n)
}

// TestPositionMatchesSimulation checks the closed form step by step.
func TestPositionMatchesSimulation(t *testing.T) {
	for vx := -6; vx <= 6; vx++ {
		for vy := -4; vy <= 4; vy++ {
			x, y, dx, dy := 0, 0, vx, vy
			for n := 0; n < 15; n++ {
				gx, gy := probe.Position(vx, vy, n)
				require.Equal(t, x, gx, "x vx=%d vy=%d n=%d", vx, vy, n)
				require.Equal(t, y, gy, "y vx=%d vy=%d n=%d", vx, vy, n)
				x, y = x+dx, y+dy
				switch {
				case dx > 0:
					dx--
				case dx < 0:
					dx++
				}
				dy--
			}
		}
	}
}

func TestHits(t *testing.T) {
	require.True(t, probe.Hits(7, 2, sample))
	require.True(t, probe.Hits(6, 3, sample))
	require.True(t, probe.Hits(9, 0, sample))
	require.True(t, probe.Hits(6, 9, sample))
	require.False(t, probe.Hits(17, -4, sample))
}

// TestSearchMirrored flips the target to negative x.
func TestSearchMirrored(t *testing.T) {
	h, n, err := probe.Search(probe.Target{XMin: -30, XMax: -20, YMin: -10, YMax: -5})
	require.NoError(t, err)
	require.Equal(t, 45, h)
	require.Equal(t, 112, n)
}

func TestSearchRejectsTargetsAbove(t *testing.T) {
	_, _, err := probe.Search(probe.Target{XMin: 1, XMax: 3, YMin: -2, YMax: 0})
	require.ErrorIs(t, err, probe.ErrUnsupportedTarget)
	require.Equal(t, 0, probe.MaxHeight(-3))
	require.Equal(t, 10, probe.MaxHeight(4))
}
