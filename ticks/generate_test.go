package ticks_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cascade/ticks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_NiceScenario replays the canonical [0, 97] × 5 nice walk:
// rawStep 19.4 rounds up to 20, the last tick extends to 100.
func TestGenerate_NiceScenario(t *testing.T) {
	out, err := ticks.Generate(0, 97, ticks.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, out)
}

// TestGenerate_ExplicitStep verifies that Step > 0 is used verbatim and
// floor-aligns the start below lo.
func TestGenerate_ExplicitStep(t *testing.T) {
	opts := ticks.DefaultOptions()
	opts.Step = 25

	out, err := ticks.Generate(10, 90, opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, out)
}

// TestGenerate_NiceMantissaLadder verifies the {1,2,5,10}·10^k rounding
// across magnitudes.
func TestGenerate_NiceMantissaLadder(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi float64
		count  int
		first  float64
		step   float64
	}{
		{"raw 0.97 rounds to 1", 0, 4.85, 5, 0, 1},
		{"raw 1.4 rounds to 2", 0, 7, 5, 0, 2},
		{"raw 30 rounds to 50", 0, 150, 5, 0, 50},
		{"raw 97 rounds to 100", 0, 485, 5, 0, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := ticks.DefaultOptions()
			opts.Count = tc.count

			out, err := ticks.Generate(tc.lo, tc.hi, opts)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(out), 2)
			assert.Equal(t, tc.first, out[0])
			assert.InDelta(t, tc.step, out[1]-out[0], 1e-9)
		})
	}
}

// TestGenerate_CoverageAndAscending verifies the binding invariants over
// a spread of domains: strictly ascending, first ≤ lo, last ≥ hi.
func TestGenerate_CoverageAndAscending(t *testing.T) {
	domains := [][2]float64{
		{0, 97}, {-45, 13}, {3.2, 3.9}, {-1000, -200}, {0.001, 0.097},
	}
	for _, d := range domains {
		out, err := ticks.Generate(d[0], d[1], ticks.DefaultOptions())
		require.NoError(t, err, "domain %v", d)
		require.NotEmpty(t, out)

		assert.LessOrEqual(t, out[0], d[0], "first tick covers lo")
		assert.GreaterOrEqual(t, out[len(out)-1], d[1], "last tick covers hi")
		for i := 1; i < len(out); i++ {
			assert.Greater(t, out[i], out[i-1], "strictly ascending at %d", i)
		}
	}
}

// TestGenerate_DegenerateDomain verifies hi == lo yields a single tick.
func TestGenerate_DegenerateDomain(t *testing.T) {
	out, err := ticks.Generate(7, 7, ticks.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, out)
}

// TestGenerate_IncludeZero verifies the zero tick is present for domains
// spanning zero.
func TestGenerate_IncludeZero(t *testing.T) {
	opts := ticks.DefaultOptions()
	opts.IncludeZero = true

	out, err := ticks.Generate(-1, 4, opts)
	require.NoError(t, err)
	assert.Contains(t, out, 0.0)
}

// TestGenerate_MergeThreshold verifies that near-coincident ticks
// collapse into the rounder value: a unit walk over [0,10] merged at 2.5
// keeps multiples of ten over their neighbors.
func TestGenerate_MergeThreshold(t *testing.T) {
	opts := ticks.DefaultOptions()
	opts.Step = 1
	opts.MergeThreshold = 2.5

	out, err := ticks.Generate(0, 10, opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 10}, out, "0 and 10 win their windows; ties keep the earlier tick")
}

// TestGenerate_ConfigErrors verifies the fail-fast sentinels.
func TestGenerate_ConfigErrors(t *testing.T) {
	opts := ticks.DefaultOptions()

	_, err := ticks.Generate(5, 1, opts)
	assert.ErrorIs(t, err, ticks.ErrBadDomain, "lo > hi")

	_, err = ticks.Generate(math.NaN(), 1, opts)
	assert.ErrorIs(t, err, ticks.ErrBadDomain, "NaN bound")

	_, err = ticks.Generate(0, math.Inf(1), opts)
	assert.ErrorIs(t, err, ticks.ErrBadDomain, "infinite bound")

	opts.Step = -1
	_, err = ticks.Generate(0, 10, opts)
	assert.ErrorIs(t, err, ticks.ErrBadStep)

	opts.Step = 0
	opts.Count = -2
	_, err = ticks.Generate(0, 10, opts)
	assert.ErrorIs(t, err, ticks.ErrBadCount)
}

// TestGenerate_ZeroCountResolvesToDefault verifies Count=0 with Step=0
// falls back to the documented default count.
func TestGenerate_ZeroCountResolvesToDefault(t *testing.T) {
	out, err := ticks.Generate(0, 97, ticks.Options{Nice: true})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, out)
}
