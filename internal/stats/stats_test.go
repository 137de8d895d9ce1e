package stats_test

import (
	"testing"

	"github.com/katalvlaran/cascade/internal/stats"
	"github.com/stretchr/testify/assert"
)

// TestMean covers the empty and regular cases.
func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.Equal(t, 2.5, stats.Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, -3.0, stats.Mean([]float64{-3}))
}

// TestPercentile_LinearInterpolation pins the p·(n−1) rule on a known
// sample, including the exact-rank and interpolated cases.
func TestPercentile_LinearInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 100}

	assert.Equal(t, 1.0, stats.Percentile(xs, 0))
	assert.Equal(t, 2.0, stats.Percentile(xs, 0.25), "rank 1, exact")
	assert.Equal(t, 3.0, stats.Percentile(xs, 0.5), "median")
	assert.Equal(t, 4.0, stats.Percentile(xs, 0.75))
	assert.Equal(t, 100.0, stats.Percentile(xs, 1))

	// Interpolated: rank 0.375·4 = 1.5 → halfway between 2 and 3.
	assert.InDelta(t, 2.5, stats.Percentile(xs, 0.375), 1e-9)
}

// TestPercentile_ClampsAndSortsCopy verifies p clamping and that the
// input is never reordered.
func TestPercentile_ClampsAndSortsCopy(t *testing.T) {
	xs := []float64{3, 1, 2}

	assert.Equal(t, 1.0, stats.Percentile(xs, -5))
	assert.Equal(t, 3.0, stats.Percentile(xs, 5))
	assert.Equal(t, []float64{3, 1, 2}, xs, "input untouched")
}

// TestQuartiles matches the two-percentile equivalent.
func TestQuartiles(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 100}

	q1, q3 := stats.Quartiles(xs)
	assert.Equal(t, 2.0, q1)
	assert.Equal(t, 4.0, q3)

	q1, q3 = stats.Quartiles(nil)
	assert.Zero(t, q1)
	assert.Zero(t, q3)
}
