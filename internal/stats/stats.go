// Package stats is the shared numeric kernel of cascade: mean and
// linear-interpolation percentiles over float64 samples.
//
// The percentile rule is the classic p·(n−1) linear interpolation over the
// sorted sample, so Percentile(xs, 0.5) is the textbook median and the
// quartile fences used by anomaly detection are reproducible across
// platforms. Inputs are never mutated; every function sorts a copy.
package stats

import (
	"sort"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Percentile returns the p-th percentile (p in [0,1]) of xs using linear
// interpolation at rank p·(n−1) over the ascending-sorted sample.
// An empty sample yields 0; p is clamped to [0,1].
//
// Complexity: O(n log n) time, O(n) space (sorted copy).
func Percentile(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	return interpolate(sorted, p)
}

// Quartiles returns Q1 and Q3 of xs (the 25th and 75th percentiles) over a
// single sorted copy, cheaper than two Percentile calls.
func Quartiles(xs []float64) (q1, q3 float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	return interpolate(sorted, 0.25), interpolate(sorted, 0.75)
}

// interpolate reads the p-th percentile from an already-sorted sample.
func interpolate(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
