// Package seq - pairwise change analysis between consecutive records.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user data.
//   - Malformed values propagate as NaN rather than aborting the call.
//   - Tercile cuts computed once per call over the full |change| sample.
package seq

import (
	"math"

	"github.com/katalvlaran/cascade/internal/stats"
	"github.com/katalvlaran/cascade/record"
)

// Tercile cut points over the sorted |change| distribution.
const (
	tercileLow  = 1.0 / 3.0
	tercileHigh = 2.0 / 3.0
)

// percentScale converts a ratio into percent.
const percentScale = 100.0

// Analyze derives one Transition per adjacent record pair.
//
// Contracts:
//   - len(result) == max(len(data)−1, 0); fewer than 2 records ⇒ nil.
//   - Transitions appear in input adjacency order.
//   - Magnitude is bucketed by the terciles of this call's |change|
//     distribution; a NaN change (malformed value field) compares false
//     against both cuts and buckets as Large.
//
// Complexity: O(n log n) time (tercile sort), O(n) space.
func Analyze(data []record.Record, opts Options) []Transition {
	opts = opts.withDefaults()

	n := len(data)
	if n < 2 {
		return nil
	}

	out := make([]Transition, n-1)
	magnitudes := make([]float64, n-1)

	// Pass 1: change, percent and direction per pair; collect |change|.
	var i int
	for i = 0; i < n-1; i++ {
		cur := record.Value(data[i], opts.Fields)
		next := record.Value(data[i+1], opts.Fields)
		change := next - cur

		out[i] = Transition{
			From:          record.Key(data[i], opts.Fields),
			To:            record.Key(data[i+1], opts.Fields),
			Change:        change,
			ChangePercent: changePercent(cur, change),
			Direction:     classify(change, opts.NeutralEpsilon),
		}
		magnitudes[i] = math.Abs(change)
	}

	// Pass 2: global tercile cuts, then bucket each pair.
	p33 := stats.Percentile(magnitudes, tercileLow)
	p66 := stats.Percentile(magnitudes, tercileHigh)
	for i = range out {
		out[i].Magnitude = bucket(magnitudes[i], p33, p66)
	}

	return out
}

// changePercent computes the relative change from base cur.
// A zero base yields 0 for a zero change and ±Inf otherwise.
func changePercent(cur, change float64) float64 {
	if cur == 0 {
		if change == 0 {
			return 0
		}

		return math.Inf(sign(change))
	}

	return change / cur * percentScale
}

// classify maps a change to its Direction under tolerance eps.
func classify(change, eps float64) Direction {
	switch {
	case math.Abs(change) < eps:
		return Neutral
	case change > 0:
		return Increase
	default:
		return Decrease
	}
}

// bucket places an absolute change into its tercile.
// NaN compares false against both cuts and falls through to Large.
func bucket(abs, p33, p66 float64) Magnitude {
	switch {
	case abs <= p33:
		return Small
	case abs <= p66:
		return Medium
	default:
		return Large
	}
}

// sign returns +1 for positive x, −1 otherwise (callers exclude zero).
func sign(x float64) int {
	if x > 0 {
		return 1
	}

	return -1
}
