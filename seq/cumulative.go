// Package seq - running cumulative flow through a delta sequence.
package seq

import (
	"github.com/katalvlaran/cascade/record"
)

// Cumulative treats each record's value as a step delta and returns the
// running total through every index: one FlowPoint per record, in input
// order (waterfall semantics).
//
// Malformed value fields read as NaN and poison the running total from
// that step onward — documented degenerate output, never a panic.
//
// Complexity: O(n) time and space.
func Cumulative(data []record.Record, opts Options) []FlowPoint {
	opts = opts.withDefaults()

	out := make([]FlowPoint, len(data))
	var running float64
	for i, r := range data {
		change := record.Value(r, opts.Fields)
		running += change
		out[i] = FlowPoint{Step: i, Cumulative: running, Change: change}
	}

	return out
}
