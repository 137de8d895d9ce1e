// Package waterfall - the flow-analysis composite.
//
// Design principles:
//   - Pure composition: seq for transitions and cumulative flow, quality
//     for suggestions; no logic here beyond critical-path selection.
//   - Deterministic selection: stable sort by descending |value|, ties
//     keep input order.
package waterfall

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cascade/quality"
	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
)

// Analyze runs the full waterfall flow analysis over data:
//
//   - Flow          — seq.Analyze (one Transition per adjacent pair);
//   - Cumulative    — seq.Cumulative (running total, value = step delta);
//   - CriticalPaths — key-field values of the top-k records by |value|,
//     descending, ties keeping input order, k > n ⇒ all;
//   - Suggestions   — quality.Suggest with the matching tunables.
//
// Errors: ErrBadCriticalPaths for a negative opts.CriticalPaths.
//
// Complexity: O(n log n) time, O(n) space.
func Analyze(data []record.Record, opts Options) (Analysis, error) {
	if opts.CriticalPaths < 0 {
		return Analysis{}, fmt.Errorf("%w: %d", ErrBadCriticalPaths, opts.CriticalPaths)
	}
	opts = opts.withDefaults()

	seqOpts := seq.Options{Fields: opts.Fields, NeutralEpsilon: opts.NeutralEpsilon}

	return Analysis{
		Flow:          seq.Analyze(data, seqOpts),
		Cumulative:    seq.Cumulative(data, seqOpts),
		CriticalPaths: criticalKeys(data, opts.Fields, opts.CriticalPaths),
		Suggestions: quality.Suggest(data, quality.AdvisorOptions{
			Fields:              opts.Fields,
			NeutralEpsilon:      opts.NeutralEpsilon,
			SimilarityThreshold: opts.SimilarityThreshold,
			FlatShare:           opts.FlatShare,
			SizeLimit:           opts.SizeLimit,
		}),
	}, nil
}

// criticalKeys selects the key-field values of the top-k records by
// absolute value, descending, with ties keeping input order.
func criticalKeys(data []record.Record, fields record.Fields, k int) []any {
	idx := criticalIndices(data, fields, k)
	if idx == nil {
		return nil
	}

	out := make([]any, len(idx))
	for i, at := range idx {
		out[i] = record.Key(data[at], fields)
	}

	return out
}

// criticalIndices returns the positions of the top-k records by |value|,
// descending, ties keeping input order; the tick planner needs the
// cumulative level reached at each critical step.
func criticalIndices(data []record.Record, fields record.Fields, k int) []int {
	if len(data) == 0 || k == 0 {
		return nil
	}

	idx := make([]int, len(data))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		av := math.Abs(record.Value(data[a], fields))
		bv := math.Abs(record.Value(data[b], fields))
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})

	if k > len(idx) {
		k = len(idx)
	}

	return idx[:k]
}
