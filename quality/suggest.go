// Package quality - rule-based data-shape optimization suggestions.
//
// Each rule evaluates independently against the full dataset and
// contributes zero or one message; the result lists triggered messages
// in fixed rule order. Wording is stable and carries the triggering
// counts so callers can surface it verbatim.
package quality

import (
	"fmt"

	"github.com/katalvlaran/cascade/merge"
	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
)

// Suggest inspects data and proposes shape improvements:
//
//  1. more than FlatShare of the transitions are Neutral
//     → consolidate flat segments;
//  2. the overall net change and the majority of individual non-neutral
//     changes pull in opposite directions (both non-zero)
//     → reorder or re-group for readability;
//  3. merge.Similar at SimilarityThreshold would join more than one pair
//     → merge similar items;
//  4. the dataset exceeds SizeLimit records
//     → aggregate or paginate.
//
// Side effects: none; findings are data, never errors.
//
// Complexity: O(n log n) time (rule 3 sorts), O(n) space.
func Suggest(data []record.Record, opts AdvisorOptions) []string {
	opts = opts.withDefaults()

	var out []string

	transitions := seq.Analyze(data, seq.Options{
		Fields:         opts.Fields,
		NeutralEpsilon: opts.NeutralEpsilon,
	})

	if msg, ok := flatSegmentsRule(transitions, opts.FlatShare); ok {
		out = append(out, msg)
	}
	if msg, ok := orderingRule(transitions); ok {
		out = append(out, msg)
	}
	if msg, ok := similarItemsRule(data, opts); ok {
		out = append(out, msg)
	}
	if len(data) > opts.SizeLimit {
		out = append(out, fmt.Sprintf(
			"dataset has %d records (limit %d): consider aggregating or paginating",
			len(data), opts.SizeLimit))
	}

	return out
}

// flatSegmentsRule fires when the Neutral share of transitions exceeds limit.
func flatSegmentsRule(ts []seq.Transition, limit float64) (string, bool) {
	if len(ts) == 0 {
		return "", false
	}

	var flat int
	for _, t := range ts {
		if t.Direction == seq.Neutral {
			flat++
		}
	}
	if float64(flat)/float64(len(ts)) <= limit {
		return "", false
	}

	return fmt.Sprintf(
		"%d of %d transitions are near-zero: consider consolidating flat segments",
		flat, len(ts)), true
}

// orderingRule fires when the net change and the majority of individual
// non-neutral changes disagree in sign (both non-zero).
func orderingRule(ts []seq.Transition) (string, bool) {
	var (
		net      float64
		majority int // +1 per Increase, −1 per Decrease
	)
	for _, t := range ts {
		net += t.Change
		switch t.Direction {
		case seq.Increase:
			majority++
		case seq.Decrease:
			majority--
		}
	}
	if net == 0 || majority == 0 {
		return "", false
	}
	if (net > 0) == (majority > 0) {
		return "", false
	}

	return "overall net change opposes the majority of individual changes: consider reordering or re-grouping for readability", true
}

// similarItemsRule fires when consolidating at the configured threshold
// would join more than one pair of records.
func similarItemsRule(data []record.Record, opts AdvisorOptions) (string, bool) {
	merged, err := merge.Similar(data, opts.SimilarityThreshold, opts.Fields)
	if err != nil {
		// withDefaults guarantees a valid threshold; unreachable in practice.
		return "", false
	}
	joins := len(data) - len(merged)
	if joins <= 1 {
		return "", false
	}

	return fmt.Sprintf(
		"%d records fall within %.0f%% of a neighbor: consider merging similar items",
		joins+1, opts.SimilarityThreshold*100), true
}
