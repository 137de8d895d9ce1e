// Package seq analyzes ordered record sequences: pairwise step-to-step
// change between adjacent records and the running cumulative flow.
//
// 🚀 What does it compute?
//
//	Analyze walks every adjacent pair (cur, next) and derives a Transition:
//	  • Change        — next.value − cur.value
//	  • ChangePercent — relative change (±Inf from a zero base, 0 for 0→0)
//	  • Direction     — Increase / Decrease / Neutral under a tolerance
//	  • Magnitude     — Small / Medium / Large by global terciles of |Change|
//	Cumulative treats each record's value as a step delta and reports the
//	running total through every index (waterfall semantics).
//
// ✨ Guarantees:
//   - Analyze on n records yields exactly max(n−1, 0) transitions, in input
//     adjacency order.
//   - Magnitude buckets come from the distribution of the call itself
//     (tercile cuts over all |Change|), not from fixed absolute thresholds.
//   - Pure functions: inputs are never mutated; safe for concurrent use.
//   - Malformed values propagate as NaN (documented degenerate output);
//     nothing panics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/seq"
//
//	ts := seq.Analyze(data, seq.DefaultOptions())
//	for _, t := range ts {
//	  fmt.Printf("%v→%v: %+.1f (%s, %s)\n", t.From, t.To, t.Change, t.Direction, t.Magnitude)
//	}
//
// Performance: O(n log n) time (tercile sort), O(n) space.
package seq
