// Package waterfall composes the cascade analytics into the two
// waterfall-chart specific operations: full flow analysis and a tuned
// axis tick plan.
//
// 🚀 What does it do?
//
//	Analyze runs the sequence analyzer over the data, computes the
//	cumulative flow (each record's value is a step delta), selects the
//	critical paths (top-k records by |value|), and gathers the advisor's
//	optimization suggestions — one call, one Analysis.
//	Ticks builds an axis plan for the cumulative range: tick values with
//	the count scaled to the dataset, formatted labels, and key markers
//	for ticks near a critical-path cumulative level.
//
// ✨ Guarantees:
//   - Pure composition of seq, quality, and ticks; no state, no I/O,
//     safe for concurrent use.
//   - Deterministic critical-path selection: descending |value|, ties
//     keep input order, k > n returns all.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/waterfall"
//
//	analysis, err := waterfall.Analyze(data, waterfall.DefaultOptions())
//	plan, err := waterfall.Ticks(0, 500, data, waterfall.DefaultTickOptions())
//
// Performance: O(n log n) time, dominated by the underlying sorts.
package waterfall
