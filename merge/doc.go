// Package merge combines record collections: multi-dataset merging under
// a configurable strategy/conflict policy, and consolidation of
// near-duplicate records by value similarity.
//
// 🚀 What does it do?
//
//	Datasets scans every input dataset in order and folds records sharing
//	a key-field identity into one output record. The fold is chosen by
//	Strategy:
//	  • Combine  — structural field merge; per-field conflicts resolved by
//	    Conflict (First / Last / Max / Min)
//	  • Override — last sighting replaces the whole record
//	  • Average  — running mean of the value field
//	  • Sum      — running sum of the value field
//	Similar sorts by value and sweeps once left-to-right, clustering
//	records whose value stays within a relative threshold of the cluster's
//	running mean; each cluster emits one representative record.
//
// ✨ Guarantees:
//   - Datasets output preserves first-seen key order across the
//     concatenation of the inputs.
//   - Sum and Average commute over dataset order; Override and Combine are
//     order-sensitive by design.
//   - Unknown Strategy/Conflict values fail fast with a sentinel error.
//   - Pure functions: inputs are never mutated.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/merge"
//
//	merged, err := merge.Datasets(datasets, merge.Options{
//	  Strategy: merge.Average,
//	  Conflict: merge.Last,
//	})
//	clustered, err := merge.Similar(data, 0.05, record.DefaultFields())
//
// Performance: Datasets O(total records); Similar O(n log n).
package merge
