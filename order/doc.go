// Package order arranges record sequences: configurable stable sorting
// with optional grouping, for readable chart layouts.
//
// 🚀 What does it do?
//
//	Arrange partitions the input into groups (when GroupBy is set),
//	stable-sorts each group by a comparator chosen by Strategy, applies
//	Direction, and concatenates the groups back in their first-seen order.
//
// Strategies:
//   - ByValue        — numeric compare on the configured field
//   - ByCumulative   — compare running sums taken in original input order
//   - ByMagnitude    — compare absolute values
//   - ByAlphabetical — lexicographic compare on the field's text
//
// ✨ Guarantees:
//   - Stable: equal-comparing records keep their relative input order.
//   - Idempotent: arranging an already-arranged slice with identical
//     options is a fixed point.
//   - Unknown Strategy/Direction values fail fast with a sentinel error;
//     no partial output.
//   - Pure function: the input slice is never mutated.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/order"
//
//	sorted, err := order.Arrange(data, order.Options{
//	  Strategy:  order.ByMagnitude,
//	  Direction: order.Descending,
//	})
//
// Performance: O(n log n) time, O(n) space.
package order
