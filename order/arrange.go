// Package order - grouped, stable arrangement of record sequences.
//
// Design principles:
//   - Validate configuration once at entry; fail fast, no partial output.
//   - Sort keys precomputed in one pass; the comparator reads plain floats
//     or strings, never re-derives values mid-sort.
//   - Stability via slices.SortStableFunc; Descending negates the comparator.
package order

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cascade/record"
)

// entry carries one record with its precomputed sort keys.
type entry struct {
	rec  record.Record
	num  float64 // numeric key (ByValue / ByCumulative / ByMagnitude)
	text string  // textual key (ByAlphabetical)
}

// Arrange returns data reordered per opts: optional GroupBy partitioning
// (first-seen group order preserved), a stable in-group sort selected by
// Strategy, and Direction applied by negating the comparator.
//
// Contracts:
//   - Output length equals input length; no record is dropped.
//   - Equal-comparing records keep their relative input order (stable).
//   - Idempotent: arranging an arranged slice with the same opts is a
//     fixed point.
//   - ByCumulative compares running sums computed in original input order.
//
// Errors: ErrUnknownStrategy / ErrUnknownDirection for out-of-range enum
// values (configuration errors; checked before any work).
//
// Complexity: O(n log n) time, O(n) space.
func Arrange(data []record.Record, opts Options) ([]record.Record, error) {
	opts = opts.withDefaults()
	if err := validate(opts); err != nil {
		return nil, err
	}

	// Precompute sort keys in original input order (ByCumulative depends on it).
	entries := buildEntries(data, opts)

	// Partition into groups, first-seen order preserved.
	groups := partition(entries, opts.GroupBy)

	// Stable-sort each group, then concatenate in group order.
	less := comparator(opts.Strategy)
	out := make([]record.Record, 0, len(data))
	for _, g := range groups {
		slices.SortStableFunc(g, func(a, b entry) int {
			c := less(a, b)
			if opts.Direction == Descending {
				c = -c
			}

			return c
		})
		for _, e := range g {
			out = append(out, e.rec)
		}
	}

	return out, nil
}

// validate rejects out-of-range enum values before any work.
func validate(opts Options) error {
	switch opts.Strategy {
	case ByValue, ByCumulative, ByMagnitude, ByAlphabetical:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(opts.Strategy))
	}
	switch opts.Direction {
	case Ascending, Descending:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(opts.Direction))
	}

	return nil
}

// buildEntries derives each record's sort key per the chosen strategy.
func buildEntries(data []record.Record, opts Options) []entry {
	fields := record.Fields{Value: opts.Field}

	entries := make([]entry, len(data))
	var running float64
	for i, r := range data {
		v := record.Value(r, fields)
		entries[i].rec = r

		switch opts.Strategy {
		case ByCumulative:
			running += v
			entries[i].num = running
		case ByMagnitude:
			entries[i].num = math.Abs(v)
		case ByAlphabetical:
			entries[i].text = fmt.Sprint(r[opts.Field])
		default: // ByValue
			entries[i].num = v
		}
	}

	return entries
}

// partition splits entries by the groupBy field's text, keeping the
// first-seen group order. An empty groupBy yields a single group.
func partition(entries []entry, groupBy string) [][]entry {
	if groupBy == "" {
		return [][]entry{entries}
	}

	index := make(map[string]int)
	var groups [][]entry
	for _, e := range entries {
		g := fmt.Sprint(e.rec[groupBy])
		at, seen := index[g]
		if !seen {
			at = len(groups)
			index[g] = at
			groups = append(groups, nil)
		}
		groups[at] = append(groups[at], e)
	}

	return groups
}

// comparator returns the ascending compare function for a strategy.
// NaN keys order before finite keys (cmp.Compare semantics), which keeps
// the sort total even on malformed data.
func comparator(s Strategy) func(a, b entry) int {
	if s == ByAlphabetical {
		return func(a, b entry) int { return cmp.Compare(a.text, b.text) }
	}

	return func(a, b entry) int { return cmp.Compare(a.num, b.num) }
}
