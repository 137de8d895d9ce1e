// Package merge - multi-dataset combination under a merge/conflict policy.
//
// Design principles:
//   - Validate configuration once at entry; fail fast, no partial output.
//   - One ordered map, one pass over the concatenated inputs.
//   - First-seen key position is stable: later sightings fold into the
//     existing slot, never move it.
package merge

import (
	"fmt"

	"github.com/katalvlaran/cascade/record"
)

// slot is one ordered-map entry: the accumulated record plus the
// occurrence count needed by the Average strategy.
type slot struct {
	rec   record.Record
	count int
}

// Datasets folds every input dataset into one record list keyed by the
// key-field identity. The first sighting of a key seeds its output slot
// (a shallow copy with the value field coerced to float64); repeated
// sightings fold in per opts.Strategy. Output order is first-seen key
// order across the concatenation of the inputs.
//
// Strategy semantics:
//   - Combine:  merge all newcomer fields; collisions per opts.Conflict.
//   - Override: the newcomer's copy replaces the slot wholesale.
//   - Average:  running mean of the value field; other fields ignored.
//   - Sum:      running sum of the value field; other fields ignored.
//
// Errors: ErrUnknownStrategy / ErrUnknownConflict for out-of-range enum
// values, checked before any work.
//
// Complexity: O(total records · fields) time, O(distinct keys) space.
func Datasets(datasets [][]record.Record, opts Options) ([]record.Record, error) {
	opts = opts.withDefaults()
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	var (
		index = make(map[any]int) // key identity → position in order
		order []*slot
	)

	for _, ds := range datasets {
		for _, r := range ds {
			key := record.Identity(record.Key(r, opts.Fields))
			at, seen := index[key]
			if !seen {
				index[key] = len(order)
				order = append(order, &slot{rec: normalize(r, opts.Fields), count: 1})

				continue
			}
			fold(order[at], r, opts)
		}
	}

	out := make([]record.Record, len(order))
	for i, s := range order {
		out[i] = s.rec
	}

	return out, nil
}

// validateOptions rejects out-of-range enum values before any work.
func validateOptions(opts Options) error {
	switch opts.Strategy {
	case Combine, Override, Average, Sum:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(opts.Strategy))
	}
	switch opts.Conflict {
	case First, Last, Max, Min:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownConflict, int(opts.Conflict))
	}

	return nil
}

// normalize returns a shallow copy of r with its value field coerced to
// float64 (NaN for missing/non-numeric), so downstream folds always read
// a plain float.
func normalize(r record.Record, fields record.Fields) record.Record {
	out := record.Clone(r)
	out[fields.Value] = record.Value(r, fields)

	return out
}

// fold combines a repeated sighting into the existing slot.
func fold(s *slot, r record.Record, opts Options) {
	switch opts.Strategy {
	case Override:
		s.rec = normalize(r, opts.Fields)

	case Combine:
		// Normalize first so the value field stays a plain float after the merge.
		combineFields(s.rec, normalize(r, opts.Fields), opts)

	case Average:
		// Running mean: mean_{n+1} = mean_n + (v − mean_n)/(n+1).
		acc, _ := record.Number(s.rec[opts.Fields.Value])
		v := record.Value(r, opts.Fields)
		s.count++
		s.rec[opts.Fields.Value] = acc + (v-acc)/float64(s.count)

	case Sum:
		acc, _ := record.Number(s.rec[opts.Fields.Value])
		s.rec[opts.Fields.Value] = acc + record.Value(r, opts.Fields)
	}
}

// combineFields merges every field of newcomer r into acc, resolving
// per-field collisions by opts.Conflict.
func combineFields(acc record.Record, r record.Record, opts Options) {
	for k, v := range r {
		existing, present := acc[k]
		if !present {
			acc[k] = v

			continue
		}
		acc[k] = resolve(existing, v, opts.Conflict)
	}
}

// resolve picks between the accumulated and the newcomer field value.
// Max/Min compare numerically when both sides are numbers and fall back
// to Last otherwise.
func resolve(existing, incoming any, c Conflict) any {
	switch c {
	case First:
		return existing
	case Max, Min:
		a, okA := record.Number(existing)
		b, okB := record.Number(incoming)
		if okA && okB {
			if (c == Max) == (a >= b) {
				return existing
			}

			return incoming
		}

		return incoming // non-numeric collision: fall back to Last
	default: // Last
		return incoming
	}
}
