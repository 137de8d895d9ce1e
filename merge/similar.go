// Package merge - similarity-based consolidation of near-duplicate records.
package merge

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/cascade/record"
)

// cluster accumulates one open group during the sweep.
type cluster struct {
	keys []string
	sum  float64
	n    int
}

// Similar consolidates near-duplicate records: it stable-sorts by the
// value field ascending, then sweeps once left-to-right, growing the open
// cluster while each record's value stays within threshold relative
// distance of the cluster's running mean. A closed cluster emits one
// representative record carrying only the key and value fields: the keys
// joined with " + " in cluster order, the value their arithmetic mean.
//
// Relative distance is |v − mean| / |mean|; a mean of exactly 0 admits
// only v == 0. Non-adjacent clusters never re-merge (single pass).
// Records with non-numeric values sort as NaN (first, per cmp.Compare)
// and each closes its own cluster — degenerate, not an error.
//
// Errors: ErrBadThreshold when threshold is negative, NaN, or infinite.
//
// Complexity: O(n log n) time, O(n) space.
func Similar(data []record.Record, threshold float64, fields record.Fields) ([]record.Record, error) {
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadThreshold, threshold)
	}
	fields = fields.WithDefaults()

	if len(data) == 0 {
		return nil, nil
	}

	// Stable sort by value ascending on a fresh slice; input untouched.
	sorted := make([]record.Record, len(data))
	copy(sorted, data)
	slices.SortStableFunc(sorted, func(a, b record.Record) int {
		return cmp.Compare(record.Value(a, fields), record.Value(b, fields))
	})

	var (
		out  []record.Record
		open cluster
	)
	for _, r := range sorted {
		v := record.Value(r, fields)
		if open.n > 0 && !joins(v, open.mean(), threshold) {
			out = append(out, open.emit(fields))
			open = cluster{}
		}
		open.keys = append(open.keys, fmt.Sprint(record.Key(r, fields)))
		open.sum += v
		open.n++
	}
	out = append(out, open.emit(fields))

	return out, nil
}

// joins reports whether v is within threshold relative distance of mean.
// A zero mean admits only v == 0; NaN on either side never joins.
func joins(v, mean, threshold float64) bool {
	if mean == 0 {
		return v == 0
	}

	return math.Abs(v-mean)/math.Abs(mean) <= threshold
}

// mean is the cluster's running arithmetic mean.
func (c cluster) mean() float64 {
	return c.sum / float64(c.n)
}

// emit builds the cluster's representative record.
func (c cluster) emit(fields record.Fields) record.Record {
	return record.Record{
		fields.Key:   strings.Join(c.keys, SimilarKeySeparator),
		fields.Value: c.mean(),
	}
}
