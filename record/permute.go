// Package record - explicit index-based reordering.
package record

import (
	"fmt"
)

// Permute returns indices[i] ↦ data[indices[i]] as a fresh slice.
//
// indices need not be a permutation: repeats duplicate records and
// omissions drop them, which makes Permute usable for subsetting and
// duplication as well as reordering. Output length always equals
// len(indices).
//
// Errors: ErrIndexRange (wrapped with the offending index) when any
// index lies outside [0, len(data)); no partial result is returned.
//
// Complexity: O(len(indices)) time and space.
func Permute(data []Record, indices []int) ([]Record, error) {
	n := len(data)

	// Validate every index before allocating output: fail fast, no partial result.
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrIndexRange, i, n)
		}
	}

	out := make([]Record, len(indices))
	for pos, i := range indices {
		out[pos] = data[i]
	}

	return out, nil
}
